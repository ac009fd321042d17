package question

// Question is a trivia question. The category reference is held as a
// string and compared as one; nothing enforces that it names an
// existing category at write time.
type Question struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   string `gorm:"size:16;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}
