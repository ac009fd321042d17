package category

// Category is a pre-seeded question grouping. No endpoint creates,
// updates or deletes categories.
type Category struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:64;not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}
