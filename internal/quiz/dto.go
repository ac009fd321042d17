package quiz

// PlayRequest is the POST /quizzes body. PreviousQuestions stays nil
// when the field is null or absent, which changes the draw semantics:
// a nil history means repetition is ignored entirely.
type PlayRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// QuizCategory selects the question pool. ID 0 is the sentinel for
// "all categories".
type QuizCategory struct {
	ID int `json:"id"`
}
