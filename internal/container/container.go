package container

import (
	"gorm.io/gorm"

	"github.com/triviaforge/trivia-api/internal/category"
	"github.com/triviaforge/trivia-api/internal/question"
	"github.com/triviaforge/trivia-api/internal/quiz"
)

type Container struct {
	CategoryContainer *category.Container
	QuestionContainer *question.Container
	QuizContainer     *quiz.Container
}

func New(db *gorm.DB) *Container {
	categoryContainer := category.NewContainer(db)
	questionContainer := question.NewContainer(db, categoryContainer.Service)
	quizContainer := quiz.NewContainer(questionContainer.Repository)

	return &Container{
		CategoryContainer: categoryContainer,
		QuestionContainer: questionContainer,
		QuizContainer:     quizContainer,
	}
}
