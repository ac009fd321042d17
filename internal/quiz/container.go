package quiz

import "github.com/triviaforge/trivia-api/internal/question"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(questions question.Repository) *Container {
	service := NewService(questions)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
