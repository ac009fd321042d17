package quiz

import (
	"context"
	"strconv"

	"github.com/triviaforge/trivia-api/internal/config"
	"github.com/triviaforge/trivia-api/internal/httperr"
	"github.com/triviaforge/trivia-api/internal/question"
)

// questionSource is the slice of the question repository the draw
// needs.
type questionSource interface {
	FindAllOrdered() ([]question.Question, error)
	FindByCategory(category string) ([]question.Question, error)
}

type Service interface {
	Draw(ctx context.Context, req PlayRequest) (*question.Question, error)
}

type service struct {
	questions questionSource
}

func NewService(questions questionSource) Service {
	return &service{questions: questions}
}

// Draw picks the next quiz question deterministically: the considered
// set is all questions for category id 0, otherwise the questions of
// that category, in id-ascending order. With a non-nil history the
// first question not yet asked wins; with a nil history the first
// question of the set wins regardless of repetition. A nil question
// with a nil error means the set is exhausted.
func (s *service) Draw(ctx context.Context, req PlayRequest) (*question.Question, error) {
	log := config.WithContext(ctx)

	if req.QuizCategory == nil {
		return nil, httperr.ErrBadRequest
	}

	var (
		pool []question.Question
		err  error
	)
	if req.QuizCategory.ID != 0 {
		pool, err = s.questions.FindByCategory(strconv.Itoa(req.QuizCategory.ID))
	} else {
		pool, err = s.questions.FindAllOrdered()
	}
	if err != nil {
		log.WithError(err).Error("Failed to load quiz question pool")
		return nil, err
	}

	if req.PreviousQuestions == nil {
		if len(pool) == 0 {
			return nil, nil
		}
		return &pool[0], nil
	}

	asked := make(map[int]struct{}, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		asked[id] = struct{}{}
	}
	for i := range pool {
		if _, ok := asked[pool[i].ID]; !ok {
			return &pool[i], nil
		}
	}
	return nil, nil
}
