package question

import (
	"context"
	"strconv"

	"github.com/triviaforge/trivia-api/internal/config"
	"github.com/triviaforge/trivia-api/internal/httperr"
)

// CategorySource provides the category lookups the question endpoints
// embed in their responses. Implemented by category.Service.
type CategorySource interface {
	Mapping(ctx context.Context) (map[int]string, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// ListResult is a page of questions with the listing metadata.
type ListResult struct {
	Questions  []Question
	Categories map[int]string
	Total      int64
}

// DeleteResult reports a deletion plus the re-paginated remainder.
type DeleteResult struct {
	Deleted   int
	Questions []Question
	Total     int64
}

// CreateResult reports an insertion plus the first page of the
// re-sorted question list.
type CreateResult struct {
	Created         int
	QuestionCreated string
	Questions       []Question
	Total           int64
}

type Service interface {
	ListPage(ctx context.Context, page int) (*ListResult, error)
	Delete(ctx context.Context, id, page int) (*DeleteResult, error)
	Create(ctx context.Context, req CreateQuestionRequest) (*CreateResult, error)
	Search(ctx context.Context, term string) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
}

type service struct {
	repo       Repository
	categories CategorySource
}

func NewService(repo Repository, categories CategorySource) Service {
	return &service{repo: repo, categories: categories}
}

// ListPage returns the requested page over the id-ascending full set.
// An empty page, including any page past the data, is ErrNotFound.
// The total is recomputed on every call.
func (s *service) ListPage(ctx context.Context, page int) (*ListResult, error) {
	all, err := s.repo.FindAllOrdered()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list questions")
		return nil, err
	}

	current := Paginate(all, page)
	if len(current) == 0 {
		return nil, httperr.ErrNotFound
	}

	mapping, err := s.categories.Mapping(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Questions:  current,
		Categories: mapping,
		Total:      total,
	}, nil
}

// Delete removes the question with the given id and returns the
// re-paginated remainder for the same page parameter. A missing id is
// ErrNotFound; the handler decides how that surfaces.
func (s *service) Delete(ctx context.Context, id, page int) (*DeleteResult, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to look up question")
		return nil, err
	}
	if q == nil {
		return nil, httperr.ErrNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete question")
		return nil, err
	}

	remaining, err := s.repo.FindAllOrdered()
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	log.WithField("question_id", id).Info("Question deleted")
	return &DeleteResult{
		Deleted:   id,
		Questions: Paginate(remaining, page),
		Total:     total,
	}, nil
}

// Create inserts a new question and returns its assigned id together
// with the first page of the re-sorted list.
func (s *service) Create(ctx context.Context, req CreateQuestionRequest) (*CreateResult, error) {
	log := config.WithContext(ctx)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	q := req.ToEntity()
	if err := s.repo.Create(&q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}

	all, err := s.repo.FindAllOrdered()
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	log.WithField("question_id", q.ID).Info("Question created")
	return &CreateResult{
		Created:         q.ID,
		QuestionCreated: q.Question,
		Questions:       Paginate(all, 1),
		Total:           total,
	}, nil
}

// Search returns every question whose text contains the term,
// case-insensitively, ordered by id. Results are never paginated.
func (s *service) Search(ctx context.Context, term string) ([]Question, error) {
	matches, err := s.repo.Search(term)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to search questions")
		return nil, err
	}
	if matches == nil {
		matches = []Question{}
	}
	return matches, nil
}

// ListByCategory returns all questions whose category reference equals
// the given id. An unknown category id is ErrNotFound.
func (s *service) ListByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	ok, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrNotFound
	}

	questions, err := s.repo.FindByCategory(strconv.Itoa(categoryID))
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list questions by category")
		return nil, err
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}
