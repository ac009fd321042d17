package category

import (
	"context"

	"github.com/triviaforge/trivia-api/internal/config"
	"github.com/triviaforge/trivia-api/internal/httperr"
)

type Service interface {
	List(ctx context.Context) ([]Category, error)
	Mapping(ctx context.Context) (map[int]string, error)
	Exists(ctx context.Context, id int) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List returns all categories sorted by id. An empty category table is
// a not-found condition: the client contract has no empty state.
func (s *service) List(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list categories")
		return nil, err
	}
	if len(categories) == 0 {
		return nil, httperr.ErrNotFound
	}
	return categories, nil
}

// Mapping returns the id -> type label mapping the frontend expects.
// Unlike List, an empty mapping is not an error here; the questions
// endpoints embed it regardless of how many categories exist.
func (s *service) Mapping(ctx context.Context) (map[int]string, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to build category mapping")
		return nil, err
	}
	mapping := make(map[int]string, len(categories))
	for _, c := range categories {
		mapping[c.ID] = c.Type
	}
	return mapping, nil
}

func (s *service) Exists(ctx context.Context, id int) (bool, error) {
	ok, err := s.repo.Exists(id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to check category existence")
		return false, err
	}
	return ok, nil
}
