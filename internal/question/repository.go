package question

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	FindAllOrdered() ([]Question, error)
	FindByID(id int) (*Question, error)
	FindByCategory(category string) ([]Question, error)
	Search(term string) ([]Question, error)
	Create(q *Question) error
	Delete(id int) error
	Count() (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllOrdered() ([]Question, error) {
	var questions []Question
	if err := r.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) FindByID(id int) (*Question, error) {
	var q Question
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) FindByCategory(category string) ([]Question, error) {
	var questions []Question
	if err := r.db.
		Where("category = ?", category).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) Search(term string) ([]Question, error) {
	var questions []Question
	if err := r.db.
		Where("question ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) Create(q *Question) error {
	return r.db.Create(q).Error
}

func (r *repository) Delete(id int) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}

func (r *repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
