package question

import "gorm.io/gorm"

type Container struct {
	Handler    *Handler
	Service    Service
	Repository Repository
}

func NewContainer(db *gorm.DB, categories CategorySource) *Container {
	repo := NewRepository(db)
	service := NewService(repo, categories)
	handler := NewHandler(service)

	return &Container{
		Handler:    handler,
		Service:    service,
		Repository: repo,
	}
}
