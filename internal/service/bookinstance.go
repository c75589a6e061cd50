package service

import (
	"context"

	"github.com/google/uuid"

	"locallibrary/internal/models"
	"locallibrary/internal/repository"
)

type BookInstanceService interface {
	List(ctx context.Context) ([]models.BookInstance, error)
	Get(ctx context.Context, id uuid.UUID) (*models.BookInstance, error)
	// BookOptions loads all books for the form's select control.
	BookOptions(ctx context.Context) ([]models.Book, error)
	Create(ctx context.Context, bi *models.BookInstance) error
	Update(ctx context.Context, bi *models.BookInstance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookInstanceService struct {
	instances *repository.BookInstanceRepo
	books     *repository.BookRepo
}

func NewBookInstanceService(instances *repository.BookInstanceRepo, books *repository.BookRepo) BookInstanceService {
	return &bookInstanceService{instances: instances, books: books}
}

func (s *bookInstanceService) List(ctx context.Context) ([]models.BookInstance, error) {
	return s.instances.GetAll(ctx)
}

func (s *bookInstanceService) Get(ctx context.Context, id uuid.UUID) (*models.BookInstance, error) {
	return s.instances.GetByID(ctx, id)
}

func (s *bookInstanceService) BookOptions(ctx context.Context) ([]models.Book, error) {
	return s.books.GetAll(ctx)
}

func (s *bookInstanceService) Create(ctx context.Context, bi *models.BookInstance) error {
	return s.instances.Create(ctx, bi)
}

func (s *bookInstanceService) Update(ctx context.Context, bi *models.BookInstance) error {
	return s.instances.Update(ctx, bi)
}

// Delete has no dependent check; nothing references a copy.
func (s *bookInstanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.instances.Delete(ctx, id)
}
