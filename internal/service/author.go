package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/models"
	"locallibrary/internal/repository"
)

type AuthorService interface {
	List(ctx context.Context) ([]models.Author, error)
	// Detail loads the author together with the books that reference
	// it. Delete confirmation pages reuse it for the dependent list.
	Detail(ctx context.Context, id uuid.UUID) (*models.Author, []models.Book, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Author, error)
	Create(ctx context.Context, a *models.Author) error
	Update(ctx context.Context, a *models.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type authorService struct {
	authors *repository.AuthorRepo
	books   *repository.BookRepo
}

func NewAuthorService(authors *repository.AuthorRepo, books *repository.BookRepo) AuthorService {
	return &authorService{authors: authors, books: books}
}

func (s *authorService) List(ctx context.Context) ([]models.Author, error) {
	return s.authors.GetAll(ctx)
}

func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (*models.Author, []models.Book, error) {
	var (
		author *models.Author
		books  []models.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		author, err = s.authors.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		books, err = s.books.GetByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return author, books, nil
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*models.Author, error) {
	return s.authors.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, a *models.Author) error {
	return s.authors.Create(ctx, a)
}

func (s *authorService) Update(ctx context.Context, a *models.Author) error {
	return s.authors.Update(ctx, a)
}

// Delete removes the author unless books still reference it. The
// repository delete is conditional, so a book created between the
// confirmation page and this call still blocks the removal.
func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.authors.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		return nil
	}
	// Nothing was removed: either the author is already gone, which
	// the redirect-on-missing policy treats as success, or dependents
	// blocked the delete.
	if _, err := s.authors.GetByID(ctx, id); errors.Is(err, repository.ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	return ErrHasDependents
}
