package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/models"
	"locallibrary/internal/repository"
)

type BookService interface {
	List(ctx context.Context) ([]models.Book, error)
	Detail(ctx context.Context, id uuid.UUID) (*models.Book, []models.BookInstance, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Book, error)
	// FormOptions loads the collections the book form's select and
	// checkbox controls are built from.
	FormOptions(ctx context.Context) ([]models.Author, []models.Genre, error)
	Create(ctx context.Context, b *models.Book) error
	Update(ctx context.Context, b *models.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookService struct {
	books     *repository.BookRepo
	authors   *repository.AuthorRepo
	genres    *repository.GenreRepo
	instances *repository.BookInstanceRepo
}

func NewBookService(books *repository.BookRepo, authors *repository.AuthorRepo, genres *repository.GenreRepo, instances *repository.BookInstanceRepo) BookService {
	return &bookService{books: books, authors: authors, genres: genres, instances: instances}
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	return s.books.GetAll(ctx)
}

func (s *bookService) Detail(ctx context.Context, id uuid.UUID) (*models.Book, []models.BookInstance, error) {
	var (
		book   *models.Book
		copies []models.BookInstance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		book, err = s.books.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		copies, err = s.instances.GetByBook(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return book, copies, nil
}

func (s *bookService) Get(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *bookService) FormOptions(ctx context.Context) ([]models.Author, []models.Genre, error) {
	var (
		authors []models.Author
		genres  []models.Genre
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		authors, err = s.authors.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		genres, err = s.genres.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return authors, genres, nil
}

func (s *bookService) Create(ctx context.Context, b *models.Book) error {
	return s.books.Create(ctx, b)
}

func (s *bookService) Update(ctx context.Context, b *models.Book) error {
	return s.books.Update(ctx, b)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.books.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		return nil
	}
	if _, err := s.books.GetByID(ctx, id); errors.Is(err, repository.ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	return ErrHasDependents
}
