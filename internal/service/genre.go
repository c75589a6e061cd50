package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"locallibrary/internal/models"
	"locallibrary/internal/repository"
)

type GenreService interface {
	List(ctx context.Context) ([]models.Genre, error)
	Detail(ctx context.Context, id uuid.UUID) (*models.Genre, []models.Book, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	// Create persists the genre, or returns the pre-existing genre
	// when one with the same name (ignoring case) is already stored.
	// The returned genre is always the one to redirect to.
	Create(ctx context.Context, g *models.Genre) (*models.Genre, error)
	Update(ctx context.Context, g *models.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type genreService struct {
	genres *repository.GenreRepo
	books  *repository.BookRepo
}

func NewGenreService(genres *repository.GenreRepo, books *repository.BookRepo) GenreService {
	return &genreService{genres: genres, books: books}
}

func (s *genreService) List(ctx context.Context) ([]models.Genre, error) {
	return s.genres.GetAll(ctx)
}

func (s *genreService) Detail(ctx context.Context, id uuid.UUID) (*models.Genre, []models.Book, error) {
	var (
		genre *models.Genre
		books []models.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		genre, err = s.genres.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		books, err = s.books.GetByGenre(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return genre, books, nil
}

func (s *genreService) Get(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	return s.genres.GetByID(ctx, id)
}

func (s *genreService) Create(ctx context.Context, g *models.Genre) (*models.Genre, error) {
	// Pre-check so the common duplicate submission never hits the
	// unique index.
	existing, err := s.genres.GetByNameFold(ctx, g.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	err = s.genres.Create(ctx, g)
	if errors.Is(err, repository.ErrDuplicate) {
		// Lost the race to a concurrent insert; the index caught it.
		// Recover the same way the pre-check would have.
		return s.genres.GetByNameFold(ctx, g.Name)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *genreService) Update(ctx context.Context, g *models.Genre) error {
	return s.genres.Update(ctx, g)
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.genres.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		return nil
	}
	if _, err := s.genres.GetByID(ctx, id); errors.Is(err, repository.ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	return ErrHasDependents
}
