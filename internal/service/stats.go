package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"locallibrary/internal/models"
	"locallibrary/internal/repository"
)

// Summary holds the counts shown on the catalog home page.
type Summary struct {
	Books              int64
	BookInstances      int64
	InstancesAvailable int64
	Authors            int64
	Genres             int64
}

type StatsService interface {
	Summary(ctx context.Context) (Summary, error)
}

type statsService struct {
	books     *repository.BookRepo
	instances *repository.BookInstanceRepo
	authors   *repository.AuthorRepo
	genres    *repository.GenreRepo
}

func NewStatsService(books *repository.BookRepo, instances *repository.BookInstanceRepo, authors *repository.AuthorRepo, genres *repository.GenreRepo) StatsService {
	return &statsService{books: books, instances: instances, authors: authors, genres: genres}
}

// Summary issues the five counts concurrently and fails the whole
// batch if any one of them fails.
func (s *statsService) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sum.Books, err = s.books.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		sum.BookInstances, err = s.instances.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		sum.InstancesAvailable, err = s.instances.CountByStatus(gctx, models.StatusAvailable)
		return err
	})
	g.Go(func() (err error) {
		sum.Authors, err = s.authors.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		sum.Genres, err = s.genres.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return sum, nil
}
