package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"locallibrary/internal/models"
)

type GenreRepo struct {
	db *gorm.DB
}

func NewGenreRepo(db *gorm.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

func (r *GenreRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *GenreRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get genre: %w", mapError(err))
	}
	return &g, nil
}

// GetByNameFold looks a genre up by name ignoring case, the equivalent
// of the strength-2 collation lookup the duplicate pre-check needs.
func (r *GenreRepo) GetByNameFold(ctx context.Context, name string) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		return nil, fmt.Errorf("get genre by name: %w", mapError(err))
	}
	return &g, nil
}

// Create inserts the genre. A case-insensitive name collision surfaces
// as ErrDuplicate from the LOWER(name) unique index rather than being
// left to a racy pre-check alone.
func (r *GenreRepo) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", mapError(err))
	}
	return nil
}

func (r *GenreRepo) Update(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Save(g).Error; err != nil {
		return fmt.Errorf("update genre: %w", mapError(err))
	}
	return nil
}

// Delete removes the genre only while no book references it.
func (r *GenreRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("NOT EXISTS (SELECT 1 FROM book_genres WHERE book_genres.genre_id = ?)", id).
		Delete(&models.Genre{})
	if res.Error != nil {
		return false, fmt.Errorf("delete genre: %w", mapError(res.Error))
	}
	return res.RowsAffected > 0, nil
}

func (r *GenreRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count genres: %w", err)
	}
	return n, nil
}
