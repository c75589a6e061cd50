package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"locallibrary/internal/models"
)

type AuthorRepo struct {
	db *gorm.DB
}

func NewAuthorRepo(db *gorm.DB) *AuthorRepo {
	return &AuthorRepo{db: db}
}

func (r *AuthorRepo) GetAll(ctx context.Context) ([]models.Author, error) {
	var list []models.Author
	if err := r.db.WithContext(ctx).Order("family_name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get authors: %w", err)
	}
	return list, nil
}

func (r *AuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Author, error) {
	var a models.Author
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get author: %w", mapError(err))
	}
	return &a, nil
}

func (r *AuthorRepo) Create(ctx context.Context, a *models.Author) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create author: %w", mapError(err))
	}
	return nil
}

// Update replaces the stored record under the author's existing id.
func (r *AuthorRepo) Update(ctx context.Context, a *models.Author) error {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("update author: %w", mapError(err))
	}
	return nil
}

// Delete removes the author only while no book references it. The
// NOT EXISTS guard closes the window between the dependent check and
// the delete that a read-then-act sequence would leave open.
func (r *AuthorRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("NOT EXISTS (SELECT 1 FROM books WHERE books.author_id = ?)", id).
		Delete(&models.Author{})
	if res.Error != nil {
		return false, fmt.Errorf("delete author: %w", mapError(res.Error))
	}
	return res.RowsAffected > 0, nil
}

func (r *AuthorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Author{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count authors: %w", err)
	}
	return n, nil
}
