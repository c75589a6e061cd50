package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"locallibrary/internal/models"
)

type BookInstanceRepo struct {
	db *gorm.DB
}

func NewBookInstanceRepo(db *gorm.DB) *BookInstanceRepo {
	return &BookInstanceRepo{db: db}
}

func (r *BookInstanceRepo) GetAll(ctx context.Context) ([]models.BookInstance, error) {
	var list []models.BookInstance
	if err := r.db.WithContext(ctx).Preload("Book").Order("imprint asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get book instances: %w", err)
	}
	return list, nil
}

func (r *BookInstanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.BookInstance, error) {
	var bi models.BookInstance
	if err := r.db.WithContext(ctx).Preload("Book").First(&bi, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get book instance: %w", mapError(err))
	}
	return &bi, nil
}

func (r *BookInstanceRepo) GetByBook(ctx context.Context, bookID uuid.UUID) ([]models.BookInstance, error) {
	var list []models.BookInstance
	if err := r.db.WithContext(ctx).Where("book_id = ?", bookID).Order("imprint asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get book instances by book: %w", err)
	}
	return list, nil
}

func (r *BookInstanceRepo) Create(ctx context.Context, bi *models.BookInstance) error {
	if err := r.db.WithContext(ctx).Create(bi).Error; err != nil {
		return fmt.Errorf("create book instance: %w", mapError(err))
	}
	return nil
}

func (r *BookInstanceRepo) Update(ctx context.Context, bi *models.BookInstance) error {
	if err := r.db.WithContext(ctx).Omit("Book").Save(bi).Error; err != nil {
		return fmt.Errorf("update book instance: %w", mapError(err))
	}
	return nil
}

// Delete removes the copy unconditionally; nothing depends on it.
func (r *BookInstanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.BookInstance{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete book instance: %w", mapError(err))
	}
	return nil
}

func (r *BookInstanceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.BookInstance{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count book instances: %w", err)
	}
	return n, nil
}

func (r *BookInstanceRepo) CountByStatus(ctx context.Context, status models.InstanceStatus) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.BookInstance{}).Where("status = ?", status).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count book instances by status: %w", err)
	}
	return n, nil
}
