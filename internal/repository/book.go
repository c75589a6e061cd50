package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"locallibrary/internal/models"
)

type BookRepo struct {
	db *gorm.DB
}

func NewBookRepo(db *gorm.DB) *BookRepo {
	return &BookRepo{db: db}
}

func (r *BookRepo) GetAll(ctx context.Context) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).Preload("Author").Order("title asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get books: %w", err)
	}
	return list, nil
}

func (r *BookRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).Preload("Author").Preload("Genres").First(&b, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get book: %w", mapError(err))
	}
	return &b, nil
}

func (r *BookRepo) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("title asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get books by author: %w", err)
	}
	return list, nil
}

func (r *BookRepo) GetByGenre(ctx context.Context, genreID uuid.UUID) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Joins("JOIN book_genres bg ON bg.book_id = books.id").
		Where("bg.genre_id = ?", genreID).
		Preload("Author").
		Order("title asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get books by genre: %w", err)
	}
	return list, nil
}

func (r *BookRepo) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create book: %w", mapError(err))
	}
	return nil
}

// Update replaces the book row and its genre association set under the
// existing id.
func (r *BookRepo) Update(ctx context.Context, b *models.Book) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Genres").Save(b).Error; err != nil {
			return err
		}
		return tx.Model(b).Association("Genres").Replace(b.Genres)
	})
	if err != nil {
		return fmt.Errorf("update book: %w", mapError(err))
	}
	return nil
}

// Delete removes the book only while no copy references it, along with
// its genre association rows.
func (r *BookRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Genre links go first so the join table's foreign key does not
		// block the book delete. The same guard keeps them in place when
		// copies still reference the book.
		if err := tx.Exec(
			"DELETE FROM book_genres WHERE book_id = ? AND NOT EXISTS (SELECT 1 FROM book_instances WHERE book_instances.book_id = ?)",
			id, id,
		).Error; err != nil {
			return err
		}
		res := tx.
			Where("id = ?", id).
			Where("NOT EXISTS (SELECT 1 FROM book_instances WHERE book_instances.book_id = ?)", id).
			Delete(&models.Book{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete book: %w", mapError(err))
	}
	return deleted, nil
}

func (r *BookRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}
