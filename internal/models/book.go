package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title    string    `json:"title" gorm:"not null"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index"`
	Summary  string    `json:"summary" gorm:"not null"`
	ISBN     string    `json:"isbn" gorm:"not null"`

	// Weak references: existence is checked procedurally before delete,
	// never cascaded.
	Author Author  `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Genres []Genre `json:"genres,omitempty" gorm:"many2many:book_genres"`
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b Book) URL() string {
	return fmt.Sprintf("/catalog/book/%s", b.ID)
}

// HasGenre reports whether the book references the given genre. The
// book form uses it to re-check previously selected genres.
func (b Book) HasGenre(id uuid.UUID) bool {
	for _, g := range b.Genres {
		if g.ID == id {
			return true
		}
	}
	return false
}
