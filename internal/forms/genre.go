package forms

import (
	"net/url"
	"unicode/utf8"

	"github.com/google/uuid"

	"locallibrary/internal/models"
)

type GenreForm struct {
	Name string

	Violations Violations
}

// NewGenreForm sanitizes and validates a genre submission. The name
// takes the restricted escape so quoted genre names render as written.
func NewGenreForm(values url.Values) *GenreForm {
	f := &GenreForm{
		Name: SanitizeLongText(values.Get("name")),
	}
	f.Violations.Check(utf8.RuneCountInString(f.Name) >= 3, "name", "Genre must be at least 3 characters")
	f.Violations.Check(utf8.RuneCountInString(f.Name) <= 100, "name", "Genre must be at most 100 characters")
	return f
}

func (f *GenreForm) Valid() bool {
	return f.Violations.Valid()
}

func (f *GenreForm) Build(id uuid.UUID) *models.Genre {
	return &models.Genre{
		ID:   id,
		Name: f.Name,
	}
}
