package forms

import (
	"net/url"

	"github.com/google/uuid"

	"locallibrary/internal/models"
)

// BookForm carries a book submission. The genre field may arrive
// absent, as a single value or as many; it is always normalized to a
// slice before validation.
type BookForm struct {
	Title    string
	AuthorID string
	Summary  string
	ISBN     string
	GenreIDs []string

	authorID uuid.UUID
	genreIDs []uuid.UUID

	Violations Violations
}

func NewBookForm(values url.Values) *BookForm {
	f := &BookForm{
		Title:    SanitizeText(values.Get("title")),
		AuthorID: SanitizeText(values.Get("author")),
		Summary:  SanitizeLongText(values.Get("summary")),
		ISBN:     SanitizeText(values.Get("isbn")),
		GenreIDs: NormalizeMulti(values["genre"]),
	}

	f.Violations.Check(len(f.Title) >= 1, "title", "Title required")
	f.Violations.Check(len(f.AuthorID) >= 1, "author", "Author required")
	f.Violations.Check(len(f.Summary) >= 1, "summary", "Summary required")
	f.Violations.Check(len(f.ISBN) >= 1, "isbn", "ISBN required")

	if f.AuthorID != "" {
		id, err := uuid.Parse(f.AuthorID)
		if err != nil {
			f.Violations.Add("author", "Invalid author reference")
		} else {
			f.authorID = id
		}
	}
	for _, raw := range f.GenreIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			f.Violations.Add("genre", "Invalid genre reference")
			continue
		}
		f.genreIDs = append(f.genreIDs, id)
	}

	return f
}

func (f *BookForm) Valid() bool {
	return f.Violations.Valid()
}

func (f *BookForm) Build(id uuid.UUID) *models.Book {
	book := &models.Book{
		ID:       id,
		Title:    f.Title,
		AuthorID: f.authorID,
		Summary:  f.Summary,
		ISBN:     f.ISBN,
		Genres:   make([]models.Genre, 0, len(f.genreIDs)),
	}
	for _, gid := range f.genreIDs {
		book.Genres = append(book.Genres, models.Genre{ID: gid})
	}
	return book
}
