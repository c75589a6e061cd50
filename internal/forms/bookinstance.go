package forms

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"locallibrary/internal/models"
)

type BookInstanceForm struct {
	BookID  string
	Imprint string
	Status  string
	DueBack string

	bookID  uuid.UUID
	dueBack *time.Time

	Violations Violations
}

func NewBookInstanceForm(values url.Values) *BookInstanceForm {
	f := &BookInstanceForm{
		BookID:  SanitizeText(values.Get("book")),
		Imprint: SanitizeText(values.Get("imprint")),
		Status:  SanitizeText(values.Get("status")),
		DueBack: SanitizeText(values.Get("due_back")),
	}

	f.Violations.Check(len(f.BookID) >= 1, "book", "Book required")
	f.Violations.Check(len(f.Imprint) >= 1, "imprint", "Imprint required")

	if f.BookID != "" {
		id, err := uuid.Parse(f.BookID)
		if err != nil {
			f.Violations.Add("book", "Invalid book reference")
		} else {
			f.bookID = id
		}
	}

	// An empty status falls back to Maintenance in the builder.
	if f.Status != "" {
		f.Violations.Check(models.ValidInstanceStatus(f.Status), "status", "Invalid status")
	}

	var ok bool
	f.dueBack, ok = ParseDate(f.DueBack)
	f.Violations.Check(ok, "due_back", "Invalid date")

	return f
}

func (f *BookInstanceForm) Valid() bool {
	return f.Violations.Valid()
}

func (f *BookInstanceForm) Build(id uuid.UUID) *models.BookInstance {
	bi := &models.BookInstance{
		ID:      id,
		BookID:  f.bookID,
		Imprint: f.Imprint,
		Status:  models.InstanceStatus(f.Status),
	}
	if bi.Status == "" {
		bi.Status = models.StatusMaintenance
	}
	// Default the due-back date here rather than in a storage hook so
	// updates that clear the field land on "now" the same way creates do.
	if f.dueBack != nil {
		bi.DueBack = *f.dueBack
	} else {
		bi.DueBack = time.Now()
	}
	return bi
}
