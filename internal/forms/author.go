package forms

import (
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"locallibrary/internal/models"
)

// AuthorForm carries an author submission through the pipeline. The
// string fields hold sanitized values suitable for re-rendering the
// form; the parsed dates feed the cross-field rules and the builder.
type AuthorForm struct {
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string

	birth *time.Time
	death *time.Time

	Violations Violations
}

// NewAuthorForm sanitizes and validates a raw submission. Name policy:
// any non-empty string after trimming is a valid name part.
func NewAuthorForm(values url.Values) *AuthorForm {
	f := &AuthorForm{
		FirstName:   SanitizeText(values.Get("first_name")),
		FamilyName:  SanitizeText(values.Get("family_name")),
		DateOfBirth: SanitizeText(values.Get("date_of_birth")),
		DateOfDeath: SanitizeText(values.Get("date_of_death")),
	}

	f.Violations.Check(len(f.FirstName) >= 1, "first_name", "First name required")
	f.Violations.Check(len(f.FamilyName) >= 1, "family_name", "Family name required")
	// The columns are varchar(100); reject overlong names here so they
	// surface as violations instead of storage errors.
	f.Violations.Check(utf8.RuneCountInString(f.FirstName) <= 100, "first_name", "First name must be at most 100 characters")
	f.Violations.Check(utf8.RuneCountInString(f.FamilyName) <= 100, "family_name", "Family name must be at most 100 characters")

	var ok bool
	f.birth, ok = ParseDate(f.DateOfBirth)
	f.Violations.Check(ok, "date_of_birth", "Invalid date of birth")
	f.death, ok = ParseDate(f.DateOfDeath)
	f.Violations.Check(ok, "date_of_death", "Invalid date of death")

	f.Violations.Check(!InTheFuture(f.birth), "date_of_birth", "Date of birth cannot be in the future")
	f.Violations.Check(!InTheFuture(f.death), "date_of_death", "Date of death cannot be in the future")
	f.Violations.Check(BirthBeforeDeath(f.birth, f.death), "date_of_death", "Date of birth cannot be after date of death")

	return f
}

func (f *AuthorForm) Valid() bool {
	return f.Violations.Valid()
}

// Build constructs the candidate author, even when the form carries
// violations, so a failed submission can be re-rendered with the
// sanitized values. A non-nil id (the update path) is preserved
// verbatim; the zero id leaves identity assignment to the store.
func (f *AuthorForm) Build(id uuid.UUID) *models.Author {
	return &models.Author{
		ID:          id,
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: f.birth,
		DateOfDeath: f.death,
	}
}
