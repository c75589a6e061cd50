package forms

import (
	"time"

	"locallibrary/internal/models"
)

// ParseDate parses an optional ISO-8601 calendar date. An empty value
// is accepted as absent (nil, true); a non-empty value that does not
// parse returns (nil, false) so the caller can record an "invalid
// date" violation.
func ParseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// InTheFuture reports whether the date lies strictly after now.
// A missing date is never in the future.
func InTheFuture(t *time.Time) bool {
	return t != nil && t.After(time.Now())
}

// BirthBeforeDeath reports whether the pair is in acceptable order.
// Missing either date is acceptable, and so are equal dates; only a
// birth strictly after the death is wrong.
func BirthBeforeDeath(birth, death *time.Time) bool {
	if birth == nil || death == nil {
		return true
	}
	return !birth.After(*death)
}
