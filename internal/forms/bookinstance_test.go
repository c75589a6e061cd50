package forms

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/models"
)

func TestNewBookInstanceForm(t *testing.T) {
	bookID := uuid.New()

	t.Run("Valid", func(t *testing.T) {
		f := NewBookInstanceForm(url.Values{
			"book":     {bookID.String()},
			"imprint":  {"Grove Press, 1962"},
			"status":   {"Loaned"},
			"due_back": {"2024-03-15"},
		})
		assert.True(t, f.Valid())
	})

	t.Run("RequiredFields", func(t *testing.T) {
		f := NewBookInstanceForm(url.Values{})
		assert.False(t, f.Valid())
		assert.ElementsMatch(t, []string{"book", "imprint"}, violationFields(f.Violations))
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		f := NewBookInstanceForm(url.Values{
			"book":    {bookID.String()},
			"imprint": {"Grove Press, 1962"},
			"status":  {"Lost"},
		})
		assert.False(t, f.Valid())
		assert.Contains(t, violationFields(f.Violations), "status")
	})

	t.Run("InvalidDueDate", func(t *testing.T) {
		f := NewBookInstanceForm(url.Values{
			"book":     {bookID.String()},
			"imprint":  {"Grove Press, 1962"},
			"due_back": {"soon"},
		})
		assert.False(t, f.Valid())
		assert.Contains(t, violationFields(f.Violations), "due_back")
	})
}

func TestBookInstanceFormBuild(t *testing.T) {
	bookID := uuid.New()

	t.Run("EmptyStatusDefaultsToMaintenance", func(t *testing.T) {
		f := NewBookInstanceForm(url.Values{
			"book":    {bookID.String()},
			"imprint": {"Grove Press, 1962"},
		})
		require.True(t, f.Valid())
		assert.Equal(t, models.StatusMaintenance, f.Build(uuid.Nil).Status)
	})

	t.Run("DueBackRoundTrip", func(t *testing.T) {
		f := NewBookInstanceForm(url.Values{
			"book":     {bookID.String()},
			"imprint":  {"Grove Press, 1962"},
			"due_back": {"2024-03-15"},
		})
		bi := f.Build(uuid.Nil)
		assert.Equal(t, "Mar 15, 2024", bi.DueBackFormatted())
		assert.Equal(t, "2024-03-15", bi.DueBackISO())
	})

	t.Run("EmptyDueBackDefaultsToNow", func(t *testing.T) {
		// Clearing the date on an update must not leave the zero time
		// behind; the builder falls back to now just like a fresh copy.
		id := uuid.New()
		f := NewBookInstanceForm(url.Values{
			"book":     {bookID.String()},
			"imprint":  {"Grove Press, 1962"},
			"due_back": {""},
		})
		require.True(t, f.Valid())
		bi := f.Build(id)
		assert.False(t, bi.DueBack.IsZero())
		assert.WithinDuration(t, time.Now(), bi.DueBack, time.Minute)
	})

	t.Run("PreservesIdentity", func(t *testing.T) {
		id := uuid.New()
		f := NewBookInstanceForm(url.Values{
			"book":    {bookID.String()},
			"imprint": {"Grove Press, 1962"},
		})
		assert.Equal(t, id, f.Build(id).ID)
	})
}
