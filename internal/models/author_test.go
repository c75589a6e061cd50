package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return &parsed
}

func TestAuthorDisplayName(t *testing.T) {
	a := Author{FirstName: "Jorge Luis", FamilyName: "Borges"}
	assert.Equal(t, "Borges, Jorge Luis", a.DisplayName())

	assert.Equal(t, "", Author{FirstName: "Jorge Luis"}.DisplayName())
	assert.Equal(t, "", Author{FamilyName: "Borges"}.DisplayName())
	assert.Equal(t, "", Author{}.DisplayName())
}

func TestAuthorLifespan(t *testing.T) {
	birth := mustDate(t, "1899-08-24")
	death := mustDate(t, "1986-06-14")

	assert.Equal(t, "Aug 24, 1899 – Jun 14, 1986", Author{DateOfBirth: birth, DateOfDeath: death}.Lifespan())
	assert.Equal(t, "Aug 24, 1899 –", Author{DateOfBirth: birth}.Lifespan())
	assert.Equal(t, "", Author{DateOfDeath: death}.Lifespan())
	assert.Equal(t, "", Author{}.Lifespan())
}

func TestAuthorAge(t *testing.T) {
	t.Run("DeceasedUsesDeathDate", func(t *testing.T) {
		a := Author{
			DateOfBirth: mustDate(t, "1899-08-24"),
			DateOfDeath: mustDate(t, "1986-06-14"),
		}
		assert.Equal(t, "86 yrs", a.Age())
	})

	t.Run("AnniversaryNotYetReached", func(t *testing.T) {
		a := Author{
			DateOfBirth: mustDate(t, "1899-08-24"),
			DateOfDeath: mustDate(t, "1986-08-23"),
		}
		assert.Equal(t, "86 yrs", a.Age())
	})

	t.Run("NoBirthDate", func(t *testing.T) {
		assert.Equal(t, "", Author{}.Age())
	})

	t.Run("LivingAuthorUsesNow", func(t *testing.T) {
		birth := time.Now().AddDate(-30, 0, -1)
		a := Author{DateOfBirth: &birth}
		assert.Equal(t, "30 yrs", a.Age())
	})
}

func TestAuthorDateFormatting(t *testing.T) {
	a := Author{DateOfBirth: mustDate(t, "1899-08-24")}
	assert.Equal(t, "Aug 24, 1899", a.DateOfBirthFormatted())
	assert.Equal(t, "1899-08-24", a.DateOfBirthISO())
	assert.Equal(t, "", a.DateOfDeathFormatted())
	assert.Equal(t, "", a.DateOfDeathISO())
}

func TestAuthorURL(t *testing.T) {
	id := uuid.New()
	a := Author{ID: id}
	assert.Equal(t, "/catalog/author/"+id.String(), a.URL())
}
