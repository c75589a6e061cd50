package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, ok := ParseDate(s)
	require.True(t, ok)
	require.NotNil(t, parsed)
	return parsed
}

func TestParseDate(t *testing.T) {
	t.Run("EmptyIsAbsent", func(t *testing.T) {
		parsed, ok := ParseDate("")
		assert.True(t, ok)
		assert.Nil(t, parsed)
	})

	t.Run("ValidISODate", func(t *testing.T) {
		parsed, ok := ParseDate("1990-01-15")
		assert.True(t, ok)
		require.NotNil(t, parsed)
		assert.Equal(t, 1990, parsed.Year())
		assert.Equal(t, time.January, parsed.Month())
		assert.Equal(t, 15, parsed.Day())
	})

	t.Run("Garbage", func(t *testing.T) {
		parsed, ok := ParseDate("not-a-date")
		assert.False(t, ok)
		assert.Nil(t, parsed)
	})
}

func TestInTheFuture(t *testing.T) {
	assert.False(t, InTheFuture(nil))

	past := time.Now().AddDate(-1, 0, 0)
	assert.False(t, InTheFuture(&past))

	future := time.Now().AddDate(1, 0, 0)
	assert.True(t, InTheFuture(&future))
}

func TestBirthBeforeDeath(t *testing.T) {
	t.Run("MissingEitherIsAcceptable", func(t *testing.T) {
		assert.True(t, BirthBeforeDeath(nil, nil))
		assert.True(t, BirthBeforeDeath(date(t, "1990-01-01"), nil))
		assert.True(t, BirthBeforeDeath(nil, date(t, "2000-01-01")))
	})

	t.Run("InOrder", func(t *testing.T) {
		assert.True(t, BirthBeforeDeath(date(t, "1990-01-01"), date(t, "2000-01-01")))
	})

	t.Run("EqualDatesAcceptable", func(t *testing.T) {
		assert.True(t, BirthBeforeDeath(date(t, "2000-01-01"), date(t, "2000-01-01")))
	})

	t.Run("BirthAfterDeath", func(t *testing.T) {
		assert.False(t, BirthBeforeDeath(date(t, "2000-01-01"), date(t, "1990-01-01")))
	})
}
