package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello", SanitizeText("  hello  "))
	assert.Equal(t, "a &lt;b&gt; c", SanitizeText("a <b> c"))
	assert.Equal(t, "O&#39;Reilly", SanitizeText("O'Reilly"))
	assert.Equal(t, "", SanitizeText("   "))
}

func TestSanitizeLongText(t *testing.T) {
	t.Run("EscapesRestrictedSet", func(t *testing.T) {
		got := SanitizeLongText(`O'Reilly & <b> {x}`)
		assert.Equal(t, `O'Reilly &amp; &lt;b&gt; &#123;x&#125;`, got)
	})

	t.Run("QuotesPreserved", func(t *testing.T) {
		got := SanitizeLongText(`she said "hi" and 'bye'`)
		assert.Equal(t, `she said "hi" and 'bye'`, got)
	})

	t.Run("Trims", func(t *testing.T) {
		assert.Equal(t, "plain", SanitizeLongText("  plain  "))
	})

	// Re-applying would double-escape; the handlers call the
	// sanitizer exactly once per write, which keeps stored values
	// stable.
	t.Run("SecondApplicationDoubleEscapes", func(t *testing.T) {
		once := SanitizeLongText("a & b")
		assert.Equal(t, "a &amp; b", once)
		assert.Equal(t, "a &amp;amp; b", SanitizeLongText(once))
	})
}

func TestNormalizeMulti(t *testing.T) {
	t.Run("AbsentBecomesEmpty", func(t *testing.T) {
		got := NormalizeMulti(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("ScalarBecomesOneElement", func(t *testing.T) {
		assert.Equal(t, []string{"Fiction"}, NormalizeMulti([]string{"Fiction"}))
	})

	t.Run("SliceUnchanged", func(t *testing.T) {
		assert.Equal(t, []string{"Fiction", "Drama"}, NormalizeMulti([]string{"Fiction", "Drama"}))
	})

	t.Run("ElementsSanitized", func(t *testing.T) {
		assert.Equal(t, []string{"a&amp;b"}, NormalizeMulti([]string{" a&b "}))
	})
}
