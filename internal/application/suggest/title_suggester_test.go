package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSuggestions(t *testing.T) {
	t.Run("plain lines pass through", func(t *testing.T) {
		titles := parseSuggestions("Bé 2 tuổi biếng ăn phải làm sao\nThực đơn cho bé biếng ăn")
		assert.Equal(t, []string{
			"Bé 2 tuổi biếng ăn phải làm sao",
			"Thực đơn cho bé biếng ăn",
		}, titles)
	})

	t.Run("list markers and quotes are stripped", func(t *testing.T) {
		titles := parseSuggestions("1. \"Tiêu đề một\"\n- Tiêu đề hai\n* Tiêu đề ba")
		assert.Equal(t, []string{"Tiêu đề một", "Tiêu đề hai", "Tiêu đề ba"}, titles)
	})

	t.Run("blank lines are dropped and output is capped", func(t *testing.T) {
		titles := parseSuggestions("a\n\nb\nc\nd\ne\nf\ng")
		assert.Len(t, titles, maxSuggestions)
	})

	t.Run("empty output yields nil", func(t *testing.T) {
		assert.Nil(t, parseSuggestions(""))
	})
}
