// ABOUTME: Tests for the golem and VADER adapters
// ABOUTME: Exercises the real dictionaries end to end
package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/lexicon"
)

func TestVaderScorer(t *testing.T) {
	v := NewVaderScorer()

	t.Run("positive text", func(t *testing.T) {
		s, err := v.Score("I was so happy, it was a wonderful and beautiful day")
		require.NoError(t, err)
		assert.Equal(t, domain.EmotionPositive, domain.PrimaryEmotion(&s))
		assert.InDelta(t, 1.0, s.Pos+s.Neg+s.Neu, 0.01)
	})

	t.Run("negative text", func(t *testing.T) {
		s, err := v.Score("It was a horrible, terrifying and awful nightmare")
		require.NoError(t, err)
		assert.Equal(t, domain.EmotionNegative, domain.PrimaryEmotion(&s))
	})
}

func TestEnglishLemmatizer(t *testing.T) {
	lem, err := NewEnglishLemmatizer()
	require.NoError(t, err)

	assert.Equal(t, "snake", lem.Lemma("snakes"))

	a := New(lexicon.Default(), WithLemmatizer(lem))
	assert.Contains(t, a.ExtractSymbols("Snakes everywhere, and my teeth fell out."), "snake")
	assert.Contains(t, a.ExtractSymbols("Snakes everywhere, and my teeth fell out."), "teeth")
}
