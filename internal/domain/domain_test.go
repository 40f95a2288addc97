// ABOUTME: Tests for shared domain helpers
// ABOUTME: Validates emotion bucketing, dates, and validation errors
package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryEmotion(t *testing.T) {
	tests := []struct {
		name string
		in   *Sentiment
		want Emotion
	}{
		{"nil is unknown", nil, EmotionUnknown},
		{"positive boundary", &Sentiment{Compound: 0.05}, EmotionPositive},
		{"strong positive", &Sentiment{Compound: 0.9}, EmotionPositive},
		{"negative boundary", &Sentiment{Compound: -0.05}, EmotionNegative},
		{"strong negative", &Sentiment{Compound: -0.8}, EmotionNegative},
		{"just under positive", &Sentiment{Compound: 0.0499}, EmotionNeutral},
		{"just above negative", &Sentiment{Compound: -0.0499}, EmotionNeutral},
		{"zero", &Sentiment{}, EmotionNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrimaryEmotion(tt.in))
		})
	}
}

func TestParseEmotion(t *testing.T) {
	e, ok := ParseEmotion("Positive")
	assert.True(t, ok)
	assert.Equal(t, EmotionPositive, e)

	_, ok = ParseEmotion("positive")
	assert.False(t, ok)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-01-01"))
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2023-02-29"))
	assert.False(t, ValidDate("01/02/2024"))
	assert.False(t, ValidDate(""))
}

func TestValidationErrorUnwraps(t *testing.T) {
	err := NewValidationError("dream_date", "must be YYYY-MM-DD")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "dream_date")
}

func TestEntryHasSymbol(t *testing.T) {
	e := Entry{Symbols: []string{"teeth", "falling"}}

	assert.True(t, e.HasSymbol("teeth"))
	assert.False(t, e.HasSymbol("water"))
}
