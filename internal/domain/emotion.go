// ABOUTME: Primary emotion bucketing from compound sentiment
// ABOUTME: Single source of truth for Positive/Negative/Neutral/Unknown
package domain

// Emotion is the coarse bucket derived from a compound sentiment score.
type Emotion string

const (
	EmotionPositive Emotion = "Positive"
	EmotionNegative Emotion = "Negative"
	EmotionNeutral  Emotion = "Neutral"
	EmotionUnknown  Emotion = "Unknown"
)

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// PrimaryEmotion buckets a sentiment by its compound score.
func PrimaryEmotion(s *Sentiment) Emotion {
	if s == nil {
		return EmotionUnknown
	}
	switch {
	case s.Compound >= positiveThreshold:
		return EmotionPositive
	case s.Compound <= negativeThreshold:
		return EmotionNegative
	default:
		return EmotionNeutral
	}
}

// ParseEmotion matches a filter value against the known buckets.
func ParseEmotion(s string) (Emotion, bool) {
	switch Emotion(s) {
	case EmotionPositive, EmotionNegative, EmotionNeutral, EmotionUnknown:
		return Emotion(s), true
	}
	return "", false
}
