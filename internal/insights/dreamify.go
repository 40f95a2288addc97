// ABOUTME: Creative rewrites of dream text
// ABOUTME: Poem and noir templates seeded with sampled symbols
package insights

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/harper/dreamdecoder/internal/domain"
)

// Dreamify styles.
const (
	StylePoem = "poem"
	StyleNoir = "noir"
)

// EmptyDream is returned when there is no text to rewrite.
const EmptyDream = "Empty dream..."

// Sampler picks up to k distinct items from items.
type Sampler interface {
	Sample(items []string, k int) []string
}

// RandomSampler samples uniformly without replacement.
type RandomSampler struct{}

// Sample returns min(k, len(items)) items in random order.
func (RandomSampler) Sample(items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	out := make([]string, 0, k)
	for _, i := range rand.Perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out
}

// Dreamify rewrites text in the given style. Unknown styles echo the text.
func (s *Service) Dreamify(text, style string) string {
	if text == "" {
		return EmptyDream
	}
	analysis := s.analyzer.Analyze(text)
	emotion := strings.ToLower(string(domain.PrimaryEmotion(analysis.Sentiment)))
	feat := s.sampler.Sample(analysis.Symbols, 2)

	switch style {
	case StylePoem:
		return strings.Join([]string{
			fmt.Sprintf("A dream of %s feeling,", emotion),
			fmt.Sprintf("Where '%s' dance, secrets revealing.", pick(feat, 0, "shadows")),
			fmt.Sprintf("Perhaps '%s' adds to the stealing.", pick(feat, 1, "silence")),
		}, "\n")
	case StyleNoir:
		return fmt.Sprintf("The subconscious threw a %s curveball. Felt like '%s'. Woke up needing answers.",
			emotion, pick(feat, 0, "emptiness"))
	default:
		return "Original: " + text
	}
}

// DreamifyEntry rewrites a stored entry's text.
func (s *Service) DreamifyEntry(id, style string) (string, error) {
	e, err := s.journal.Get(id)
	if err != nil {
		return "", err
	}
	return s.Dreamify(e.Text, style), nil
}

func pick(items []string, i int, fallback string) string {
	if i < len(items) {
		return items[i]
	}
	return fallback
}
