// ABOUTME: Query and aggregation views over a user's journal
// ABOUTME: Reflections, timeline, recommendations and DNA lookups
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/harper/dreamdecoder/internal/analyzer"
	"github.com/harper/dreamdecoder/internal/dna"
	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/journal"
)

// DefaultReflectionDays is the look-back window used when none is given.
const DefaultReflectionDays = 30

// Reflection messages.
const (
	NoRecentDreams   = "No recent dreams found."
	NoStrongPatterns = "No strong patterns detected."
	NightmaresNoted  = "Nightmares noted recently."
	NegativeCommon   = "Negative emotions seem common recently."
)

// DreamNotFound is the single recommendation returned for an unknown entry.
const DreamNotFound = "Dream not found."

// Journal is the subset of journal.Store the service reads from.
type Journal interface {
	Get(id string) (domain.Entry, error)
	List(userID string) []domain.Entry
	Search(userID string, filter journal.Filter) []journal.Result
}

// TimelinePoint is one entry on the emotion timeline.
type TimelinePoint struct {
	Date     string         `json:"date"`
	Emotion  domain.Emotion `json:"emotion"`
	Compound float64        `json:"compound"`
	DreamID  string         `json:"dream_id"`
}

// Service answers read-side questions about a journal.
type Service struct {
	journal  Journal
	analyzer *analyzer.Analyzer
	dna      *dna.Calculator
	sampler  Sampler
	now      func() time.Time
	log      zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSampler sets the symbol sampler used by Dreamify.
func WithSampler(s Sampler) Option {
	return func(svc *Service) {
		svc.sampler = s
	}
}

// WithClock overrides the time source used for reflection windows.
func WithClock(now func() time.Time) Option {
	return func(svc *Service) {
		svc.now = now
	}
}

// WithLogger sets the service logger.
func WithLogger(l zerolog.Logger) Option {
	return func(svc *Service) {
		svc.log = l
	}
}

// NewService creates a service over j.
func NewService(j Journal, a *analyzer.Analyzer, opts ...Option) *Service {
	svc := &Service{
		journal:  j,
		analyzer: a,
		sampler:  RandomSampler{},
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.dna = dna.NewCalculator(a, svc.log)
	return svc
}

// Reflections summarizes patterns in the user's entries dated within the last
// days days. A non-positive days uses DefaultReflectionDays.
func (s *Service) Reflections(userID string, days int) []string {
	if days <= 0 {
		days = DefaultReflectionDays
	}
	y, m, d := s.now().AddDate(0, 0, -days).Date()
	since := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	recent := s.journal.Search(userID, journal.Filter{Since: &since})
	if len(recent) == 0 {
		return []string{NoRecentDreams}
	}

	n := float64(len(recent))
	var nightmares, negatives int
	symbolCounts := make(map[string]int)
	var symbolOrder []string
	for _, r := range recent {
		if r.DetectedType == domain.DreamNightmare {
			nightmares++
		}
		if r.PrimaryEmotion == domain.EmotionNegative {
			negatives++
		}
		for _, sym := range r.Symbols {
			if _, seen := symbolCounts[sym]; !seen {
				symbolOrder = append(symbolOrder, sym)
			}
			symbolCounts[sym]++
		}
	}

	var out []string
	if float64(nightmares) >= math.Max(1, n*0.2) {
		out = append(out, NightmaresNoted)
	}
	if float64(negatives) >= math.Max(1, n*0.3) {
		out = append(out, NegativeCommon)
	}
	if top, freq := mostCommon(symbolOrder, symbolCounts); freq > 1 && float64(freq) >= n*0.15 {
		out = append(out, fmt.Sprintf("Symbol '%s' recurring recently (%d times).", top, freq))
	}

	if len(out) == 0 {
		return []string{NoStrongPatterns}
	}
	return out
}

// mostCommon returns the highest count in order, preferring the earliest on ties.
func mostCommon(order []string, counts map[string]int) (string, int) {
	var best string
	var freq int
	for _, k := range order {
		if counts[k] > freq {
			best, freq = k, counts[k]
		}
	}
	return best, freq
}

// Timeline returns one point per entry in the range, ordered by date.
// Entries without sentiment plot at zero.
func (s *Service) Timeline(userID string, since, until *time.Time) []TimelinePoint {
	results := s.journal.Search(userID, journal.Filter{Since: since, Until: until})
	points := make([]TimelinePoint, 0, len(results))
	for _, r := range results {
		var compound float64
		if r.Sentiment != nil {
			compound = math.Round(r.Sentiment.Compound*1000) / 1000
		}
		points = append(points, TimelinePoint{
			Date:     r.Date,
			Emotion:  r.PrimaryEmotion,
			Compound: compound,
			DreamID:  r.ID,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// Recommendations suggests follow-ups based on the entry's primary emotion.
// An unknown id yields the single DreamNotFound message.
func (s *Service) Recommendations(id string) []string {
	e, err := s.journal.Get(id)
	if err != nil {
		return []string{DreamNotFound}
	}
	switch domain.PrimaryEmotion(e.Sentiment) {
	case domain.EmotionNegative:
		return []string{"Consider journaling.", "Try calming meditation."}
	case domain.EmotionPositive:
		return []string{"Reflect on the positive feelings.", "Embrace the energy."}
	default:
		return []string{"Reflect on symbols and events."}
	}
}

// IsDreamNotFound reports whether recs is the unknown-entry response.
func IsDreamNotFound(recs []string) bool {
	return len(recs) == 1 && recs[0] == DreamNotFound
}

// DNA returns the profile of the entry with the given id.
func (s *Service) DNA(id string) (dna.Profile, error) {
	e, err := s.journal.Get(id)
	if err != nil {
		return dna.Profile{}, err
	}
	return s.dna.Calculate(e), nil
}
