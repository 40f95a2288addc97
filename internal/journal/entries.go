// ABOUTME: Dream entry creation and management
// ABOUTME: Add, get, update, delete, list and search over a whole-file repository
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harper/dreamdecoder/internal/domain"
)

// Repository loads and saves the full entry collection.
type Repository interface {
	Load() ([]domain.Entry, error)
	Save(entries []domain.Entry) error
}

// Analyzer derives type, sentiment and symbols from text.
type Analyzer interface {
	Analyze(text string) domain.Analysis
}

// Store implements journal operations. Each call reloads the collection,
// applies the change in memory, and rewrites it.
type Store struct {
	repo     Repository
	analyzer Analyzer
	now      func() time.Time
	log      zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the store logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore creates a store over repo.
func NewStore(repo Repository, analyzer Analyzer, opts ...Option) *Store {
	s := &Store{
		repo:     repo,
		analyzer: analyzer,
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateInput carries optional replacement values. Nil means unchanged.
type UpdateInput struct {
	Text *string
	Date *string
}

// Filter defines search criteria. Zero-valued fields do not filter.
type Filter struct {
	Text    string
	Since   *time.Time
	Until   *time.Time
	Emotion domain.Emotion
	Symbol  string
}

// Result is a search hit with its primary emotion attached.
type Result struct {
	domain.Entry
	PrimaryEmotion domain.Emotion `json:"primary_emotion"`
}

// Add validates and stores a new entry, returning its ID.
func (s *Store) Add(userID, text, date string) (string, error) {
	if !domain.ValidDate(date) {
		return "", domain.NewValidationError("dream_date", "must be a YYYY-MM-DD calendar date")
	}
	if strings.TrimSpace(userID) == "" {
		return "", domain.NewValidationError("user_id", "is required")
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.NewValidationError("dream_text", "is required")
	}

	entries, err := s.repo.Load()
	if err != nil {
		return "", fmt.Errorf("add entry: %w", err)
	}

	now := s.now()
	entry := domain.Entry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      text,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.analyzer.Analyze(text).Apply(&entry)

	if err := s.repo.Save(append(entries, entry)); err != nil {
		return "", fmt.Errorf("add entry: %w", err)
	}
	s.log.Info().Str("dream_id", entry.ID).Str("user_id", userID).Msg("dream added")
	return entry.ID, nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (domain.Entry, error) {
	for _, e := range s.read() {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Entry{}, fmt.Errorf("get entry %s: %w", id, domain.ErrNotFound)
}

// List returns every entry belonging to userID in file order.
func (s *Store) List(userID string) []domain.Entry {
	var out []domain.Entry
	for _, e := range s.read() {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// Update applies text and date changes. An invalid date is ignored. When
// nothing changes the file is not rewritten and UpdatedAt is kept.
func (s *Store) Update(id string, in UpdateInput) (domain.Entry, error) {
	entries, err := s.repo.Load()
	if err != nil {
		return domain.Entry{}, fmt.Errorf("update entry: %w", err)
	}

	idx := indexOf(entries, id)
	if idx < 0 {
		return domain.Entry{}, fmt.Errorf("update entry %s: %w", id, domain.ErrNotFound)
	}
	e := &entries[idx]

	changed, reanalyze := false, false
	if in.Text != nil && *in.Text != e.Text {
		e.Text = *in.Text
		changed, reanalyze = true, true
	}
	if in.Date != nil && *in.Date != e.Date {
		if domain.ValidDate(*in.Date) {
			e.Date = *in.Date
			changed = true
		} else {
			s.log.Debug().Str("dream_id", id).Str("date", *in.Date).Msg("ignoring invalid date")
		}
	}
	if !changed {
		return *e, nil
	}

	e.UpdatedAt = s.now()
	if reanalyze {
		s.analyzer.Analyze(e.Text).Apply(e)
	}
	if err := s.repo.Save(entries); err != nil {
		return domain.Entry{}, fmt.Errorf("update entry: %w", err)
	}
	return *e, nil
}

// Delete removes the entry with the given ID.
func (s *Store) Delete(id string) error {
	entries, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	idx := indexOf(entries, id)
	if idx < 0 {
		return fmt.Errorf("delete entry %s: %w", id, domain.ErrNotFound)
	}
	entries = append(entries[:idx], entries[idx+1:]...)

	if err := s.repo.Save(entries); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	s.log.Info().Str("dream_id", id).Msg("dream deleted")
	return nil
}

// Search returns the user's entries matching every set filter.
func (s *Store) Search(userID string, filter Filter) []Result {
	var out []Result
	for _, e := range s.List(userID) {
		r := Result{Entry: e, PrimaryEmotion: domain.PrimaryEmotion(e.Sentiment)}
		if matchesFilter(r, filter) {
			out = append(out, r)
		}
	}
	return out
}

// read loads the collection for read-only operations. A load failure is
// logged and treated as an empty journal.
func (s *Store) read() []domain.Entry {
	entries, err := s.repo.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("journal unreadable, treating as empty")
		return nil
	}
	return entries
}

// matchesFilter checks if a result matches the search filter.
func matchesFilter(r Result, f Filter) bool {
	// Entries with unparseable dates never match a date-ranged search
	if f.Since != nil || f.Until != nil {
		d, err := domain.ParseDate(r.Date)
		if err != nil {
			return false
		}
		if f.Since != nil && d.Before(*f.Since) {
			return false
		}
		if f.Until != nil && d.After(*f.Until) {
			return false
		}
	}

	if f.Text != "" && !strings.Contains(strings.ToLower(r.Text), strings.ToLower(f.Text)) {
		return false
	}

	if f.Emotion != "" && r.PrimaryEmotion != f.Emotion {
		return false
	}

	if f.Symbol != "" && !r.HasSymbol(strings.ToLower(f.Symbol)) {
		return false
	}

	return true
}

func indexOf(entries []domain.Entry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

// ParseBound parses a search date bound in natural language or ISO form.
// Bounds are interpreted in UTC to line up with entry dates. Empty input
// means no bound.
func ParseBound(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}

// BuildFilter assembles a filter from raw query values. Empty values do not
// filter; bad dates or an unknown emotion are validation errors.
func BuildFilter(text, since, until, emotion, symbol string) (Filter, error) {
	f := Filter{Text: text, Symbol: symbol}

	var err error
	if f.Since, err = ParseBound(since); err != nil {
		return f, domain.NewValidationError("start_date", err.Error())
	}
	if f.Until, err = ParseBound(until); err != nil {
		return f, domain.NewValidationError("end_date", err.Error())
	}
	if emotion != "" {
		e, ok := domain.ParseEmotion(emotion)
		if !ok {
			return f, domain.NewValidationError("filter_emotion", "must be Positive, Negative, Neutral, or Unknown")
		}
		f.Emotion = e
	}
	return f, nil
}
