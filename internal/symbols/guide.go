// ABOUTME: Symbol guide storage and per-user enrichment
// ABOUTME: Reads the guide CSV and adds personal frequency and co-occurrence
package symbols

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/journal"
)

const (
	colName          = "symbol_name"
	colTraditional   = "traditional_meaning"
	colPsychological = "psychological_meaning"
)

// Columns lists every column the guide file must carry.
var Columns = []string{colName, colTraditional, colPsychological}

// maxCoOccurring caps the co-occurrence list in Details.
const maxCoOccurring = 5

// Meaning is one row of the symbol guide.
type Meaning struct {
	SymbolName           string `json:"symbol_name"`
	TraditionalMeaning   string `json:"traditional_meaning"`
	PsychologicalMeaning string `json:"psychological_meaning"`
}

// CoOccurrence counts how often another symbol appeared alongside the one
// being looked up.
type CoOccurrence struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// Details is a guide row enriched with the user's own history.
type Details struct {
	Meaning
	PersonalFrequency int            `json:"personal_frequency"`
	CoOccurring       []CoOccurrence `json:"co_occurring_symbols"`
}

// EntryLister provides a user's journal entries.
type EntryLister interface {
	List(userID string) []domain.Entry
}

// Guide serves symbol meanings from a CSV file.
type Guide struct {
	path    string
	entries EntryLister
	log     zerolog.Logger
}

// NewGuide creates a guide backed by the file at path. entries may be nil, in
// which case Details never computes personal statistics.
func NewGuide(path string, entries EntryLister, log zerolog.Logger) *Guide {
	return &Guide{path: path, entries: entries, log: log}
}

// Path returns the backing file location.
func (g *Guide) Path() string {
	return g.path
}

// Init creates an empty guide file if missing and adds absent columns to an
// existing one.
func (g *Guide) Init() error {
	header, records, err := journal.ReadCSVFile(g.path)
	if errors.Is(err, os.ErrNotExist) {
		g.log.Info().Str("path", g.path).Msg("creating symbol guide file")
		return journal.WriteCSVFile(g.path, Columns, nil)
	}
	if err != nil {
		return fmt.Errorf("read symbol guide: %w", err)
	}

	missing := journal.MissingColumns(header, Columns)
	if len(missing) == 0 {
		return nil
	}
	g.log.Info().Strs("columns", missing).Msg("adding missing symbol guide columns")
	return journal.WriteCSVFile(g.path, Columns, normalize(header, records))
}

// Seed writes the built-in meanings for vocabulary when the guide has no
// rows yet. It reports how many rows were written.
func (g *Guide) Seed(vocabulary []string) (int, error) {
	_, records, err := journal.ReadCSVFile(g.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("read symbol guide: %w", err)
	}
	if len(records) > 0 {
		return 0, nil
	}

	rows := make([][]string, 0, len(vocabulary))
	for _, sym := range vocabulary {
		m := defaultMeanings[sym]
		rows = append(rows, []string{sym, m[0], m[1]})
	}
	if err := journal.WriteCSVFile(g.path, Columns, rows); err != nil {
		return 0, fmt.Errorf("seed symbol guide: %w", err)
	}
	g.log.Info().Int("symbols", len(rows)).Msg("seeded symbol guide")
	return len(rows), nil
}

// Load returns every guide row keyed by lower-cased symbol name. When a name
// appears more than once the first row wins. A missing file is an empty guide.
func (g *Guide) Load() (map[string]Meaning, error) {
	header, records, err := journal.ReadCSVFile(g.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]Meaning{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load symbol guide: %w", err)
	}

	out := make(map[string]Meaning, len(records))
	for _, rec := range normalize(header, records) {
		key := strings.ToLower(strings.TrimSpace(rec[0]))
		if key == "" {
			continue
		}
		if _, dup := out[key]; dup {
			continue
		}
		out[key] = Meaning{SymbolName: key, TraditionalMeaning: rec[1], PsychologicalMeaning: rec[2]}
	}
	return out, nil
}

// Details looks up name in the guide. With a non-empty userID it also counts
// the user's entries containing the symbol and the top symbols seen alongside
// it, ordered by count with ties in first-seen order.
func (g *Guide) Details(name, userID string) (Details, error) {
	guide, err := g.Load()
	if err != nil {
		return Details{}, err
	}
	key := strings.ToLower(strings.TrimSpace(name))
	m, ok := guide[key]
	if !ok {
		return Details{}, fmt.Errorf("symbol %q: %w", name, domain.ErrNotFound)
	}

	d := Details{Meaning: m, CoOccurring: []CoOccurrence{}}
	if userID == "" || g.entries == nil {
		return d, nil
	}

	counts := make(map[string]int)
	var order []string
	for _, e := range g.entries.List(userID) {
		if !e.HasSymbol(key) {
			continue
		}
		d.PersonalFrequency++
		for _, s := range e.Symbols {
			if s == key {
				continue
			}
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxCoOccurring {
		order = order[:maxCoOccurring]
	}
	for _, s := range order {
		d.CoOccurring = append(d.CoOccurring, CoOccurrence{Symbol: s, Count: counts[s]})
	}
	return d, nil
}

// normalize reorders records into Columns order, filling absent cells with "".
func normalize(header []string, records [][]string) [][]string {
	index := journal.HeaderIndex(header)
	out := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(Columns))
		for j, col := range Columns {
			if k, ok := index[col]; ok && k < len(rec) {
				row[j] = rec[k]
			}
		}
		out[i] = row
	}
	return out
}
