// ABOUTME: Flat-file journal repository
// ABOUTME: Whole-file CSV load and rewrite with self-healing columns
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harper/dreamdecoder/internal/domain"
)

// CSVRepository stores the whole journal in one CSV file. Every call reads or
// rewrites the full file; there is no locking.
type CSVRepository struct {
	path string
	log  zerolog.Logger
}

// NewCSVRepository creates a repository backed by the file at path.
func NewCSVRepository(path string, log zerolog.Logger) *CSVRepository {
	return &CSVRepository{path: path, log: log}
}

// Path returns the backing file location.
func (r *CSVRepository) Path() string {
	return r.path
}

// Init creates the journal file if it is missing and rewrites it once when
// expected columns are absent.
func (r *CSVRepository) Init() error {
	header, err := readHeader(r.path)
	if errors.Is(err, os.ErrNotExist) {
		r.log.Info().Str("path", r.path).Msg("creating journal file")
		return r.Save(nil)
	}
	if err != nil {
		return fmt.Errorf("read journal header: %w", err)
	}

	missing := MissingColumns(header, Columns)
	if len(missing) == 0 {
		return nil
	}
	r.log.Info().Strs("columns", missing).Msg("adding missing journal columns")
	entries, err := r.Load()
	if err != nil {
		return err
	}
	return r.Save(entries)
}

// Load reads every entry. A missing file is an empty journal.
func (r *CSVRepository) Load() ([]domain.Entry, error) {
	rows, err := readRows(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.Entry{
			ID:           row.get(colID),
			UserID:       row.get(colUserID),
			Text:         row.get(colText),
			Date:         row.get(colDate),
			CreatedAt:    decodeTimestamp(row.get(colCreatedAt)),
			UpdatedAt:    decodeTimestamp(row.get(colUpdatedAt)),
			DetectedType: domain.DreamType(row.get(colType)),
			Sentiment:    DecodeSentiment(row.get(colSentiment)),
			Symbols:      DecodeSymbols(row.get(colSymbols)),
		})
	}
	return entries, nil
}

// Save rewrites the whole file with entries.
func (r *CSVRepository) Save(entries []domain.Entry) error {
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		records = append(records, []string{
			e.ID,
			e.UserID,
			e.Text,
			e.Date,
			EncodeTimestamp(e.CreatedAt),
			EncodeTimestamp(e.UpdatedAt),
			string(e.DetectedType),
			EncodeSentiment(e.Sentiment),
			EncodeSymbols(e.Symbols),
		})
	}
	if err := WriteCSVFile(r.path, Columns, records); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	return nil
}

// row is one CSV record addressed by header name. Absent cells read as the
// column default.
type row struct {
	index  map[string]int
	values []string
}

func (r row) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.values) {
		return columnDefault(col)
	}
	return r.values[i]
}

// ReadCSVFile returns the header and records of a CSV file. An empty file has
// no header and no records. Stray quotes inside unquoted fields are kept as
// text; a row that still cannot be parsed is logged and skipped so the rest of
// the file loads.
func ReadCSVFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate short or long rows
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]string
	lastBad := -1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) && perr.StartLine != lastBad {
			lastBad = perr.StartLine
			log.Warn().Err(err).Str("path", path).Int("line", perr.StartLine).Msg("skipping unreadable csv row")
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, record)
	}
	return header, records, nil
}

// WriteCSVFile writes header and records to a temporary file next to path and
// renames it into place.
func WriteCSVFile(path string, header []string, records [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := w.WriteAll(records); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func readHeader(path string) ([]string, error) {
	header, _, err := ReadCSVFile(path)
	return header, err
}

func readRows(path string) ([]row, error) {
	header, records, err := ReadCSVFile(path)
	if err != nil {
		return nil, err
	}
	index := HeaderIndex(header)
	rows := make([]row, len(records))
	for i, rec := range records {
		rows[i] = row{index: index, values: rec}
	}
	return rows, nil
}

// HeaderIndex maps column names to their position.
func HeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	return index
}

// MissingColumns returns the entries of want absent from header, in want order.
func MissingColumns(header, want []string) []string {
	index := HeaderIndex(header)
	var missing []string
	for _, col := range want {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
