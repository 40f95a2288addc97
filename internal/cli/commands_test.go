// ABOUTME: Tests for the dream and journal-wide commands
// ABOUTME: Runs each command end to end against a temporary journal
package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/dreamdecoder/internal/dna"
	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/insights"
	"github.com/harper/dreamdecoder/internal/journal"
	"github.com/harper/dreamdecoder/internal/symbols"
)

func TestListCommand(t *testing.T) {
	dir := setupCLI(t)
	first := addDream(t, dir, "Walking through a library", "2024-03-01")
	second := addDream(t, dir, "Swimming in the ocean", "2024-03-02")

	t.Run("table lists every dream", func(t *testing.T) {
		out, err := run(t, dir, "list")
		require.NoError(t, err)
		assert.Contains(t, out, first.ID)
		assert.Contains(t, out, second.ID)
	})

	t.Run("limit keeps the most recent", func(t *testing.T) {
		out, err := run(t, dir, "list", "--limit", "1", "--json")
		require.NoError(t, err)

		var entries []domain.Entry
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, second.ID, entries[0].ID)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		out, err := run(t, dir, "list", "--user", "someone-else", "--json")
		require.NoError(t, err)
		assert.Equal(t, "null", strings.TrimSpace(out))
	})
}

func TestSearchCommand(t *testing.T) {
	dir := setupCLI(t)
	snake := addDream(t, dir, "A snake in the house", "2024-03-01")
	addDream(t, dir, "Driving a car down the road", "2024-03-05")

	t.Run("filters by symbol", func(t *testing.T) {
		out, err := run(t, dir, "search", "--symbol", "snake", "--json")
		require.NoError(t, err)

		var results []journal.Result
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		require.Len(t, results, 1)
		assert.Equal(t, snake.ID, results[0].ID)
	})

	t.Run("filters by text and date range", func(t *testing.T) {
		out, err := run(t, dir, "search", "car", "--since", "2024-03-04", "--until", "2024-03-06", "--json")
		require.NoError(t, err)

		var results []journal.Result
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		require.Len(t, results, 1)
		assert.Equal(t, "2024-03-05", results[0].Date)
	})

	t.Run("reports no matches", func(t *testing.T) {
		out, err := run(t, dir, "search", "nothing like this")
		require.NoError(t, err)
		assert.Contains(t, out, "No matching dreams.")
	})

	t.Run("rejects an unknown emotion", func(t *testing.T) {
		_, err := run(t, dir, "search", "--emotion", "Ecstatic")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects a bad date", func(t *testing.T) {
		_, err := run(t, dir, "search", "--since", "not a date at all")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestDreamLifecycle(t *testing.T) {
	dir := setupCLI(t)
	entry := addDream(t, dir, "Walking home through the forest", "2024-03-01")

	t.Run("show prints the dream", func(t *testing.T) {
		out, err := run(t, dir, "show", entry.ID)
		require.NoError(t, err)
		assert.Contains(t, out, entry.ID)
		assert.Contains(t, out, "Walking home through the forest")
	})

	t.Run("update changes text and re-analyzes", func(t *testing.T) {
		out, err := run(t, dir, "update", entry.ID, "--text", "A nightmare about a spider")
		require.NoError(t, err)
		assert.Contains(t, out, "Dream updated")

		out, err = run(t, dir, "show", entry.ID, "--json")
		require.NoError(t, err)
		var got domain.Entry
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "A nightmare about a spider", got.Text)
		assert.Equal(t, domain.DreamNightmare, got.DetectedType)
		assert.Contains(t, got.Symbols, "spider")
		assert.Equal(t, "2024-03-01", got.Date)
	})

	t.Run("update keeps the date when the new one is invalid", func(t *testing.T) {
		_, err := run(t, dir, "update", entry.ID, "--date", "yesterday-ish")
		require.NoError(t, err)

		got, err := run(t, dir, "show", entry.ID, "--json")
		require.NoError(t, err)
		assert.Contains(t, got, `"dream_date": "2024-03-01"`)
	})

	t.Run("update needs a change", func(t *testing.T) {
		_, err := run(t, dir, "update", entry.ID)
		assert.Error(t, err)
	})

	t.Run("dna returns both halves", func(t *testing.T) {
		out, err := run(t, dir, "dna", entry.ID, "--json")
		require.NoError(t, err)

		var profile dna.Profile
		require.NoError(t, json.Unmarshal([]byte(out), &profile))
		assert.NotEmpty(t, profile.Emotions)
		require.NotEmpty(t, profile.Themes)
		assert.Equal(t, "Conflict/Fear", profile.Themes[0].Label)
	})

	t.Run("recommend lists advice", func(t *testing.T) {
		out, err := run(t, dir, "recommend", entry.ID)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "- "))
	})

	t.Run("dreamify echoes unknown styles", func(t *testing.T) {
		out, err := run(t, dir, "dreamify", entry.ID, "--style", "haiku")
		require.NoError(t, err)
		assert.Equal(t, "Original: A nightmare about a spider", strings.TrimSpace(out))
	})

	t.Run("delete removes the dream", func(t *testing.T) {
		out, err := run(t, dir, "delete", entry.ID)
		require.NoError(t, err)
		assert.Contains(t, out, "Dream deleted")

		_, err = run(t, dir, "show", entry.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		for _, args := range [][]string{
			{"show", "missing"},
			{"update", "missing", "--text", "x"},
			{"delete", "missing"},
			{"dna", "missing"},
			{"recommend", "missing"},
			{"dreamify", "missing"},
		} {
			_, err := run(t, dir, args...)
			assert.ErrorIs(t, err, domain.ErrNotFound, args[0])
		}
	})
}

func TestDreamifyText(t *testing.T) {
	dir := setupCLI(t)

	t.Run("empty text", func(t *testing.T) {
		out, err := run(t, dir, "dreamify", "--text", "")
		require.NoError(t, err)
		assert.Equal(t, insights.EmptyDream, strings.TrimSpace(out))
	})

	t.Run("noir is one line", func(t *testing.T) {
		out, err := run(t, dir, "dreamify", "--text", "A cat on the moon", "--style", "noir")
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)
	})

	t.Run("needs an id or text", func(t *testing.T) {
		_, err := run(t, dir, "dreamify")
		assert.Error(t, err)
	})
}

func TestSymbolCommand(t *testing.T) {
	dir := setupCLI(t)
	addDream(t, dir, "A snake in the house near a tree", "2024-03-01")
	addDream(t, dir, "The snake came back to the house", "2024-03-02")

	t.Run("enriches the seeded meaning", func(t *testing.T) {
		out, err := run(t, dir, "symbol", "Snake", "--json")
		require.NoError(t, err)

		var d symbols.Details
		require.NoError(t, json.Unmarshal([]byte(out), &d))
		assert.Equal(t, "snake", d.SymbolName)
		assert.NotEmpty(t, d.TraditionalMeaning)
		assert.Equal(t, 2, d.PersonalFrequency)
		require.NotEmpty(t, d.CoOccurring)
		assert.Equal(t, symbols.CoOccurrence{Symbol: "house", Count: 2}, d.CoOccurring[0])
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := run(t, dir, "symbol", "spaceship")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReflectCommand(t *testing.T) {
	dir := setupCLI(t)

	out, err := run(t, dir, "reflect")
	require.NoError(t, err)
	assert.Equal(t, insights.NoRecentDreams, strings.TrimSpace(out))
}

func TestTimelineCommand(t *testing.T) {
	dir := setupCLI(t)
	later := addDream(t, dir, "Flying over the mountain", "2024-03-05")
	earlier := addDream(t, dir, "Falling into a pit", "2024-03-01")

	t.Run("sorted by date", func(t *testing.T) {
		out, err := run(t, dir, "timeline", "--json")
		require.NoError(t, err)

		var points []insights.TimelinePoint
		require.NoError(t, json.Unmarshal([]byte(out), &points))
		require.Len(t, points, 2)
		assert.Equal(t, earlier.ID, points[0].DreamID)
		assert.Equal(t, later.ID, points[1].DreamID)
	})

	t.Run("bounded", func(t *testing.T) {
		out, err := run(t, dir, "timeline", "--since", "2024-03-03", "--json")
		require.NoError(t, err)

		var points []insights.TimelinePoint
		require.NoError(t, json.Unmarshal([]byte(out), &points))
		require.Len(t, points, 1)
		assert.Equal(t, later.ID, points[0].DreamID)
	})

	t.Run("bad bound", func(t *testing.T) {
		_, err := run(t, dir, "timeline", "--until", "not a date at all")
		assert.Error(t, err)
	})
}

func TestExportCommand(t *testing.T) {
	t.Run("no entries", func(t *testing.T) {
		dir := setupCLI(t)
		_, err := run(t, dir, "export")
		assert.ErrorIs(t, err, insights.ErrNoEntries)
	})

	t.Run("csv to stdout", func(t *testing.T) {
		dir := setupCLI(t)
		entry := addDream(t, dir, "Reading a book in the library", "2024-03-01")

		out, err := run(t, dir, "export")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, strings.Join(insights.ExportColumns, ","), lines[0])
		assert.True(t, strings.HasPrefix(lines[1], entry.ID+","+testUser+",2024-03-01,"))
	})

	t.Run("markdown to a file", func(t *testing.T) {
		dir := setupCLI(t)
		addDream(t, dir, "Reading a book in the library", "2024-03-01")
		path := filepath.Join(t.TempDir(), "journal.md")

		_, err := run(t, dir, "export", "--format", "markdown", "--output", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Reading a book in the library")
	})

	t.Run("no entries leaves no file", func(t *testing.T) {
		dir := setupCLI(t)
		path := filepath.Join(t.TempDir(), "journal.csv")

		_, err := run(t, dir, "export", "--output", path)
		assert.ErrorIs(t, err, insights.ErrNoEntries)
		assert.NoFileExists(t, path)
	})

	t.Run("unknown format", func(t *testing.T) {
		dir := setupCLI(t)
		_, err := run(t, dir, "export", "--format", "xml")
		assert.Error(t, err)
	})
}
