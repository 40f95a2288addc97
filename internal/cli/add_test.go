// ABOUTME: Unit tests for the add command
// ABOUTME: Tests analysis output, dates, and validation failures
package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/dreamdecoder/internal/domain"
)

// addDream records text on date and returns the stored entry.
func addDream(t *testing.T, dir, text, date string) domain.Entry {
	t.Helper()
	out, err := run(t, dir, "add", text, "--date", date, "--json")
	require.NoError(t, err)

	var entry domain.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	return entry
}

func TestAddCommand(t *testing.T) {
	t.Run("prints id and detected symbols", func(t *testing.T) {
		dir := setupCLI(t)

		out, err := run(t, dir, "add", "I was chased by a snake through the forest", "--date", "2024-03-01")
		require.NoError(t, err)

		assert.Contains(t, out, "Dream added (ID: ")
		assert.Contains(t, out, "snake")
		assert.Contains(t, out, "forest")
	})

	t.Run("json output carries the stored entry", func(t *testing.T) {
		dir := setupCLI(t)

		entry := addDream(t, dir, "A scary monster was behind the door", "2024-03-02")

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, testUser, entry.UserID)
		assert.Equal(t, "2024-03-02", entry.Date)
		assert.Equal(t, domain.DreamNightmare, entry.DetectedType)
		assert.Contains(t, entry.Symbols, "monster")
		assert.Contains(t, entry.Symbols, "door")
	})

	t.Run("defaults the date to the local calendar day", func(t *testing.T) {
		dir := setupCLI(t)
		local := time.Local
		time.Local = time.FixedZone("UTC+14", 14*60*60)
		t.Cleanup(func() { time.Local = local })

		before := time.Now().Format(domain.DateLayout)
		out, err := run(t, dir, "add", "Flying over a lake", "--json")
		require.NoError(t, err)
		after := time.Now().Format(domain.DateLayout)

		var entry domain.Entry
		require.NoError(t, json.Unmarshal([]byte(out), &entry))
		assert.Contains(t, []string{before, after}, entry.Date)
	})

	t.Run("rejects an invalid date", func(t *testing.T) {
		dir := setupCLI(t)

		_, err := run(t, dir, "add", "Lost in a school", "--date", "03/01/2024")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("requires the dream text", func(t *testing.T) {
		dir := setupCLI(t)

		_, err := run(t, dir, "add")
		assert.Error(t, err)
	})
}
