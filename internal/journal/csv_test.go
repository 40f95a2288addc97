// ABOUTME: Tests for the flat-file journal repository
// ABOUTME: Validates round trips, self-healing columns, and malformed cells
package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/dreamdecoder/internal/domain"
)

func newRepo(t *testing.T) *CSVRepository {
	t.Helper()
	return NewCSVRepository(filepath.Join(t.TempDir(), "data", "dream_journal.csv"), zerolog.Nop())
}

func TestCSVRepositoryMissingFile(t *testing.T) {
	repo := newRepo(t)

	entries, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCSVRepositoryRoundTrip(t *testing.T) {
	repo := newRepo(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	in := []domain.Entry{
		{
			ID:           "a",
			UserID:       "u1",
			Text:         "a river, \"quoted\"\nand a newline",
			Date:         "2024-01-01",
			CreatedAt:    created,
			UpdatedAt:    created,
			DetectedType: domain.DreamNormal,
			Sentiment:    &domain.Sentiment{Pos: 0.2, Neg: 0.1, Neu: 0.7, Compound: 0.3},
			Symbols:      []string{"river"},
		},
		{ID: "b", UserID: "u2", Text: "blank", Date: "2024-01-02", Symbols: []string{}},
	}
	require.NoError(t, repo.Save(in))

	out, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in[0], out[0])
	assert.Nil(t, out[1].Sentiment)
	assert.Equal(t, []string{}, out[1].Symbols)
	assert.True(t, out[1].CreatedAt.IsZero())
}

func TestCSVRepositoryInit(t *testing.T) {
	t.Run("creates file with header", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Init())

		data, err := os.ReadFile(repo.Path())
		require.NoError(t, err)
		assert.Equal(t, strings.Join(Columns, ",")+"\n", string(data))
	})

	t.Run("adds missing columns with defaults", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(repo.Path()), 0755))
		legacy := "dream_id,user_id,dream_text,dream_date\nx,u1,a dog barked,2024-03-01\n"
		require.NoError(t, os.WriteFile(repo.Path(), []byte(legacy), 0644))

		require.NoError(t, repo.Init())

		header, records, err := ReadCSVFile(repo.Path())
		require.NoError(t, err)
		assert.Equal(t, Columns, header)
		require.Len(t, records, 1)
		idx := HeaderIndex(header)
		assert.Equal(t, "{}", records[0][idx["emotional_tone"]])
		assert.Equal(t, "[]", records[0][idx["extracted_symbols"]])
		assert.Equal(t, "a dog barked", records[0][idx["dream_text"]])
	})
}

func TestCSVRepositoryMalformedCells(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(repo.Path()), 0755))
	content := strings.Join(Columns, ",") + "\n" +
		"x,u1,text,not-a-date,,,Normal,not json,{oops}\n" +
		"y,u1\n"
	require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0644))

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "not-a-date", entries[0].Date)
	assert.Nil(t, entries[0].Sentiment)
	assert.Equal(t, []string{}, entries[0].Symbols)

	assert.Equal(t, "y", entries[1].ID)
	assert.Equal(t, "", entries[1].Text)
	assert.Nil(t, entries[1].Sentiment)
}

func TestDecodeSentiment(t *testing.T) {
	assert.Nil(t, DecodeSentiment(""))
	assert.Nil(t, DecodeSentiment("{}"))
	assert.Nil(t, DecodeSentiment(`{"pos": "x"}`))

	s := DecodeSentiment(`{"pos": 0.1, "neg": 0.2, "neu": 0.7, "compound": -0.3}`)
	require.NotNil(t, s)
	assert.Equal(t, domain.Sentiment{Pos: 0.1, Neg: 0.2, Neu: 0.7, Compound: -0.3}, *s)
}

func TestPartialSentiment(t *testing.T) {
	t.Run("buckets by compound", func(t *testing.T) {
		s := DecodeSentiment(`{"compound": 0.5}`)
		require.NotNil(t, s)
		assert.True(t, s.Partial)
		assert.Equal(t, domain.EmotionPositive, domain.PrimaryEmotion(s))

		s = DecodeSentiment(`{"neg": 0.4, "compound": -0.2}`)
		require.NotNil(t, s)
		assert.True(t, s.Partial)
		assert.Equal(t, domain.EmotionNegative, domain.PrimaryEmotion(s))

		s = DecodeSentiment(`{"pos": 0.3}`)
		require.NotNil(t, s)
		assert.Equal(t, domain.EmotionNeutral, domain.PrimaryEmotion(s))
	})

	t.Run("stays partial through a rewrite", func(t *testing.T) {
		s := DecodeSentiment(EncodeSentiment(&domain.Sentiment{Neg: 0.4, Compound: -0.2, Partial: true}))
		require.NotNil(t, s)
		assert.Equal(t, domain.Sentiment{Neg: 0.4, Compound: -0.2, Partial: true}, *s)
	})

	t.Run("complete scores are not partial", func(t *testing.T) {
		s := DecodeSentiment(EncodeSentiment(&domain.Sentiment{Pos: 0.5, Neu: 0.5, Compound: 0.4}))
		require.NotNil(t, s)
		assert.False(t, s.Partial)
	})
}

func TestDecodeTimestampAcceptsIsoWithoutZone(t *testing.T) {
	got := decodeTimestamp("2024-05-06T07:08:09.123456")
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, 123456000, got.Nanosecond())
}

func TestCSVRepositoryStrayQuotes(t *testing.T) {
	store, repo, _ := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(repo.Path()), 0755))
	content := strings.Join(Columns, ",") + "\n" +
		"a1,u1,a calm lake,2024-03-01,,,Normal,{},[]\n" +
		`a2,u1,she said "hi" to me,2024-03-02,,,Normal,{},[]` + "\n"
	require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0644))

	entries, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a calm lake", entries[0].Text)
	assert.Equal(t, `she said "hi" to me`, entries[1].Text)

	assert.Len(t, store.List("u1"), 2)

	id, err := store.Add("u1", "swimming in the ocean", "2024-03-03")
	require.NoError(t, err)

	entries, err = repo.Load()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, `she said "hi" to me`, entries[1].Text)
	assert.Equal(t, id, entries[2].ID)
}
