// ABOUTME: Tests for data file backup and restore
// ABOUTME: Uses an in-memory KV backend in place of Charm cloud
package charm

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	data  map[string][]byte
	syncs int
	fail  error
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (m *memKV) Get(key []byte) ([]byte, error) {
	v, ok := m.data[string(key)]
	if !ok {
		return nil, errors.New("key not found")
	}
	return v, nil
}

func (m *memKV) Set(key, value []byte) error {
	if m.fail != nil {
		return m.fail
	}
	m.data[string(key)] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Keys() ([][]byte, error) {
	keys := make([][]byte, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, []byte(k))
	}
	return keys, nil
}

func (m *memKV) Sync() error {
	m.syncs++
	return nil
}

func (m *memKV) Do(fn func(KV) error) error         { return fn(m) }
func (m *memKV) DoReadOnly(fn func(KV) error) error { return fn(m) }

func TestPushPull(t *testing.T) {
	src := t.TempDir()
	journalPath := filepath.Join(src, "dream_journal.csv")
	require.NoError(t, os.WriteFile(journalPath, []byte("dream_id\nd1\n"), 0600))

	store := newMemKV()
	b := NewBackup(store, zerolog.Nop())
	b.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

	pushed, err := b.Push(journalPath, filepath.Join(src, "symbol_guide.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"dream_journal.csv"}, pushed)
	assert.Equal(t, 1, store.syncs)

	last, err := b.LastPush()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), last)

	dst := filepath.Join(t.TempDir(), "restored")
	written, err := b.Pull(dst)
	require.NoError(t, err)
	sort.Strings(written)
	assert.Equal(t, []string{"dream_journal.csv"}, written)
	assert.Equal(t, 2, store.syncs)

	data, err := os.ReadFile(filepath.Join(dst, "dream_journal.csv"))
	require.NoError(t, err)
	assert.Equal(t, "dream_id\nd1\n", string(data))
}

func TestPullIgnoresUnsafeKeys(t *testing.T) {
	store := newMemKV()
	store.data["file:../escape.csv"] = []byte("x")
	store.data["other:key"] = []byte("y")

	dir := t.TempDir()
	written, err := NewBackup(store, zerolog.Nop()).Pull(dir)
	require.NoError(t, err)
	assert.Empty(t, written)

	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestPushFailure(t *testing.T) {
	src := filepath.Join(t.TempDir(), "dream_journal.csv")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0600))

	store := newMemKV()
	store.fail = errors.New("read-only")
	_, err := NewBackup(store, zerolog.Nop()).Push(src)
	assert.ErrorContains(t, err, "read-only")
	assert.Zero(t, store.syncs)
}

func TestLastPushNever(t *testing.T) {
	last, err := NewBackup(newMemKV(), zerolog.Nop()).LastPush()
	require.NoError(t, err)
	assert.True(t, last.IsZero())
}
