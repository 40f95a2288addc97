// ABOUTME: Backup and restore of journal data files through Charm KV
// ABOUTME: Each file is stored whole under a file: key and synced to the cloud
package charm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	filePrefix = "file:"
	pushedKey  = "meta:pushed_at"
)

// Backup copies data files between a directory and a KV backend.
type Backup struct {
	backend Backend
	now     func() time.Time
	log     zerolog.Logger
}

// NewBackup creates a backup over backend.
func NewBackup(backend Backend, log zerolog.Logger) *Backup {
	return &Backup{backend: backend, now: time.Now, log: log}
}

func fileKey(name string) []byte {
	return []byte(filePrefix + name)
}

// Push stores each file under its base name and syncs. Missing files are
// skipped. It returns the names stored.
func (b *Backup) Push(paths ...string) ([]string, error) {
	var pushed []string
	err := b.backend.Do(func(k KV) error {
		for _, p := range paths {
			data, err := os.ReadFile(p) //nolint:gosec // paths come from configuration
			if errors.Is(err, os.ErrNotExist) {
				b.log.Debug().Str("path", p).Msg("skipping missing data file")
				continue
			}
			if err != nil {
				return err
			}
			name := filepath.Base(p)
			if err := k.Set(fileKey(name), data); err != nil {
				return fmt.Errorf("store %s: %w", name, err)
			}
			pushed = append(pushed, name)
		}
		if err := k.Set([]byte(pushedKey), []byte(b.now().UTC().Format(time.RFC3339))); err != nil {
			return err
		}
		return k.Sync()
	})
	if err != nil {
		return nil, fmt.Errorf("push: %w", err)
	}
	b.log.Info().Strs("files", pushed).Msg("pushed data files")
	return pushed, nil
}

// Pull syncs and writes every stored file into dir, replacing local copies.
// It returns the names written.
func (b *Backup) Pull(dir string) ([]string, error) {
	files := make(map[string][]byte)
	err := b.backend.Do(func(k KV) error {
		if err := k.Sync(); err != nil {
			return err
		}
		keys, err := k.Keys()
		if err != nil {
			return err
		}
		for _, key := range keys {
			name, ok := strings.CutPrefix(string(key), filePrefix)
			if !ok {
				continue
			}
			data, err := k.Get(key)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			files[name] = data
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pull: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return nil, err
	}
	var written []string
	for name, data := range files {
		// Keys written by Push are base names; anything else is ignored.
		if name != filepath.Base(name) || name == "." || name == ".." {
			b.log.Warn().Str("key", name).Msg("ignoring unsafe backup key")
			continue
		}
		if err := writeAtomic(filepath.Join(dir, name), data); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, name)
	}
	b.log.Info().Strs("files", written).Msg("pulled data files")
	return written, nil
}

// LastPush returns when data was last pushed, or the zero time if never.
func (b *Backup) LastPush() (time.Time, error) {
	var raw []byte
	err := b.backend.DoReadOnly(func(k KV) error {
		keys, err := k.Keys()
		if err != nil {
			return err
		}
		for _, key := range keys {
			if string(key) == pushedKey {
				raw, err = k.Get(key)
				return err
			}
		}
		return nil
	})
	if err != nil || raw == nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, string(raw))
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
