// ABOUTME: Unit tests for the root command
// ABOUTME: Shared helpers that run commands against a temporary journal
package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "tester"

// setupCLI isolates config and data in temp directories and returns the
// data directory.
func setupCLI(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("DREAMDECODER_AUTO_SYNC", "false")
	t.Chdir(t.TempDir())
	return t.TempDir()
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with args against dir and returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	rootCmd.SetArgs(append([]string{"--data-dir", dir, "--user", testUser}, args...))
	runErr := rootCmd.Execute()

	_ = w.Close()
	os.Stdout = oldStdout
	return <-done, runErr
}

func TestExecute(t *testing.T) {
	t.Run("runs without error", func(t *testing.T) {
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stdout)
		rootCmd.SetArgs([]string{"--help"})

		require.NoError(t, Execute())
		assert.Contains(t, stdout.String(), "dreamdecoder")
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("has correct metadata", func(t *testing.T) {
		assert.Equal(t, "dreamdecoder", rootCmd.Use)
		assert.Equal(t, "Dream journal with analysis", rootCmd.Short)
		assert.Contains(t, rootCmd.Long, "CSV journal")
	})

	t.Run("has every subcommand registered", func(t *testing.T) {
		names := make(map[string]bool)
		for _, cmd := range rootCmd.Commands() {
			names[cmd.Name()] = true
		}
		for _, want := range []string{
			"add", "list", "search", "show", "update", "delete", "symbol", "dna",
			"reflect", "timeline", "dreamify", "recommend", "export", "serve", "mcp", "sync",
		} {
			assert.True(t, names[want], "missing subcommand %s", want)
		}
	})

	t.Run("has global flags", func(t *testing.T) {
		for _, name := range []string{"config", "data-dir", "user"} {
			assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
		}
	})

	t.Run("sync has its subcommands", func(t *testing.T) {
		names := make(map[string]bool)
		for _, cmd := range syncCmd.Commands() {
			names[cmd.Name()] = true
		}
		for _, want := range []string{"status", "push", "pull", "link", "unlink", "repair", "reset", "wipe"} {
			assert.True(t, names[want], "missing sync subcommand %s", want)
		}
	})
}

func TestNewAppCreatesDataFiles(t *testing.T) {
	dir := setupCLI(t)

	_, err := run(t, dir, "list")
	require.NoError(t, err)

	assert.FileExists(t, dir+"/dream_journal.csv")
	assert.FileExists(t, dir+"/symbol_guide.csv")
}
