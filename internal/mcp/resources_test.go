// ABOUTME: Tests for MCP resources
// ABOUTME: Validates the symbol guide and project context payloads
package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/dreamdecoder/internal/lexicon"
	"github.com/harper/dreamdecoder/internal/symbols"
)

func TestSymbolGuideResource(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleSymbolGuide(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, symbolGuideURI, res.Contents[0].URI)

	var meanings []symbols.Meaning
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &meanings))
	assert.Len(t, meanings, len(lexicon.Default().Symbols()))
	assert.Equal(t, "baby", meanings[0].SymbolName)
}

func TestProjectContextResource(t *testing.T) {
	s := newTestServer(t)
	dir := t.TempDir()

	t.Run("without marker", func(t *testing.T) {
		res, err := s.projectContext(dir)
		require.NoError(t, err)
		var got projectContext
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &got))
		assert.False(t, got.HasProjectConfig)
	})

	t.Run("with marker", func(t *testing.T) {
		marker := filepath.Join(dir, ".dreamdecoder")
		require.NoError(t, os.WriteFile(marker, []byte("log_level = \"debug\"\n"), 0600))

		res, err := s.projectContext(dir)
		require.NoError(t, err)
		var got projectContext
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &got))
		assert.True(t, got.HasProjectConfig)
		require.NotNil(t, got.Config)
		assert.Equal(t, "debug", got.Config.LogLevel)
	})
}
