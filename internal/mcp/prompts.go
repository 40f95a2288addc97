// ABOUTME: MCP prompt definitions for dreamdecoder
// ABOUTME: Provides static context to AI assistants about the dream journal
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const gettingStarted = `Dream Decoder is a personal dream journal. Each dream is tagged with a type
(Nightmare, Lucid, Normal), an emotional tone, and recurring symbols from a fixed vocabulary.

When to use it:
- The user describes a dream they had: record it with add_dream (ask for the date if unclear)
- The user asks what their dreams have in common: use get_reflections
- The user asks about a specific dream's mood or themes: use get_dream_dna
- The user wants to find earlier dreams about something: use search_dreams

Best practices:
- Record the dream in the user's own words
- Dates are YYYY-MM-DD
- Read the symbol guide resource before interpreting a symbol`

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "dreamdecoder-getting-started",
		Description: "Introduction to the dream journal and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: "Getting started with dreamdecoder",
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: gettingStarted},
				},
			},
		}, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
