// ABOUTME: MCP tool implementations for dreamdecoder
// ABOUTME: Add and search dreams, read reflections, and compute dream DNA
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/dreamdecoder/internal/dna"
	"github.com/harper/dreamdecoder/internal/domain"
	"github.com/harper/dreamdecoder/internal/journal"
)

// AddDreamInput defines the input for add_dream tool.
type AddDreamInput struct {
	UserID string `json:"user_id" jsonschema:"The dreamer the entry belongs to"`
	Text   string `json:"dream_text" jsonschema:"Free-text description of the dream"`
	Date   string `json:"dream_date" jsonschema:"Date of the dream as YYYY-MM-DD"`
}

// DreamData is the flattened view of an entry returned by tools.
type DreamData struct {
	ID      string   `json:"dream_id"`
	Date    string   `json:"dream_date"`
	Text    string   `json:"dream_text"`
	Type    string   `json:"detected_type"`
	Emotion string   `json:"primary_emotion"`
	Symbols []string `json:"symbols"`
}

// SearchDreamsInput defines the input for search_dreams tool.
type SearchDreamsInput struct {
	UserID  string `json:"user_id" jsonschema:"The dreamer whose journal to search"`
	Text    string `json:"text,omitempty" jsonschema:"Case-insensitive text to look for"`
	Since   string `json:"since,omitempty" jsonschema:"Earliest dream date (e.g. 2024-01-01 or 'March 3 2024')"`
	Until   string `json:"until,omitempty" jsonschema:"Latest dream date"`
	Emotion string `json:"emotion,omitempty" jsonschema:"Positive, Negative, Neutral or Unknown"`
	Symbol  string `json:"symbol,omitempty" jsonschema:"A dream symbol such as water or teeth"`
}

// SearchDreamsOutput defines the output for search_dreams tool.
type SearchDreamsOutput struct {
	Dreams []DreamData `json:"dreams"`
	Count  int         `json:"count"`
}

// ReflectionsInput defines the input for get_reflections tool.
type ReflectionsInput struct {
	UserID string `json:"user_id" jsonschema:"The dreamer to reflect on"`
	Days   int    `json:"days,omitempty" jsonschema:"Look-back window in days (default 30)"`
}

// ReflectionsOutput defines the output for get_reflections tool.
type ReflectionsOutput struct {
	Reflections []string `json:"reflections"`
}

// DreamDNAInput defines the input for get_dream_dna tool.
type DreamDNAInput struct {
	DreamID string `json:"dream_id" jsonschema:"The dream to profile"`
}

// DreamDNAOutput defines the output for get_dream_dna tool.
type DreamDNAOutput struct {
	DreamID  string          `json:"dream_id"`
	Emotions []dna.Component `json:"emotions"`
	Themes   []dna.Component `json:"themes"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_dream",
		Description: "Record a dream in the user's journal. The dream is analyzed for type, emotional tone and symbols.",
	}, s.handleAddDream)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_dreams",
		Description: "Search the user's dream journal by text, date range, primary emotion or symbol. All filters are optional and combine with AND.",
	}, s.handleSearchDreams)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_reflections",
		Description: "Summarize recurring patterns (nightmares, negative emotions, repeated symbols) in the user's recent dreams.",
	}, s.handleReflections)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_dream_dna",
		Description: "Break one dream down into emotion and theme percentages.",
	}, s.handleDreamDNA)
}

func textResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
	}
}

func toDreamData(e domain.Entry) DreamData {
	return DreamData{
		ID:      e.ID,
		Date:    e.Date,
		Text:    e.Text,
		Type:    string(e.DetectedType),
		Emotion: string(domain.PrimaryEmotion(e.Sentiment)),
		Symbols: append([]string{}, e.Symbols...),
	}
}

// handleAddDream implements the add_dream tool.
func (s *Server) handleAddDream(ctx context.Context, req *mcp.CallToolRequest, input AddDreamInput) (*mcp.CallToolResult, DreamData, error) {
	id, err := s.journal.Add(input.UserID, input.Text, input.Date)
	if err != nil {
		return nil, DreamData{}, fmt.Errorf("failed to add dream: %w", err)
	}
	entry, err := s.journal.Get(id)
	if err != nil {
		return nil, DreamData{}, fmt.Errorf("failed to read back dream: %w", err)
	}

	out := toDreamData(entry)
	symbols := "none"
	if len(out.Symbols) > 0 {
		symbols = strings.Join(out.Symbols, ", ")
	}
	return textResult("Dream recorded (ID: %s). Type: %s, emotion: %s, symbols: %s",
		out.ID, out.Type, out.Emotion, symbols), out, nil
}

// handleSearchDreams implements the search_dreams tool.
func (s *Server) handleSearchDreams(ctx context.Context, req *mcp.CallToolRequest, input SearchDreamsInput) (*mcp.CallToolResult, SearchDreamsOutput, error) {
	if input.UserID == "" {
		return nil, SearchDreamsOutput{}, domain.NewValidationError("user_id", "is required")
	}
	filter, err := journal.BuildFilter(input.Text, input.Since, input.Until, input.Emotion, input.Symbol)
	if err != nil {
		return nil, SearchDreamsOutput{}, err
	}

	out := SearchDreamsOutput{Dreams: []DreamData{}}
	for _, r := range s.journal.Search(input.UserID, filter) {
		out.Dreams = append(out.Dreams, toDreamData(r.Entry))
	}
	out.Count = len(out.Dreams)

	return textResult("Found %d matching dreams", out.Count), out, nil
}

// handleReflections implements the get_reflections tool.
func (s *Server) handleReflections(ctx context.Context, req *mcp.CallToolRequest, input ReflectionsInput) (*mcp.CallToolResult, ReflectionsOutput, error) {
	if input.UserID == "" {
		return nil, ReflectionsOutput{}, domain.NewValidationError("user_id", "is required")
	}
	out := ReflectionsOutput{Reflections: s.insights.Reflections(input.UserID, input.Days)}
	return textResult("%s", strings.Join(out.Reflections, "\n")), out, nil
}

// handleDreamDNA implements the get_dream_dna tool.
func (s *Server) handleDreamDNA(ctx context.Context, req *mcp.CallToolRequest, input DreamDNAInput) (*mcp.CallToolResult, DreamDNAOutput, error) {
	profile, err := s.insights.DNA(input.DreamID)
	if err != nil {
		return nil, DreamDNAOutput{}, fmt.Errorf("failed to compute dna: %w", err)
	}
	out := DreamDNAOutput{DreamID: input.DreamID, Emotions: profile.Emotions, Themes: profile.Themes}

	var sb strings.Builder
	sb.WriteString("Emotions: ")
	sb.WriteString(dna.Describe(profile.Emotions))
	sb.WriteString("\nThemes: ")
	sb.WriteString(dna.Describe(profile.Themes))
	return textResult("%s", sb.String()), out, nil
}
