// ABOUTME: Journal file schema definitions
// ABOUTME: Column names, order, and defaults for the dream journal CSV
package journal

// Journal file columns, in on-disk order.
const (
	colID        = "dream_id"
	colUserID    = "user_id"
	colText      = "dream_text"
	colDate      = "dream_date"
	colCreatedAt = "created_at"
	colUpdatedAt = "updated_at"
	colType      = "detected_type"
	colSentiment = "emotional_tone"
	colSymbols   = "extracted_symbols"
)

// Columns lists every column the journal file must carry.
var Columns = []string{
	colID, colUserID, colText, colDate, colCreatedAt, colUpdatedAt,
	colType, colSentiment, colSymbols,
}

// columnDefault is the value synthesized for a column missing from the file.
func columnDefault(col string) string {
	switch col {
	case colSentiment:
		return "{}"
	case colSymbols:
		return "[]"
	default:
		return ""
	}
}
