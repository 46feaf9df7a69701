package normalization

import (
	"strings"
)

// ParseInputString trims and lowercases user-provided text. Matching across
// the rule tables is case-insensitive, so inputs are folded once here at the
// boundary rather than inside business logic.
func ParseInputString(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	return normalized
}

func ParseInputStringPtr(input *string) *string {
	if input == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*input))
	return &normalized
}
