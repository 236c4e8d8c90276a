package common

import "strings"

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"

// SplitSpaces splits s on single spaces, keeping the empty tokens produced by
// consecutive spaces. An empty s yields no tokens.
func SplitSpaces(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, " ")
}
