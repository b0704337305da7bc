package helpers

import (
	"net/url"
	"strconv"
	"strings"
)

// SplitCSV splits a comma-joined query value, trimming blanks and dropping empty tokens.
func SplitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseIDs converts tokens to int64 ids. Tokens that are not base-10 integers are
// returned separately so callers can decide how strict to be.
func ParseIDs(tokens []string) (ids []int64, invalid []string) {
	for _, tok := range tokens {
		id, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			invalid = append(invalid, tok)
			continue
		}
		ids = append(ids, id)
	}
	return ids, invalid
}

// FirstValues flattens url.Values keeping only the first value for every key.
func FirstValues(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
