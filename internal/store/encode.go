package store

import "strings"

// JoinList encodes a multi-value field as a single comma-joined cell.
func JoinList(vs []string) string {
	return strings.Join(vs, ",")
}

// SplitList decodes a comma-joined cell. Each piece is trimmed and empty
// pieces are dropped, so a trailing or doubled comma never produces an
// empty entry. An empty cell decodes to an empty list.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
