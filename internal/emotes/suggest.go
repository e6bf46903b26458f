package emotes

import (
	"strings"
)

// maxSuggestions bounds the candidate list; scanning stops at the cap.
const maxSuggestions = 25

// Suggest returns emote names whose lower-cased form contains the lower-cased
// query, in mapping iteration order (fallback first, then remote insertion
// order). An empty query matches everything. At most maxSuggestions entries
// are returned.
func Suggest(query string, m *Mapping) []string {
	if m == nil {
		return nil
	}
	q := strings.ToLower(query)
	var out []string
	for _, name := range m.Names() {
		if q != "" && !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		out = append(out, name)
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}
