package language

import "strings"

// DefaultLanguage is the caption language used when a request does not name one.
const DefaultLanguage = "en"

// Parse turns a raw comma-separated language string into an ordered preference
// list: entries are trimmed, lowercased, and dropped when empty. Order and
// duplicates are preserved. An absent or empty input yields [DefaultLanguage].
// Input consisting only of separators and whitespace yields an empty list;
// the caller decides the fallback in that case.
func Parse(raw string) []string {
	if raw == "" {
		return []string{DefaultLanguage}
	}
	parts := strings.Split(raw, ",")
	langs := make([]string, 0, len(parts))
	for _, part := range parts {
		lang := strings.ToLower(strings.TrimSpace(part))
		if lang == "" {
			continue
		}
		langs = append(langs, lang)
	}
	return langs
}
