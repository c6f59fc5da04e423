package rails

import "strings"

// IsRelevant reports whether the text mentions any topical keyword. The
// result is logged for observability and never causes a rejection.
func IsRelevant(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
