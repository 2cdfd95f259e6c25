package field

import "strings"

// Abbreviations kept upper-case when generating labels.
var knownAbbreviations = map[string]string{
	"id": "ID", "uuid": "UUID", "url": "URL", "sku": "SKU",
	"rrp": "RRP", "api": "API", "html": "HTML",
}

// Label converts a snake_case field key to a human-readable label.
// Association key suffixes (_id) are stripped first so "product_location_id"
// labels as "Product Location".
func Label(key string) string {
	clean := strings.TrimSuffix(key, "_id")
	if clean == "" {
		clean = key
	}
	parts := strings.Split(clean, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if abbr, ok := knownAbbreviations[strings.ToLower(p)]; ok {
			parts[i] = abbr
		} else {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// ToSnake converts CamelCase names (e.g. Ent schema type names) to snake_case.
func ToSnake(s string) string {
	var result []rune
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result = append(result, '_')
		}
		result = append(result, r)
	}
	return strings.ToLower(string(result))
}
