package catalog

import "strings"

// Filter returns the subsequence of trails matching the search query and
// difficulty tag, preserving catalog order. A pure function of its inputs:
// tag "all" (or empty) matches every difficulty, otherwise the tag must
// equal the trail's difficulty case-insensitively; a non-empty query must
// appear in the name, the difficulty label, or any feature.
func Filter(trails []Trail, query, tag string) []Trail {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []Trail
	for _, t := range trails {
		if !tagMatches(t, tag) {
			continue
		}
		if query != "" && !queryMatches(t, query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func tagMatches(t Trail, tag string) bool {
	if tag == "" || strings.EqualFold(tag, "all") {
		return true
	}
	return strings.EqualFold(tag, string(t.Difficulty))
}

func queryMatches(t Trail, query string) bool {
	if strings.Contains(strings.ToLower(t.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(string(t.Difficulty)), query) {
		return true
	}
	for _, f := range t.Features {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
