package catalog

import "strings"

// Match finds the catalog entry for a free-text trail name from the trip
// log. Best effort, first hit in catalog order wins:
//  1. exact case-insensitive equality
//  2. either string contains the other
//  3. any token of the input longer than two characters contained in the
//     trail name
//
// Returns nil when nothing matches; callers treat that as a no-op.
func Match(trails []Trail, name string) *Trail {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)

	for i := range trails {
		if strings.EqualFold(trails[i].Name, name) {
			return &trails[i]
		}
	}

	for i := range trails {
		trail := strings.ToLower(trails[i].Name)
		if strings.Contains(trail, lower) || strings.Contains(lower, trail) {
			return &trails[i]
		}
	}

	for i := range trails {
		trail := strings.ToLower(trails[i].Name)
		for _, token := range strings.Fields(lower) {
			if len(token) > 2 && strings.Contains(trail, token) {
				return &trails[i]
			}
		}
	}
	return nil
}
