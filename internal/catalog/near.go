package catalog

import (
	"sort"

	"github.com/dgennetten/trailsMapper/internal/shared/geo"
)

// Near returns trails whose trailheads lie within radiusKm of the given
// point, nearest first.
func Near(trails []Trail, lat, lng, radiusKm float64) []Trail {
	type scored struct {
		trail Trail
		km    float64
	}

	var hits []scored
	for _, t := range trails {
		d := geo.HaversineKm(lat, lng, t.Latitude, t.Longitude)
		if d <= radiusKm {
			hits = append(hits, scored{trail: t, km: d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].km < hits[j].km })

	out := make([]Trail, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.trail)
	}
	return out
}
