// Package viewport turns selection and filter state into a single camera
// command, so fly-to and fit-to-bounds can never race on the map camera.
package viewport

import "github.com/dgennetten/trailsMapper/internal/catalog"

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

const (
	FlyToZoom        = 14
	FlyToSeconds     = 2.0
	FlyToEase        = 0.25
	FitMaxZoom       = 13
	FitPaddingPx     = 40
	BoundsPadding    = 0.10
	minDegreePadding = 0.01
)

// FallbackBounds covers the whole Canyon Lakes Ranger District and is used
// whenever the filtered set is empty.
var FallbackBounds = Bounds{South: 40.45, West: -105.95, North: 40.75, East: -105.20}

type IntentKind string

const (
	Idle      IntentKind = "idle"
	FlyTo     IntentKind = "flyTo"
	FitBounds IntentKind = "fitBounds"
)

// Intent is the discriminated camera state consumed by the map frontend.
type Intent struct {
	Kind      IntentKind `json:"kind"`
	Center    *LatLng    `json:"center,omitempty"`
	Zoom      int        `json:"zoom,omitempty"`
	Seconds   float64    `json:"seconds,omitempty"`
	Ease      float64    `json:"ease,omitempty"`
	Bounds    *Bounds    `json:"bounds,omitempty"`
	MaxZoom   int        `json:"maxZoom,omitempty"`
	PaddingPx int        `json:"paddingPx,omitempty"`
}

// Plan computes the camera command for the current state. A selected trail
// wins and narrows the marker set to itself; otherwise the camera frames
// the filtered set, falling back to the district rectangle when empty.
func Plan(selected *catalog.Trail, filtered []catalog.Trail) Intent {
	if selected != nil {
		return Intent{
			Kind:    FlyTo,
			Center:  &LatLng{Lat: selected.Latitude, Lng: selected.Longitude},
			Zoom:    FlyToZoom,
			Seconds: FlyToSeconds,
			Ease:    FlyToEase,
		}
	}

	bounds, ok := BoundsOf(filtered)
	if !ok {
		fallback := FallbackBounds
		return Intent{Kind: FitBounds, Bounds: &fallback, MaxZoom: FitMaxZoom, PaddingPx: FitPaddingPx}
	}
	padded := PadBounds(bounds, BoundsPadding)
	return Intent{Kind: FitBounds, Bounds: &padded, MaxZoom: FitMaxZoom, PaddingPx: FitPaddingPx}
}

// BoundsOf returns the minimal rectangle covering all trail coordinates.
// ok is false for an empty set; bounds over zero points are undefined.
func BoundsOf(trails []catalog.Trail) (Bounds, bool) {
	if len(trails) == 0 {
		return Bounds{}, false
	}
	b := Bounds{
		South: trails[0].Latitude, North: trails[0].Latitude,
		West: trails[0].Longitude, East: trails[0].Longitude,
	}
	for _, t := range trails[1:] {
		if t.Latitude < b.South {
			b.South = t.Latitude
		}
		if t.Latitude > b.North {
			b.North = t.Latitude
		}
		if t.Longitude < b.West {
			b.West = t.Longitude
		}
		if t.Longitude > b.East {
			b.East = t.Longitude
		}
	}
	return b, true
}

// PadBounds expands each dimension by frac of its span so markers at the
// edge are not clipped. Degenerate spans (a single point) get a fixed
// minimum padding so the result still strictly contains the input.
func PadBounds(b Bounds, frac float64) Bounds {
	if frac == 0 {
		return b
	}
	latPad := (b.North - b.South) * frac
	lngPad := (b.East - b.West) * frac
	if latPad == 0 {
		latPad = minDegreePadding
	}
	if lngPad == 0 {
		lngPad = minDegreePadding
	}
	return Bounds{
		South: b.South - latPad,
		West:  b.West - lngPad,
		North: b.North + latPad,
		East:  b.East + lngPad,
	}
}
