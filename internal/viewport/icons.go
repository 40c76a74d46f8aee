package viewport

import "github.com/dgennetten/trailsMapper/internal/catalog"

// Icon describes a Leaflet marker icon variant.
type Icon struct {
	IconURL     string `json:"iconUrl"`
	ShadowURL   string `json:"shadowUrl"`
	Size        [2]int `json:"iconSize"`
	Anchor      [2]int `json:"iconAnchor"`
	PopupAnchor [2]int `json:"popupAnchor"`
	ShadowSize  [2]int `json:"shadowSize"`
}

const (
	markerBase = "https://raw.githubusercontent.com/pointhi/leaflet-color-markers/master/img/"
	shadowURL  = "https://cdnjs.cloudflare.com/ajax/libs/leaflet/0.7.7/images/marker-shadow.png"
)

func standardIcon(color string) Icon {
	return Icon{
		IconURL:     markerBase + "marker-icon-2x-" + color + ".png",
		ShadowURL:   shadowURL,
		Size:        [2]int{25, 41},
		Anchor:      [2]int{12, 41},
		PopupAnchor: [2]int{1, -34},
		ShadowSize:  [2]int{41, 41},
	}
}

// SelectedIcon is larger than the difficulty variants so the active trail
// stands out.
var SelectedIcon = Icon{
	IconURL:     markerBase + "marker-icon-2x-violet.png",
	ShadowURL:   shadowURL,
	Size:        [2]int{30, 49},
	Anchor:      [2]int{15, 49},
	PopupAnchor: [2]int{1, -42},
	ShadowSize:  [2]int{49, 49},
}

var difficultyIcons = map[catalog.Difficulty]Icon{
	catalog.Easy:          standardIcon("green"),
	catalog.Moderate:      standardIcon("blue"),
	catalog.Difficult:     standardIcon("orange"),
	catalog.VeryDifficult: standardIcon("red"),
}

// IconFor returns the marker icon for a trail. Unrecognized difficulties
// fall back to the easy variant.
func IconFor(difficulty catalog.Difficulty, selected bool) Icon {
	if selected {
		return SelectedIcon
	}
	if icon, ok := difficultyIcons[difficulty]; ok {
		return icon
	}
	return difficultyIcons[catalog.Easy]
}

// IconTable exposes every variant keyed by name for the frontend.
func IconTable() map[string]Icon {
	return map[string]Icon{
		"Easy":           difficultyIcons[catalog.Easy],
		"Moderate":       difficultyIcons[catalog.Moderate],
		"Difficult":      difficultyIcons[catalog.Difficult],
		"Very Difficult": difficultyIcons[catalog.VeryDifficult],
		"Selected":       SelectedIcon,
	}
}
