package catalog

type Difficulty string

const (
	Easy          Difficulty = "Easy"
	Moderate      Difficulty = "Moderate"
	Difficult     Difficulty = "Difficult"
	VeryDifficult Difficulty = "Very Difficult"
)

// Trail is a fixed reference record; the catalog is defined at build time
// and never mutated.
type Trail struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Difficulty         Difficulty `json:"difficulty"`
	Length             string     `json:"length"`
	ElevationGain      string     `json:"elevationGain"`
	TrailheadElevation string     `json:"trailheadElevation"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	Description        string     `json:"description"`
	Features           []string   `json:"features"`
	Season             string     `json:"season"`
	PermitRequired     bool       `json:"permitRequired"`
}
