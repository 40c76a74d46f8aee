package triplog

// Trip is a volunteer patrol entry. Trail is free text, not a foreign key
// into the catalog; it is fuzzy-matched at display time. TreesCleared stays
// a string (the field is free text in the UI) and is parsed when totals are
// computed.
type Trip struct {
	ID           string `json:"id"`
	Date         string `json:"date"` // YYYY-MM-DD
	Trail        string `json:"trail"`
	Partners     string `json:"partners"`
	TreesCleared string `json:"treesCleared"`
}

type Totals struct {
	Trips        int `json:"trips"`
	TreesCleared int `json:"treesCleared"`
}

const (
	SortByDate  = "date"
	SortByTrail = "trail"
	SortByTrees = "trees"
)

// seedTrips is the first-run collection, persisted immediately so later
// loads are stable. IDs are assigned at load time.
var seedTrips = []Trip{
	{Date: "2024-06-16", Trail: "Hewlett Gulch", Partners: "K. Ross", TreesCleared: "41"},
	{Date: "2024-06-02", Trail: "Young Gulch", Partners: "solo", TreesCleared: "2"},
	{Date: "2024-05-19", Trail: "Greyrock Trail", Partners: "FC Trail Crew", TreesCleared: ""},
}
