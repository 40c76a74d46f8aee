package catalog

// CanyonLakesTrails is the reference catalog for the Canyon Lakes Ranger
// District, Roosevelt National Forest, Colorado.
var CanyonLakesTrails = []Trail{
	{
		ID:                 "greyrock",
		Name:               "Greyrock Trail",
		Difficulty:         Difficult,
		Length:             "6.7 miles round trip",
		ElevationGain:      "2,100 ft",
		TrailheadElevation: "5,560 ft",
		Latitude:           40.6947,
		Longitude:          -105.2858,
		Description:        "Classic Poudre Canyon climb to a granite dome with summit views of the Mummy Range and the plains.",
		Features:           []string{"Summit views", "Rock formations", "Meadow loop"},
		Season:             "Apr - Nov",
		PermitRequired:     false,
	},
	{
		ID:                 "hewlett-gulch",
		Name:               "Hewlett Gulch",
		Difficulty:         Easy,
		Length:             "6.4 miles round trip",
		ElevationGain:      "750 ft",
		TrailheadElevation: "5,780 ft",
		Latitude:           40.6896,
		Longitude:          -105.3045,
		Description:        "Gentle gulch walk with repeated creek crossings through an old burn area recovering with wildflowers.",
		Features:           []string{"Creek crossings", "Wildflowers", "Dog friendly"},
		Season:             "Year-round",
		PermitRequired:     false,
	},
	{
		ID:                 "young-gulch",
		Name:               "Young Gulch",
		Difficulty:         Moderate,
		Length:             "9.6 miles round trip",
		ElevationGain:      "1,300 ft",
		TrailheadElevation: "6,160 ft",
		Latitude:           40.6636,
		Longitude:          -105.3539,
		Description:        "Rebuilt after fire and flood, a winding canyon trail with dozens of stream crossings.",
		Features:           []string{"Stream crossings", "Canyon walls", "Rebuilt tread"},
		Season:             "May - Oct",
		PermitRequired:     false,
	},
	{
		ID:                 "mount-mcconnel",
		Name:               "Mount McConnel Trail",
		Difficulty:         Moderate,
		Length:             "4.1 miles round trip",
		ElevationGain:      "1,260 ft",
		TrailheadElevation: "6,700 ft",
		Latitude:           40.6785,
		Longitude:          -105.4714,
		Description:        "Loop through the Cache la Poudre Wilderness to a forested summit above the river canyon.",
		Features:           []string{"Wilderness area", "River views", "Loop option"},
		Season:             "May - Oct",
		PermitRequired:     false,
	},
	{
		ID:                 "kreutzer-nature",
		Name:               "Kreutzer Nature Trail",
		Difficulty:         Easy,
		Length:             "2.0 miles round trip",
		ElevationGain:      "350 ft",
		TrailheadElevation: "6,700 ft",
		Latitude:           40.6790,
		Longitude:          -105.4700,
		Description:        "Interpretive loop named for the first forest ranger, ideal for families.",
		Features:           []string{"Interpretive signs", "Family friendly", "River access"},
		Season:             "May - Oct",
		PermitRequired:     false,
	},
	{
		ID:                 "dadd-gulch",
		Name:               "Dadd Gulch Trail",
		Difficulty:         Easy,
		Length:             "7.0 miles round trip",
		ElevationGain:      "1,100 ft",
		TrailheadElevation: "6,640 ft",
		Latitude:           40.6808,
		Longitude:          -105.4906,
		Description:        "Quiet drainage with aspen stands and a gradual grade, popular with equestrians.",
		Features:           []string{"Aspen groves", "Equestrian", "Quiet"},
		Season:             "Apr - Nov",
		PermitRequired:     false,
	},
	{
		ID:                 "big-south",
		Name:               "Big South Trail",
		Difficulty:         Moderate,
		Length:             "13.4 miles round trip",
		ElevationGain:      "1,440 ft",
		TrailheadElevation: "8,440 ft",
		Latitude:           40.6320,
		Longitude:          -105.7840,
		Description:        "Follows the wild upper Cache la Poudre into Comanche Peak Wilderness past pools and cascades.",
		Features:           []string{"Wild river", "Fishing", "Wilderness area"},
		Season:             "Jun - Oct",
		PermitRequired:     false,
	},
	{
		ID:                 "browns-lake",
		Name:               "Browns Lake Trail",
		Difficulty:         Difficult,
		Length:             "8.4 miles round trip",
		ElevationGain:      "1,900 ft",
		TrailheadElevation: "10,500 ft",
		Latitude:           40.5994,
		Longitude:          -105.6510,
		Description:        "Starts above treeline on Crown Point Road and drops to a pair of alpine lakes beneath cliffs.",
		Features:           []string{"Alpine lakes", "Above treeline", "Fishing"},
		Season:             "Jul - Sep",
		PermitRequired:     false,
	},
	{
		ID:                 "emmaline-lake",
		Name:               "Emmaline Lake Trail",
		Difficulty:         Difficult,
		Length:             "11.4 miles round trip",
		ElevationGain:      "2,470 ft",
		TrailheadElevation: "8,960 ft",
		Latitude:           40.5795,
		Longitude:          -105.5823,
		Description:        "Long pull through Pingree Park burn scars to a cirque lake under the Mummy Range headwall.",
		Features:           []string{"Cirque lake", "Waterfalls", "Mummy Range views"},
		Season:             "Jul - Sep",
		PermitRequired:     false,
	},
	{
		ID:                 "stormy-peaks",
		Name:               "Stormy Peaks Trail",
		Difficulty:         VeryDifficult,
		Length:             "10.8 miles round trip",
		ElevationGain:      "3,120 ft",
		TrailheadElevation: "9,010 ft",
		Latitude:           40.5660,
		Longitude:          -105.5850,
		Description:        "Climbs from Pingree Park over Stormy Peaks Pass into Rocky Mountain National Park; exposed above treeline.",
		Features:           []string{"High pass", "Above treeline", "Park boundary"},
		Season:             "Jul - Sep",
		PermitRequired:     true,
	},
	{
		ID:                 "blue-lake",
		Name:               "Blue Lake Trail",
		Difficulty:         Moderate,
		Length:             "9.8 miles round trip",
		ElevationGain:      "1,820 ft",
		TrailheadElevation: "9,500 ft",
		Latitude:           40.5747,
		Longitude:          -105.8500,
		Description:        "Rolls through spruce forest past Chambers Lake to a deep blue lake below Cameron Pass.",
		Features:           []string{"Alpine lakes", "Spruce forest", "Backpacking"},
		Season:             "Jun - Oct",
		PermitRequired:     false,
	},
	{
		ID:                 "montgomery-pass",
		Name:               "Montgomery Pass Trail",
		Difficulty:         VeryDifficult,
		Length:             "3.4 miles round trip",
		ElevationGain:      "1,000 ft",
		TrailheadElevation: "10,000 ft",
		Latitude:           40.5218,
		Longitude:          -105.8936,
		Description:        "Short, steep grunt to a windswept saddle on the Medicine Bow crest with Nokhu Crags views.",
		Features:           []string{"Summit views", "Steep grade", "Winter skiing"},
		Season:             "Jul - Sep",
		PermitRequired:     false,
	},
}

// ByID returns the catalog entry with the given id, or nil.
func ByID(trails []Trail, id string) *Trail {
	for i := range trails {
		if trails[i].ID == id {
			return &trails[i]
		}
	}
	return nil
}
