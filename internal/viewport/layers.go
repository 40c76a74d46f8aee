package viewport

// Layer is a pluggable tile source consumed by the map frontend.
type Layer struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

const DefaultLayer = "terrain"

var layers = []Layer{
	{
		Key:         "street",
		Name:        "Street Map",
		URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
	},
	{
		Key:         "satellite",
		Name:        "Satellite",
		URL:         "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
		Attribution: `&copy; <a href="https://www.esri.com/">Esri</a>, Maxar, Earthstar Geographics`,
	},
	{
		Key:         "terrain",
		Name:        "Terrain",
		URL:         "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
		Attribution: `&copy; <a href="https://opentopomap.org/">OpenTopoMap</a> contributors`,
	},
	{
		Key:         "dark",
		Name:        "Dark Mode",
		URL:         "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
		Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`,
	},
}

func Layers() []Layer {
	out := make([]Layer, len(layers))
	copy(out, layers)
	return out
}

func LayerByKey(key string) (Layer, bool) {
	for _, l := range layers {
		if l.Key == key {
			return l, true
		}
	}
	return Layer{}, false
}
