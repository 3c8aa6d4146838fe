package destination

// Detail is the modal content for a featured destination.
type Detail struct {
	Code         string      `json:"code" yaml:"-"`
	Name         string      `json:"name" yaml:"name"`
	Subtitle     string      `json:"subtitle" yaml:"subtitle"`
	Image        string      `json:"image" yaml:"image"`
	Price        string      `json:"price" yaml:"price"`
	Rating       string      `json:"rating" yaml:"rating"`
	Description  string      `json:"description" yaml:"description"`
	Highlights   []string    `json:"highlights" yaml:"highlights"`
	Duration     string      `json:"duration" yaml:"duration"`
	BestTime     string      `json:"bestTime" yaml:"bestTime"`
	Included     []string    `json:"included" yaml:"included"`
	NearbyPlaces []PlaceRate `json:"nearbyPlaces" yaml:"nearbyPlaces"`
}

// PlaceRate is a nearby place listed with its entry rate.
type PlaceRate struct {
	Name     string `json:"name" yaml:"name"`
	Rate     string `json:"rate" yaml:"rate"`
	Distance string `json:"distance" yaml:"distance"`
}

// Summary is the card shown in the destinations grid.
type Summary struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Price    string `json:"price"`
	Rating   string `json:"rating"`
}
