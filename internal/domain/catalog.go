package domain

// Category represents a plant category from the upstream catalog
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Plant is the canonical plant record the rest of the system relies on.
// The upstream API names fields inconsistently across endpoints, so every
// Plant is produced by the catalog normalizer rather than decoded directly.
type Plant struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	Category         string  `json:"category"`
	Price            float64 `json:"price"`
	ShortDescription string  `json:"shortDescription"`

	// Raw keeps the original record so callers can recover fields the
	// normalizer does not model.
	Raw map[string]interface{} `json:"-"`
}

// PlantDetail is a Plant plus the optional descriptive attributes the
// detail endpoint sometimes returns. Each attribute is rendered only when
// non-blank after trimming.
type PlantDetail struct {
	Plant
	FullDescription string `json:"fullDescription"`
	Sunlight        string `json:"sunlight,omitempty"`
	Watering        string `json:"watering,omitempty"`
	Origin          string `json:"origin,omitempty"`
	MatureSize      string `json:"matureSize,omitempty"`
	Hardiness       string `json:"hardiness,omitempty"`
	Rating          string `json:"rating,omitempty"`
}
