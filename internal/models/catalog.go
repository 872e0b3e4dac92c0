package models

// Venue types and event categories are closed sets; anything else in a
// filter simply matches nothing.
const (
	VenueTypeCourt    = "court"
	VenueTypeStudio   = "studio"
	VenueTypeRecovery = "recovery"
)

const (
	EventCategorySports   = "sports"
	EventCategoryDance    = "dance"
	EventCategoryWorkshop = "workshop"
	EventCategoryOther    = "other"
)

type Venue struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Tags          []string `json:"tags"`
	Address       string   `json:"address"`
	Rating        float64  `json:"rating"`
	DistanceKm    float64  `json:"distance_km"`
	PricePer30Min float64  `json:"price_per_30min"`
	Image         string   `json:"image,omitempty"`
	Phone         string   `json:"phone,omitempty"`
}

type Offer struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	Image           string `json:"image,omitempty"`
	VenueType       string `json:"venue_type,omitempty"`
}

type Event struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	VenueID  string  `json:"venue_id,omitempty"`
	Date     string  `json:"date,omitempty"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}

type Activity struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// RecoveryRecommendation is the titled envelope around the top recovery picks.
type RecoveryRecommendation struct {
	Title string  `json:"title"`
	Items []Venue `json:"items"`
}
