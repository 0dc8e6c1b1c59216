package model

// Property is a rental listing. CostPerNight is stored in cents; search
// filters take prices in dollars and convert.
type Property struct {
	ID                int    `json:"id"`
	OwnerID           int    `json:"owner_id"`
	Title             string `json:"title"`
	Slug              string `json:"slug"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int    `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Active            bool   `json:"active"`

	// AverageRating is populated only by filtered search, which joins the
	// property_reviews table.
	AverageRating *float64 `json:"average_rating,omitempty"`
}

// SearchFilter carries the optional criteria for a property search. It is
// never persisted. When OwnerID is set every other field is ignored: an
// owner-scoped listing short-circuits the general search.
type SearchFilter struct {
	City                 string
	MinimumPricePerNight *int // dollars
	MaximumPricePerNight *int // dollars
	MinimumRating        *float64
	OwnerID              *int
}
