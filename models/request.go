package models

// RoutingRequest is the payload for POST /api/v1/routing.
type RoutingRequest struct {
	// HTML is the rendered routing page. Required.
	HTML string `json:"html" binding:"required"`

	// MaxAge enables the result cache: a record extracted from identical
	// HTML within MaxAge milliseconds is returned without re-parsing.
	// Default: 0 (no caching).
	MaxAge int `json:"max_age,omitempty" binding:"omitempty,min=0"`
}

// TripSummaryRequest is the payload for POST /api/v1/trip/summary.
type TripSummaryRequest struct {
	// Name labels the trip. Default: "trip".
	Name string `json:"name,omitempty"`

	// Legs are routing records in travel order, one per page.
	Legs []TripRouting `json:"legs" binding:"required,min=1"`
}

// Defaults applies default values to unset fields.
func (r *TripSummaryRequest) Defaults() {
	if r.Name == "" {
		r.Name = "trip"
	}
}
