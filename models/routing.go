package models

// TripRouting is the record extracted from one rendered routing page.
type TripRouting struct {
	// TripName is the text of the trip title element.
	TripName string `json:"trip_name"`

	// Waypoints are the stops in document order. The first is the origin
	// and the last is the destination.
	Waypoints []Waypoint `json:"waypoints"`

	// MapsLink is the href of the directions link.
	MapsLink string `json:"maps_link"`
}

// Waypoint is one stop along the route. All fields are raw page text;
// units stay embedded in Distance and Duration.
type Waypoint struct {
	Icon     string `json:"icon"`
	Display  string `json:"display"`
	Address  string `json:"address"`
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}
