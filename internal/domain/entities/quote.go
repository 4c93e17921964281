package entities

// Quote is a price estimate for a tow between two locations.
//
// Monetary representation:
//   - Price is integer cents
//   - DistanceMeters comes from the distance provider, or its demo fallback
type Quote struct {
	Pickup         string `json:"pickup"`
	Dropoff        string `json:"dropoff"`
	DistanceMeters int64  `json:"distanceMeters"`
	Price          int64  `json:"price"`
	Currency       string `json:"currency"`
	Demo           bool   `json:"demo"`
}

// Vehicle is the plate lookup result.
type Vehicle struct {
	Plate    string `json:"plate"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Color    string `json:"color"`
	Year     string `json:"year"`
	VIN      string `json:"vin,omitempty"`
	Fuel     string `json:"fuel,omitempty"`
	CCRating string `json:"cc,omitempty"`
	Demo     bool   `json:"demo"`
}

// DistanceResult holds road distances for consecutive legs between the
// requested locations.
type DistanceResult struct {
	Legs        []int64 `json:"legs"`
	TotalMeters int64   `json:"totalMeters"`
	Demo        bool    `json:"demo"`
}
