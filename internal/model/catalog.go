package model

// Location is an immutable reference entity shared by routes.  Routes
// reference locations by value; the catalog owns the canonical set.
//
// Fields:
//  ID      – catalog identifier.
//  Name    – display name of the place.
//  Address – street address.
type Location struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Housing is a catalog entity describing a place to stay along a route.
// It carries no occupancy or lifecycle state.
//
// Fields:
//  ID      – catalog identifier.
//  Name    – display name.
//  Address – street address.
//  Offers  – amenities offered to guests.
type Housing struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Offers  []string `json:"offers"`
}

// Restaurant is a catalog entity describing a place to eat along a route.
//
// Fields:
//  ID      – catalog identifier.
//  Name    – display name.
//  Address – street address.
//  Menu    – dishes on offer.
type Restaurant struct {
	ID      uint64   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Menu    []string `json:"menu"`
}
