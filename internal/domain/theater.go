package domain

import "context"

type Theater struct {
	ID        string
	TheaterID int
	Location  Location
}

type Location struct {
	Address Address
	Geo     GeoPoint
}

type Address struct {
	Street1 string
	City    string
	State   string
	Zipcode string
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string
	Coordinates [2]float64
}

type TheaterRepository interface {
	Theaters(ctx context.Context) ([]Theater, error)
}
