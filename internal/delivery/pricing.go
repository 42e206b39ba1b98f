// Package delivery computes the delivery fee for an order from its drop-off
// coordinates. The serviced city is La Ceiba; the free zone is the longitude
// band between the two outer bridges.
package delivery

import "fmt"

// Bridge marks a reference landmark on the city's river crossings.
type Bridge struct {
	Name string
	Lat  float64
	Lng  float64
}

// The three bridges bounding the serviced zone. Danto and Reino de Suecia
// define the band; Saopin sits between them and is kept for reference.
var bridges = []Bridge{
	{Name: "Puente Danto", Lat: 15.7594158, Lng: -86.8149412},
	{Name: "Puente Saopin", Lat: 15.7621218, Lng: -86.783392},
	{Name: "Puente Reino de Suecia", Lat: 15.7729232, Lng: -86.7797647},
}

const (
	// FeeInside is the fee inside the bridge zone.
	FeeInside = 0.0
	// FeeOutside applies outside the zone and nationwide, in lempiras.
	FeeOutside = 105.0
)

// PriceFor maps coordinates to a delivery fee. Longitudes strictly between
// the west and east bridges are free; anything else pays the outside fee.
// Latitude is accepted but the zone test is one-dimensional. Callers with no
// coordinates at all must substitute the outside fee themselves.
func PriceFor(lat, lng float64) float64 {
	_ = lat
	west := bridges[0]
	east := bridges[2]

	// Negative longitudes: more negative is further west.
	if lng > west.Lng && lng < east.Lng {
		return FeeInside
	}
	return FeeOutside
}

// FormatPrice renders an amount in lempiras the way the storefront does.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("L. %.2f", amount)
}
