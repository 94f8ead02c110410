package types

import "errors"

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Coords is a WGS84 point in decimal degrees
type Coords struct {
	Latitude  float64 `json:"latitude" example:"19.076"`
	Longitude float64 `json:"longitude" example:"72.8777"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate reports whether both components are inside their WGS84 ranges.
// NaN fails both checks.
func (c Coords) Validate() error {
	if !(c.Latitude >= -90 && c.Latitude <= 90) {
		return ErrInvalidLatitude
	}
	if !(c.Longitude >= -180 && c.Longitude <= 180) {
		return ErrInvalidLongitude
	}
	return nil
}
