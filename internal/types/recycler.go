package types

// Category labels a recycler by what it accepts
type Category string

const (
	CategoryEWaste           Category = "E-Waste"
	CategoryElectronics      Category = "Electronics"
	CategoryGeneralRecycling Category = "General Recycling"
)

// Recycler is a classified recycling facility returned to API clients
type Recycler struct {
	Name      string            `json:"name" example:"Green Center"`
	Latitude  float64           `json:"latitude" example:"19.08"`
	Longitude float64           `json:"longitude" example:"72.88"`
	Category  Category          `json:"category" example:"E-Waste"`
	Tags      map[string]string `json:"tags"`
}
