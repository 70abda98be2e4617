package entities

import "encoding/json"

// Nurse represents a staffing candidate in the system
type Nurse struct {
	ID            string          `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	City          string          `json:"city" db:"city"`
	Rating        float64         `json:"rating" db:"rating"`
	ReviewsCount  int             `json:"reviewsCount" db:"reviews_count"`
	Services      []string        `json:"services" db:"-"`
	ExpertiseTags []string        `json:"expertiseTags" db:"-"`
	Location      *Location       `json:"location,omitempty" db:"-"`
	Availability  json.RawMessage `json:"availability,omitempty" db:"availability"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"lat" db:"latitude"`
	Longitude float64 `json:"lng" db:"longitude"`
}
