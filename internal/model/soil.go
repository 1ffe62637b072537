// Package model defines the core domain types shared across the application.
package model

import "fmt"

// Property identifies one of the soil properties the service reports.
type Property string

// Soil properties classified by the engine.
const (
	PropertyNitrogen   Property = "nitrogen"
	PropertyPhosphorus Property = "phosphorus"
	PropertyPotassium  Property = "potassium"
	PropertyPH         Property = "ph"
)

// Properties lists all classified soil properties in display order.
var Properties = []Property{
	PropertyNitrogen,
	PropertyPhosphorus,
	PropertyPotassium,
	PropertyPH,
}

// Unit returns the measurement unit for the property.
func (p Property) Unit() string {
	switch p {
	case PropertyNitrogen:
		return "g/kg"
	case PropertyPhosphorus, PropertyPotassium:
		return "mg/kg"
	default:
		return ""
	}
}

// Level is the classification band assigned to a soil property value.
type Level string

// Classification levels.
const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
)

// Coordinate is a geographic point within the soil service's coverage area.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Validate performs basic range sanity checks on the coordinate.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180, 180]", c.Longitude)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Latitude, c.Longitude)
}

// SoilReading holds the four property values fetched for a single point.
// All four values describe the same coordinate; a reading is never partial.
type SoilReading struct {
	Nitrogen   float64 // g/kg
	Phosphorus float64 // mg/kg
	Potassium  float64 // mg/kg
	PH         float64
}

// Value returns the reading for a single property.
func (r SoilReading) Value(p Property) float64 {
	switch p {
	case PropertyNitrogen:
		return r.Nitrogen
	case PropertyPhosphorus:
		return r.Phosphorus
	case PropertyPotassium:
		return r.Potassium
	case PropertyPH:
		return r.PH
	default:
		return 0
	}
}

// Classification maps each soil property to its assigned level.
type Classification map[Property]Level
