// Package classify assigns agronomic levels to soil property readings
// using fixed thresholds.
package classify

import "github.com/kipkoech/shamba/internal/model"

// limits holds the two cutoffs that split a property's value range into
// Low, Moderate and High bands.
type limits struct {
	low  float64 // below this is Low
	high float64 // above this is High
}

// thresholds encodes the classification table per property. Values are
// data, not code: each property is evaluated against its own row only.
//
// Boundary rule, uniform across properties: a value exactly at the
// low cutoff classifies Moderate; a value exactly at the high cutoff
// classifies Moderate; only values strictly above the high cutoff are High.
var thresholds = map[model.Property]limits{
	model.PropertyNitrogen:   {low: 1.5, high: 5.0},
	model.PropertyPhosphorus: {low: 10, high: 50},
	model.PropertyPotassium:  {low: 39, high: 195},
	model.PropertyPH:         {low: 5.3, high: 7.3},
}

// Classify maps each property of the reading to its level. Pure function:
// the four properties are evaluated independently and the same reading
// always produces the same classification.
func Classify(reading model.SoilReading) model.Classification {
	classification := make(model.Classification, len(thresholds))
	for _, property := range model.Properties {
		classification[property] = classifyValue(reading.Value(property), thresholds[property])
	}
	return classification
}

func classifyValue(v float64, l limits) model.Level {
	switch {
	case v < l.low:
		return model.LevelLow
	case v <= l.high:
		return model.LevelModerate
	default:
		return model.LevelHigh
	}
}
