package model

// FertilizerOption is a static catalog entry describing a fertilizer
// product and its nutrient suitability profile.
type FertilizerOption struct {
	Name       string
	Grade      string // N-P-K grade where the product has one
	Nitrogen   Level
	Phosphorus Level
	Potassium  Level
	CorrectsPH bool
}

// FertilizerCatalog is the fixed set of candidate fertilizers offered to
// the recommendation prompt. It is data, not logic: adding a product here
// requires no change to classification or prompt-building code.
var FertilizerCatalog = []FertilizerOption{
	{Name: "Urea", Grade: "46-0-0", Nitrogen: LevelHigh, Phosphorus: LevelLow, Potassium: LevelLow},
	{Name: "Ammonium Sulfate", Grade: "21-0-0", Nitrogen: LevelHigh, Phosphorus: LevelLow, Potassium: LevelLow},
	{Name: "Single Super Phosphate", Nitrogen: LevelLow, Phosphorus: LevelModerate, Potassium: LevelLow},
	{Name: "Triple Super Phosphate", Nitrogen: LevelLow, Phosphorus: LevelHigh, Potassium: LevelLow},
	{Name: "Muriate of Potash", Nitrogen: LevelLow, Phosphorus: LevelLow, Potassium: LevelHigh},
	{Name: "Sulphate of Potash", Nitrogen: LevelLow, Phosphorus: LevelLow, Potassium: LevelHigh},
	{Name: "Lime", CorrectsPH: true},
}
