package engine

import (
	"context"

	"github.com/kipkoech/shamba/internal/model"
)

// SoilFetcher defines the contract for retrieving soil property readings.
type SoilFetcher interface {
	FetchProperties(ctx context.Context, coord model.Coordinate) (model.SoilReading, error)
}

// Recommender defines the contract for producing a fertilizer
// recommendation from a classified reading.
type Recommender interface {
	Recommend(ctx context.Context, reading model.SoilReading, classification model.Classification) (string, error)
}
