// Package engine orchestrates the fetch, classify and recommend stages.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kipkoech/shamba/internal/classify"
	"github.com/kipkoech/shamba/internal/model"
)

// Engine runs the recommendation pipeline. Each run is stateless and
// strictly sequential: a stage completes or fails before the next starts.
type Engine struct {
	fetcher     SoilFetcher
	recommender Recommender
	logger      *slog.Logger
}

// Result holds the output of a run. Classification is populated as soon
// as the fetch succeeds, so a generation failure still leaves the
// classified levels visible to the caller.
type Result struct {
	Reading        model.SoilReading
	Classification model.Classification
	Recommendation string
}

// New creates an Engine from its collaborators.
func New(fetcher SoilFetcher, recommender Recommender, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		fetcher:     fetcher,
		recommender: recommender,
		logger:      logger,
	}
}

// Run executes the pipeline for a coordinate. On a fetch failure the
// recommender is never invoked and the result is nil. On a generation
// failure the returned result carries the reading and classification
// alongside the error.
func (e *Engine) Run(ctx context.Context, coord model.Coordinate) (*Result, error) {
	e.logger.Info("fetching soil properties", "coordinate", coord.String())

	reading, err := e.fetcher.FetchProperties(ctx, coord)
	if err != nil {
		return nil, fmt.Errorf("fetching soil data: %w", err)
	}

	classification := classify.Classify(reading)

	e.logger.Info("soil properties classified",
		"nitrogen", classification[model.PropertyNitrogen],
		"phosphorus", classification[model.PropertyPhosphorus],
		"potassium", classification[model.PropertyPotassium],
		"ph", classification[model.PropertyPH])

	result := &Result{
		Reading:        reading,
		Classification: classification,
	}

	recommendation, err := e.recommender.Recommend(ctx, reading, classification)
	if err != nil {
		return result, err
	}

	result.Recommendation = recommendation
	return result, nil
}
