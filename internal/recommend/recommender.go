package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kipkoech/shamba/internal/common"
	"github.com/kipkoech/shamba/internal/llm"
	"github.com/kipkoech/shamba/internal/model"
)

// Recommender produces fertilizer recommendations from classified soil
// readings via a generative-AI client. No retries and no caching: each
// call is a single prompt-and-generate round trip.
type Recommender struct {
	client  llm.Client
	catalog []model.FertilizerOption
	logger  *slog.Logger
}

// NewRecommender creates a Recommender backed by the given client and the
// static fertilizer catalog.
func NewRecommender(client llm.Client, logger *slog.Logger) *Recommender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recommender{
		client:  client,
		catalog: model.FertilizerCatalog,
		logger:  logger,
	}
}

// Recommend builds the prompt for the classified reading and returns the
// service's recommendation text as-is. Failures and empty completions
// surface as generation errors; no fallback text is ever fabricated.
func (r *Recommender) Recommend(ctx context.Context, reading model.SoilReading, classification model.Classification) (string, error) {
	prompt, err := BuildPrompt(reading, classification, r.catalog)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrGeneration, err)
	}

	r.logger.Debug("requesting recommendation", "prompt_bytes", len(prompt))

	text, err := r.client.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating recommendation: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty recommendation", common.ErrGeneration)
	}

	r.logger.Info("recommendation generated", "response_bytes", len(text))

	return text, nil
}
