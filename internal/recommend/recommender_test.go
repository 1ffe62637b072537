package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkoech/shamba/internal/common"
	"github.com/kipkoech/shamba/internal/model"
)

// mockLLMClient records the prompt it receives and returns canned output.
type mockLLMClient struct {
	response string
	err      error
	prompt   string
}

func (m *mockLLMClient) Generate(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestBuildPromptAllLow(t *testing.T) {
	reading := model.SoilReading{Nitrogen: 0.8, Phosphorus: 5, Potassium: 20, PH: 4.9}
	classification := model.Classification{
		model.PropertyNitrogen:   model.LevelLow,
		model.PropertyPhosphorus: model.LevelLow,
		model.PropertyPotassium:  model.LevelLow,
		model.PropertyPH:         model.LevelLow,
	}

	prompt, err := BuildPrompt(reading, classification, model.FertilizerCatalog)
	require.NoError(t, err)

	// All four properties appear with their Low classification.
	assert.Contains(t, prompt, "Nitrogen (N): 0.80 g/kg - Classification: Low")
	assert.Contains(t, prompt, "Phosphorus (P): 5.00 mg/kg - Classification: Low")
	assert.Contains(t, prompt, "Potassium (K): 20.00 mg/kg - Classification: Low")
	assert.Contains(t, prompt, "pH: 4.90 - Classification: Low")

	// The pH-correcting option is offered as a candidate.
	assert.Contains(t, prompt, "Lime - For raising soil pH")

	// The full catalog is present.
	assert.Contains(t, prompt, "Urea (46-0-0) - High N, Low P, Low K")
	assert.Contains(t, prompt, "Muriate of Potash - Low N, Low P, High K")
}

func TestBuildPromptCatalogIsNumbered(t *testing.T) {
	reading := model.SoilReading{Nitrogen: 2, Phosphorus: 20, Potassium: 100, PH: 6.5}
	classification := model.Classification{
		model.PropertyNitrogen:   model.LevelModerate,
		model.PropertyPhosphorus: model.LevelModerate,
		model.PropertyPotassium:  model.LevelModerate,
		model.PropertyPH:         model.LevelModerate,
	}

	prompt, err := BuildPrompt(reading, classification, model.FertilizerCatalog)
	require.NoError(t, err)

	assert.Contains(t, prompt, "1. Urea")
	assert.Contains(t, prompt, "7. Lime")
}

func TestRecommend(t *testing.T) {
	client := &mockLLMClient{response: "Apply Urea and Lime."}
	recommender := NewRecommender(client, nil)

	reading := model.SoilReading{Nitrogen: 0.8, Phosphorus: 5, Potassium: 20, PH: 4.9}
	classification := model.Classification{
		model.PropertyNitrogen:   model.LevelLow,
		model.PropertyPhosphorus: model.LevelLow,
		model.PropertyPotassium:  model.LevelLow,
		model.PropertyPH:         model.LevelLow,
	}

	text, err := recommender.Recommend(context.Background(), reading, classification)
	require.NoError(t, err)
	assert.Equal(t, "Apply Urea and Lime.", text)

	// The generated prompt carried the classified state.
	assert.Contains(t, client.prompt, "Classification: Low")
	assert.Contains(t, client.prompt, "Lime")
}

func TestRecommendPropagatesGenerationError(t *testing.T) {
	client := &mockLLMClient{err: common.ErrGeneration}
	recommender := NewRecommender(client, nil)

	_, err := recommender.Recommend(context.Background(), model.SoilReading{}, model.Classification{})
	require.ErrorIs(t, err, common.ErrGeneration)
}

func TestRecommendRejectsEmptyCompletion(t *testing.T) {
	client := &mockLLMClient{response: "   \n"}
	recommender := NewRecommender(client, nil)

	_, err := recommender.Recommend(context.Background(), model.SoilReading{}, model.Classification{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrGeneration))
}
