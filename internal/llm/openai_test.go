package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkoech/shamba/internal/common"
)

func TestNewOpenAIClient(t *testing.T) {
	_, err := newOpenAIClient(Config{})
	require.ErrorIs(t, err, common.ErrMissingConfig)

	client, err := newOpenAIClient(Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestOpenAIGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{
			"choices": [{
				"message": {"role": "assistant", "content": "Apply Triple Super Phosphate."},
				"finish_reason": "stop",
				"index": 0
			}]
		}`)
	}))
	defer server.Close()

	client, err := newOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "Recommend fertilizer for this soil analysis.")
	require.NoError(t, err)
	assert.Equal(t, "Apply Triple Super Phosphate.", text)
}

func TestOpenAIGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"API error status", http.StatusTooManyRequests, `{"error": {"message": "rate limited"}}`},
		{"no choices", http.StatusOK, `{"choices": []}`},
		{"empty completion", http.StatusOK, `{"choices": [{"message": {"content": ""}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client, err := newOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL})
			require.NoError(t, err)

			_, genErr := client.Generate(context.Background(), "prompt")
			require.ErrorIs(t, genErr, common.ErrGeneration)
		})
	}
}
