package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkoech/shamba/internal/common"
)

func TestNewGeminiClient(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid config",
			config: Config{APIKey: "test-key"},
		},
		{
			name:    "missing API key",
			config:  Config{APIKey: ""},
			wantErr: true,
		},
		{
			name: "custom model and settings",
			config: Config{
				APIKey:      "test-key",
				Model:       "gemini-2.5-pro",
				Temperature: 0.5,
				MaxTokens:   512,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := newGeminiClient(tt.config)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrMissingConfig)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestGeminiGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var request struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Len(t, request.Contents, 1)
		assert.Contains(t, request.Contents[0].Parts[0].Text, "soil")

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{
			"candidates": [{
				"content": {
					"parts": [{"text": "Apply Urea at planting."}],
					"role": "model"
				},
				"finishReason": "STOP"
			}]
		}`)
	}))
	defer server.Close()

	client, err := newGeminiClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "Recommend fertilizer for this soil analysis.")
	require.NoError(t, err)
	assert.Equal(t, "Apply Urea at planting.", text)
}

func TestGeminiGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "API error status",
			status:  http.StatusServiceUnavailable,
			body:    `{"error": {"message": "model overloaded"}}`,
			wantErr: common.ErrGeneration,
		},
		{
			name:    "no candidates",
			status:  http.StatusOK,
			body:    `{"candidates": []}`,
			wantErr: common.ErrGeneration,
		},
		{
			name:    "empty completion",
			status:  http.StatusOK,
			body:    `{"candidates": [{"content": {"parts": [{"text": "  "}]}}]}`,
			wantErr: common.ErrGeneration,
		},
		{
			name:    "malformed response",
			status:  http.StatusOK,
			body:    `not json`,
			wantErr: common.ErrGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client, err := newGeminiClient(Config{APIKey: "test-key", BaseURL: server.URL})
			require.NoError(t, err)

			_, genErr := client.Generate(context.Background(), "prompt")
			require.ErrorIs(t, genErr, tt.wantErr)
		})
	}
}

func TestNewClientFactory(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantErr  bool
	}{
		{"gemini", "gemini", false},
		{"openai", "openai", false},
		{"case insensitive", "Gemini", false},
		{"unsupported", "llama", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(Config{Provider: tt.provider, APIKey: "test-key"})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
