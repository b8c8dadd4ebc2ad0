package narrative

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGenerate(t *testing.T) {
	var got generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(generateResponse{Text: "축마는 번개호."})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		URL:         server.URL,
		APIKey:      "test-key",
		Model:       "flash",
		Temperature: 0.3,
		MaxTokens:   2048,
		Timeout:     5 * time.Second,
	})

	text, err := client.Generate(context.Background(), "프롬프트")
	require.NoError(t, err)
	assert.Equal(t, "축마는 번개호.", text)

	assert.Equal(t, "flash", got.Model)
	assert.Equal(t, "프롬프트", got.Prompt)
	assert.Equal(t, 0.3, got.Temperature)
	assert.Equal(t, 2048, got.MaxTokens)
}

func TestClientGenerateStripsCodeFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{Text: "```json\n{\"axis\":\"번개호\"}\n```"})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL})

	text, err := client.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, `{"axis":"번개호"}`, text)
}

func TestClientGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL})

	_, err := client.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClientGenerateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(generateResponse{Text: "late"})
	}))
	defer server.Close()

	client := NewClient(ClientConfig{URL: server.URL, Timeout: 20 * time.Millisecond})

	_, err := client.Generate(context.Background(), "p")
	require.Error(t, err)
}
