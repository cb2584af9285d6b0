package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuggingFaceAdapterClassify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"label": "Tomato early blight", "score": 0.91},
			{"label": "Healthy", "score": 0.06}
		]`))
	}))
	defer server.Close()

	a := NewHuggingFaceAdapter("hf-key", server.URL, time.Second)

	diagnosis, err := a.Classify(context.Background(), []byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	assert.Equal(t, "Tomato early blight", diagnosis.Label)
	assert.InDelta(t, 0.91, diagnosis.Confidence, 0.001)
}

func TestHuggingFaceAdapterEmptyImage(t *testing.T) {
	a := NewHuggingFaceAdapter("hf-key", "http://127.0.0.1:1", time.Second)

	_, err := a.Classify(context.Background(), nil)
	assert.Error(t, err)
}

func TestHuggingFaceAdapterModelLoading(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Model is currently loading"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	a := NewHuggingFaceAdapter("hf-key", server.URL, time.Second)

	_, err := a.Classify(context.Background(), []byte{0x01})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 503")
}

func TestHuggingFaceAdapterNoPredictions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	a := NewHuggingFaceAdapter("hf-key", server.URL, time.Second)

	_, err := a.Classify(context.Background(), []byte{0x01})
	assert.Error(t, err)
}
