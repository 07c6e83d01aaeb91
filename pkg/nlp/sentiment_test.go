package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/types"
)

func newClassifierServer(t *testing.T, label string, score float64, gotInputs *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if gotInputs != nil {
			*gotInputs = req.Inputs
		}
		json.NewEncoder(w).Encode([][]classifyScore{{{Label: label, Score: score}}})
	}))
}

func TestAnalyzePositive(t *testing.T) {
	server := newClassifierServer(t, "POSITIVE", 0.98, nil)
	defer server.Close()

	s := NewSentimentWithConfig(SentimentConfig{BaseURL: server.URL})
	result := s.Analyze(context.Background(), "great news everyone")

	assert.Equal(t, types.SentimentPositive, result.Label)
	assert.InDelta(t, 0.98, result.Score, 1e-9)
	assert.False(t, result.Degraded)
	assert.NoError(t, result.Cause)
}

func TestAnalyzeNegative(t *testing.T) {
	server := newClassifierServer(t, "NEGATIVE", 0.91, nil)
	defer server.Close()

	s := NewSentimentWithConfig(SentimentConfig{BaseURL: server.URL})
	result := s.Analyze(context.Background(), "terrible news everyone")

	assert.Equal(t, types.SentimentNegative, result.Label)
	assert.InDelta(t, 0.91, result.Score, 1e-9)
}

func TestAnalyzeUnrecognizedLabelIsNeutral(t *testing.T) {
	server := newClassifierServer(t, "SOMETHING_ELSE", 0.7, nil)
	defer server.Close()

	s := NewSentimentWithConfig(SentimentConfig{BaseURL: server.URL})
	result := s.Analyze(context.Background(), "some text")

	assert.Equal(t, types.SentimentNeutral, result.Label)
	assert.False(t, result.Degraded)
}

func TestAnalyzeTruncatesTo512Chars(t *testing.T) {
	var got string
	server := newClassifierServer(t, "POSITIVE", 0.9, &got)
	defer server.Close()

	long := strings.Repeat("a", 1000)
	s := NewSentimentWithConfig(SentimentConfig{BaseURL: server.URL})
	s.Analyze(context.Background(), long)

	assert.Len(t, got, 512)
	assert.Equal(t, long[:512], got)
}

func TestAnalyzeFailsSoft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // unreachable on purpose

	s := NewSentimentWithConfig(SentimentConfig{BaseURL: server.URL})
	result := s.Analyze(context.Background(), "any text")

	assert.Equal(t, types.SentimentNeutral, result.Label)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.True(t, result.Degraded)
	assert.Error(t, result.Cause)
}

func TestAnalyzeBadStatusFailsSoft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := NewSentimentWithConfig(SentimentConfig{BaseURL: server.URL})
	result := s.Analyze(context.Background(), "any text")

	assert.Equal(t, types.SentimentNeutral, result.Label)
	assert.True(t, result.Degraded)
}

func TestMapLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"POSITIVE", types.SentimentPositive},
		{"positive", types.SentimentPositive},
		{"LABEL_1", types.SentimentPositive},
		{"NEGATIVE", types.SentimentNegative},
		{"LABEL_0", types.SentimentNegative},
		{"NEUTRAL", types.SentimentNeutral},
		{"whatever", types.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapLabel(tt.label))
		})
	}
}
