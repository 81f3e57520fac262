package planner_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hungerguard/internal/config"
	gemini "hungerguard/internal/planner/gemini"
	"hungerguard/internal/port"
)

func newGeminiTestPlanner(serverURL string) *gemini.Planner {
	cfg := &config.PlannerConfig{
		Provider:     "gemini",
		APIKey:       "test-gemini-key",
		DefaultModel: "gemini-2.0-flash",
		TimeoutSecs:  30,
	}
	return gemini.NewPlannerWithEndpoint(cfg, serverURL)
}

func geminiSuccessResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGeminiPlanner_GeneratePlan_Success(t *testing.T) {
	planText := "Allocation plan.\nPeople served: ~120 individuals\nFood waste prevented: 400kg\n\nSummary: plan ready."
	responseBody := geminiSuccessResponse("  " + planText + "\n")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request headers
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Verify request body
		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)

		contents := reqBody["contents"].([]interface{})
		assert.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		assert.Len(t, parts, 1)
		textPart := parts[0].(map[string]interface{})
		prompt := textPart["text"].(string)
		assert.Contains(t, prompt, "200kg tomatoes")
		assert.Contains(t, prompt, "hunger_relief")

		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, 0.3, genConfig["temperature"])
		assert.Equal(t, float64(2048), genConfig["maxOutputTokens"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
	}))
	defer server.Close()

	p := newGeminiTestPlanner(server.URL)

	out, err := p.GeneratePlan(context.Background(), port.PlanInput{
		RawReport: "200kg tomatoes near the market",
		Focus:     "hunger_relief",
	})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, planText, out.PlanText)
	assert.Equal(t, "gemini-2.0-flash", out.ModelUsed)
	assert.Nil(t, out.Metrics)
}

func TestGeminiPlanner_GeneratePlan_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exhausted"}}`))
	}))
	defer server.Close()

	p := newGeminiTestPlanner(server.URL)

	_, err := p.GeneratePlan(context.Background(), port.PlanInput{RawReport: "100kg rice"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestGeminiPlanner_GeneratePlan_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	p := newGeminiTestPlanner(server.URL)

	_, err := p.GeneratePlan(context.Background(), port.PlanInput{RawReport: "100kg rice"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGeminiPlanner_GeneratePlan_EmptyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(geminiSuccessResponse("   "))
	}))
	defer server.Close()

	p := newGeminiTestPlanner(server.URL)

	_, err := p.GeneratePlan(context.Background(), port.PlanInput{RawReport: "100kg rice"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty plan text")
}
