package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLMProvider struct {
	payload string
	err     error
	prompt  string
}

func (f *fakeLLMProvider) GenerateStructured(_ context.Context, prompt string, out interface{}) error {
	f.prompt = prompt
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.payload), out)
}

func (f *fakeLLMProvider) Close() {}

func sampleInput() RecommendationInput {
	return RecommendationInput{
		Mode:           "Car",
		DistanceKm:     12,
		Trips:          2,
		DailyEmissions: 5.52,
		TotalPoints:    430,
		DailyPoints:    8,
	}
}

func TestGetRecommendationsSuccess(t *testing.T) {
	provider := &fakeLLMProvider{
		payload: `{"recommendations": ["Take the bus twice a week.", "Combine errands into one trip."]}`,
	}
	svc := NewRecommendationService(provider)

	recs := svc.GetRecommendations(context.Background(), sampleInput())
	require.Len(t, recs, 2)
	assert.Equal(t, "Take the bus twice a week.", recs[0])

	assert.Contains(t, provider.prompt, "Car")
	assert.Contains(t, provider.prompt, "5.52 kg CO2")
}

func TestGetRecommendationsCapsAtThree(t *testing.T) {
	provider := &fakeLLMProvider{
		payload: `{"recommendations": ["one", "two", "three", "four", "five"]}`,
	}
	svc := NewRecommendationService(provider)

	recs := svc.GetRecommendations(context.Background(), sampleInput())
	assert.Len(t, recs, 3)
}

func TestGetRecommendationsSkipsBlankEntries(t *testing.T) {
	provider := &fakeLLMProvider{
		payload: `{"recommendations": ["  ", "Walk short distances.", ""]}`,
	}
	svc := NewRecommendationService(provider)

	recs := svc.GetRecommendations(context.Background(), sampleInput())
	require.Len(t, recs, 1)
	assert.Equal(t, "Walk short distances.", recs[0])
}

func TestGetRecommendationsProviderFailure(t *testing.T) {
	provider := &fakeLLMProvider{err: errors.New("deadline exceeded")}
	svc := NewRecommendationService(provider)

	recs := svc.GetRecommendations(context.Background(), sampleInput())
	assert.Equal(t, []string{FallbackRecommendation}, recs)
}

func TestGetRecommendationsEmptyResult(t *testing.T) {
	provider := &fakeLLMProvider{payload: `{"recommendations": []}`}
	svc := NewRecommendationService(provider)

	recs := svc.GetRecommendations(context.Background(), sampleInput())
	assert.Equal(t, []string{FallbackRecommendation}, recs)
}

func TestGetRecommendationsNilProvider(t *testing.T) {
	svc := NewRecommendationService(nil)

	recs := svc.GetRecommendations(context.Background(), sampleInput())
	assert.Equal(t, []string{FallbackRecommendation}, recs)
}
