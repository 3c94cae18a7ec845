package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// FallbackRecommendation is returned whenever the text-generation
// collaborator fails in any way. Recommendations are a non-critical
// enhancement: the caller always gets at least one usable string and
// never an error.
const FallbackRecommendation = "We had trouble generating suggestions. Try to use public transport more often to reduce your emissions."

const (
	maxRecommendations    = 3
	recommendationTimeout = 15 * time.Second
)

type RecommendationService interface {
	// GetRecommendations returns 2-3 short personalized eco tips for the
	// day's logged data, or the single fallback string on any failure.
	GetRecommendations(ctx context.Context, input RecommendationInput) []string
}

type recommendationService struct {
	provider LLMProvider
}

func NewRecommendationService(provider LLMProvider) RecommendationService {
	return &recommendationService{provider: provider}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, input RecommendationInput) []string {
	if s.provider == nil {
		return []string{FallbackRecommendation}
	}

	ctx, cancel := context.WithTimeout(ctx, recommendationTimeout)
	defer cancel()

	var result struct {
		Recommendations []string `json:"recommendations"`
	}

	if err := s.provider.GenerateStructured(ctx, buildRecommendationPrompt(input), &result); err != nil {
		log.Printf("recommendation generation failed: %v", err)
		return []string{FallbackRecommendation}
	}

	recommendations := make([]string, 0, maxRecommendations)
	for _, rec := range result.Recommendations {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			continue
		}
		recommendations = append(recommendations, rec)
		if len(recommendations) == maxRecommendations {
			break
		}
	}

	if len(recommendations) == 0 {
		return []string{FallbackRecommendation}
	}

	return recommendations
}

func buildRecommendationPrompt(input RecommendationInput) string {
	return fmt.Sprintf(`You are an AI assistant designed to provide personalized eco-friendly recommendations to users based on their transportation habits. Your goal is to suggest actions that can help them reduce their carbon footprint and earn more points in an environmental awareness program.

Consider the following information about the user:

- Current mode of transportation: %s
- Distance traveled today: %g km
- Number of trips today: %d
- Daily carbon emissions: %g kg CO2
- Total points earned: %d
- Daily points earned: %d

Based on this information, provide 2-3 specific and actionable recommendations that the user can implement to reduce their environmental impact and increase their points. Focus on suggesting alternative transportation methods, reducing trip frequency, or other relevant strategies.

Output format: JSON object {"recommendations": ["...", "..."]} where each string is one short recommendation.`,
		input.Mode, input.DistanceKm, input.Trips, input.DailyEmissions, input.TotalPoints, input.DailyPoints)
}
