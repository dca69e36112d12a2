package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput marks a request rejected at the boundary, as opposed to a
// collaborator failure.
var ErrInvalidInput = errors.New("invalid input")

// TextGenerator is the external text-generation collaborator. The engine
// never depends on it for numbers, only for the human-readable message.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// hotWeatherKeywords trigger the +15oz weather adjustment when they appear
// anywhere in the weather text, case-insensitively. The matching must stay
// substring-based for output compatibility with earlier releases.
var hotWeatherKeywords = []string{"hot", "warm", "sunny", "humid"}

type InsightsInput struct {
	ActivityLevel string  `json:"activityLevel"`
	Weather       string  `json:"weather"`
	SleepDuration float64 `json:"sleepDuration"`
	Weight        float64 `json:"weight"`
}

type InsightsOutput struct {
	HydrationMessage  string `json:"hydrationMessage"`
	SuggestedIntakeOz int    `json:"suggestedIntakeOz"`
}

type DailyTipInput struct {
	ActivityLevel     string  `json:"activityLevel"`
	WeightInKilograms float64 `json:"weightInKilograms"`
	Weather           string  `json:"weather"`
}

type DailyTipOutput struct {
	Tip string `json:"tip"`
}

// InsightsService produces personalized hydration recommendations. The
// suggested intake is computed locally; only the message text comes from the
// collaborator.
type InsightsService struct {
	generator TextGenerator
}

func NewInsightsService(generator TextGenerator) *InsightsService {
	return &InsightsService{generator: generator}
}

// SuggestedIntakeOz computes the recommended daily intake in ounces:
// weight*0.67, +20 for an active lifestyle, +15 for hot weather, +10 for
// short sleep, rounded to the nearest integer.
func SuggestedIntakeOz(weightKg float64, activityLevel, weather string, sleepHours float64) int {
	intake := weightKg * 0.67
	if activityLevel == "active" {
		intake += 20
	}
	lower := strings.ToLower(weather)
	for _, kw := range hotWeatherKeywords {
		if strings.Contains(lower, kw) {
			intake += 15
			break
		}
	}
	if sleepHours < 6 {
		intake += 10
	}
	return int(math.Round(intake))
}

func validateInsightsInput(in InsightsInput) error {
	switch in.ActivityLevel {
	case "sedentary", "moderate", "active":
	default:
		return fmt.Errorf("%w: activity level must be sedentary, moderate or active", ErrInvalidInput)
	}
	if len(in.Weather) < 3 {
		return fmt.Errorf("%w: weather description is too short", ErrInvalidInput)
	}
	if len(in.Weather) > 50 {
		return fmt.Errorf("%w: weather description is too long", ErrInvalidInput)
	}
	if in.SleepDuration < 0 {
		return fmt.Errorf("%w: sleep duration cannot be negative", ErrInvalidInput)
	}
	if in.SleepDuration > 24 {
		return fmt.Errorf("%w: sleep duration seems too high", ErrInvalidInput)
	}
	if in.Weight < 1 {
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}
	if in.Weight > 500 {
		return fmt.Errorf("%w: weight seems too high", ErrInvalidInput)
	}
	return nil
}

// GenerateInsights validates the input, asks the collaborator for a message
// and pairs it with the locally computed intake suggestion. A collaborator
// failure is returned as-is so the caller can surface it; no stats are
// credited here.
func (s *InsightsService) GenerateInsights(ctx context.Context, in InsightsInput) (*InsightsOutput, error) {
	if err := validateInsightsInput(in); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are an AI assistant designed to provide personalized hydration advice.

Based on the user's activity level, weather conditions, sleep duration, and weight,
recommend optimal water intake and provide a motivating message.

Activity Level: %s
Weather: %s
Sleep Duration: %g hours
Weight: %g kg

Respond with a message that is no more than 100 words, tailored to these values.`,
		in.ActivityLevel, in.Weather, in.SleepDuration, in.Weight)

	message, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	return &InsightsOutput{
		HydrationMessage:  message,
		SuggestedIntakeOz: SuggestedIntakeOz(in.Weight, in.ActivityLevel, in.Weather, in.SleepDuration),
	}, nil
}

// DailyTip asks the collaborator for a single actionable hydration tip.
func (s *InsightsService) DailyTip(ctx context.Context, in DailyTipInput) (*DailyTipOutput, error) {
	if in.Weather == "" {
		return nil, fmt.Errorf("%w: weather is required", ErrInvalidInput)
	}
	if in.WeightInKilograms <= 0 {
		return nil, fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}

	prompt := fmt.Sprintf(`You are a hydration expert. Generate a single, actionable tip to help the user stay hydrated, given their activity level, weight, and the current weather.

Activity Level: %s
Weight (kg): %g
Weather: %s

Tip:`, in.ActivityLevel, in.WeightInKilograms, in.Weather)

	tip, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate daily tip: %w", err)
	}
	return &DailyTipOutput{Tip: tip}, nil
}
