package utils

import "math"

// CalculateHydrationScore weighs streak length quadratically so sustained
// habits dominate, with smaller credit for goals met and unlocks.
func CalculateHydrationScore(currentStreak, goalsMetCount, achievementsCount int) float64 {
	streakScore := math.Pow(float64(currentStreak), 2) * 0.3
	goalsScore := float64(goalsMetCount) * 0.5
	achievementScore := float64(achievementsCount) * 1.0

	return streakScore + goalsScore + achievementScore
}
