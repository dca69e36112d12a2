package hydration

import "hydrateWiseAPI/internal/achievement"

const (
	// DefaultGoalMl is used when no goal has ever been persisted.
	DefaultGoalMl = 2000
	// MinGoalMl is the floor goals are clamped to rather than rejected.
	MinGoalMl = 500
)

// Snapshot is the engine state handed to the presentation layer.
type Snapshot struct {
	DailyGoalMl            int                      `json:"daily_goal_ml"`
	CurrentIntakeMl        int                      `json:"current_intake_ml"`
	Initialized            bool                     `json:"initialized"`
	AchievementStats       achievement.Stats        `json:"achievement_stats"`
	UnlockedAchievementIDs []achievement.ID         `json:"unlocked_achievement_ids"`
	Achievements           []achievement.WithStatus `json:"achievements"`
}

// Score summarizes overall hydration habit strength for the stats card.
type Score struct {
	Score         float64 `json:"score"`
	CurrentStreak int     `json:"current_streak"`
	GoalsMet      int     `json:"goals_met"`
	Achievements  int     `json:"achievements"`
}
