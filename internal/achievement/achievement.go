// Package achievement holds the static catalog of unlockable achievements
// and the pure logic for predicates, progress and display text. The catalog
// carries no behavior in its data: descriptions and unlock checks are keyed
// off the id so nothing executable sits next to persisted-adjacent state.
package achievement

type ID string

const (
	FirstSip           ID = "FIRST_SIP"
	StayHydrated1      ID = "STAY_HYDRATED_1"
	StayHydrated5      ID = "STAY_HYDRATED_5"
	StayHydrated10     ID = "STAY_HYDRATED_10"
	Streak3Days        ID = "STREAK_3_DAYS"
	Streak7Days        ID = "STREAK_7_DAYS"
	StreakPerfectMonth ID = "STREAK_PERFECT_MONTH_APPROX"
	AICurious          ID = "AI_CURIOUS"
	AIExpert5          ID = "AI_EXPERT_5"
	AIGuru15           ID = "AI_GURU_15"
	GoalSetterHigh     ID = "GOAL_SETTER_HIGH"
	TotalVolume10L     ID = "TOTAL_VOLUME_10L"
	TotalVolume50L     ID = "TOTAL_VOLUME_50L"
	AllStarCollector   ID = "ALL_STAR_COLLECTOR"
)

type Category string

const (
	CategoryMilestone Category = "Milestone"
	CategoryStreak    Category = "Streak"
	CategoryAIUsage   Category = "AI Usage"
	CategoryVolume    Category = "Volume"
	CategoryMeta      Category = "Meta"
)

type Achievement struct {
	ID        ID       `json:"id"`
	Name      string   `json:"name"`
	Icon      string   `json:"icon"`
	Threshold int      `json:"threshold,omitempty"`
	Category  Category `json:"category"`
}

// Stats is the aggregate achievement record persisted as one JSON blob.
// Field names match the stored layout.
type Stats struct {
	CurrentStreak             int    `json:"currentStreak"`
	LastLogDateISO            string `json:"lastLogDateISO"`
	GoalsMetCount             int    `json:"goalsMetCount"`
	LastGoalMetDateISO        string `json:"lastGoalMetDateISO"`
	TotalWaterLoggedMl        int    `json:"totalWaterLoggedMl"`
	AIInsightsUsedCount       int    `json:"aiInsightsUsedCount"`
	UnlockedAchievementsCount int    `json:"unlockedAchievementsCount"`
}

// All is the full catalog in display order. AllStarCollector is the meta
// entry evaluated in a second pass against the unlocked-set size.
var All = []Achievement{
	{ID: FirstSip, Name: "First Sip!", Icon: "sparkles", Category: CategoryMilestone},
	{ID: StayHydrated1, Name: "Goal Getter", Icon: "star", Threshold: 1, Category: CategoryMilestone},
	{ID: StayHydrated5, Name: "Consistent Hydrator", Icon: "award", Threshold: 5, Category: CategoryMilestone},
	{ID: StayHydrated10, Name: "Hydration Hero", Icon: "trophy", Threshold: 10, Category: CategoryMilestone},
	{ID: Streak3Days, Name: "3-Day Streak", Icon: "zap", Threshold: 3, Category: CategoryStreak},
	{ID: Streak7Days, Name: "7-Day Streak", Icon: "calendar-days", Threshold: 7, Category: CategoryStreak},
	{ID: StreakPerfectMonth, Name: "Month-Long Habit", Icon: "calendar-days", Threshold: 30, Category: CategoryStreak},
	{ID: AICurious, Name: "AI Curious", Icon: "brain", Threshold: 1, Category: CategoryAIUsage},
	{ID: AIExpert5, Name: "AI Enthusiast", Icon: "brain", Threshold: 5, Category: CategoryAIUsage},
	{ID: AIGuru15, Name: "AI Guru", Icon: "brain", Threshold: 15, Category: CategoryAIUsage},
	{ID: GoalSetterHigh, Name: "Ambitious Goal", Icon: "target", Threshold: 3000, Category: CategoryMilestone},
	{ID: TotalVolume10L, Name: "10 Liter Club", Icon: "droplets", Threshold: 10000, Category: CategoryVolume},
	{ID: TotalVolume50L, Name: "Hydration Veteran", Icon: "droplets", Threshold: 50000, Category: CategoryVolume},
	{ID: AllStarCollector, Name: "Achievement Hunter", Icon: "sparkles", Threshold: 5, Category: CategoryMeta},
}

// ByID looks up a catalog entry. The second return is false for unknown ids
// (e.g. ids persisted by an older build).
func ByID(id ID) (Achievement, bool) {
	for _, a := range All {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Qualifies reports whether the achievement's unlock predicate holds for the
// given stats and daily goal. For AllStarCollector the caller must pass
// stats whose UnlockedAchievementsCount already reflects the set it wants
// the meta predicate to see.
func Qualifies(id ID, stats Stats, goalMl int) bool {
	switch id {
	case FirstSip:
		return stats.TotalWaterLoggedMl > 0
	case StayHydrated1:
		return stats.GoalsMetCount >= 1
	case StayHydrated5:
		return stats.GoalsMetCount >= 5
	case StayHydrated10:
		return stats.GoalsMetCount >= 10
	case Streak3Days:
		return stats.CurrentStreak >= 3
	case Streak7Days:
		return stats.CurrentStreak >= 7
	case StreakPerfectMonth:
		return stats.CurrentStreak >= 30
	case AICurious:
		return stats.AIInsightsUsedCount >= 1
	case AIExpert5:
		return stats.AIInsightsUsedCount >= 5
	case AIGuru15:
		return stats.AIInsightsUsedCount >= 15
	case GoalSetterHigh:
		return goalMl >= 3000
	case TotalVolume10L:
		return stats.TotalWaterLoggedMl >= 10000
	case TotalVolume50L:
		return stats.TotalWaterLoggedMl >= 50000
	case AllStarCollector:
		return stats.UnlockedAchievementsCount >= 5
	}
	return false
}

// Describe returns the display description for an achievement.
func Describe(id ID, stats Stats, goalMl int) string {
	switch id {
	case FirstSip:
		return "Log your first water intake."
	case StayHydrated1:
		return "Reach your daily hydration goal for the first time."
	case StayHydrated5:
		return "Reach your daily goal 5 times."
	case StayHydrated10:
		return "Reach your daily goal 10 times."
	case Streak3Days:
		return "Log water for 3 consecutive days."
	case Streak7Days:
		return "Log water for 7 consecutive days."
	case StreakPerfectMonth:
		return "Log water for 30 consecutive days."
	case AICurious:
		return "Use the AI Insights tool for the first time."
	case AIExpert5:
		return "Use the AI Insights tool 5 times."
	case AIGuru15:
		return "Use the AI Insights tool 15 times."
	case GoalSetterHigh:
		return "Set a daily hydration goal of 3000ml or more."
	case TotalVolume10L:
		return "Log a total of 10,000ml (10L) of water."
	case TotalVolume50L:
		return "Log a total of 50,000ml (50L) of water."
	case AllStarCollector:
		return "Unlock 5 other achievements."
	}
	return ""
}

// Progress is the {current, threshold, percent} triple consumed by UI
// progress bars.
type Progress struct {
	Current   int     `json:"current"`
	Threshold int     `json:"threshold"`
	Percent   float64 `json:"percent"`
}

// ProgressFor computes progress toward a. Percent is clamped to [0,100].
// Entries without a natural progress metric (FirstSip) report {0,0,0}.
func ProgressFor(a Achievement, stats Stats, goalMl int) Progress {
	switch a.ID {
	case StayHydrated1, StayHydrated5, StayHydrated10:
		return ratioProgress(stats.GoalsMetCount, a.Threshold)
	case Streak3Days, Streak7Days, StreakPerfectMonth:
		return ratioProgress(stats.CurrentStreak, a.Threshold)
	case AICurious, AIExpert5, AIGuru15:
		return ratioProgress(stats.AIInsightsUsedCount, a.Threshold)
	case TotalVolume10L, TotalVolume50L:
		return ratioProgress(stats.TotalWaterLoggedMl, a.Threshold)
	case AllStarCollector:
		return ratioProgress(stats.UnlockedAchievementsCount, a.Threshold)
	case GoalSetterHigh:
		// One-time check: all or nothing against the current goal.
		if goalMl >= a.Threshold {
			return Progress{Current: a.Threshold, Threshold: a.Threshold, Percent: 100}
		}
		return Progress{Current: 0, Threshold: a.Threshold, Percent: 0}
	}
	return Progress{}
}

func ratioProgress(current, threshold int) Progress {
	if threshold <= 0 {
		return Progress{Current: current}
	}
	percent := float64(current) / float64(threshold) * 100
	if percent > 100 {
		percent = 100
	}
	return Progress{Current: current, Threshold: threshold, Percent: percent}
}

// WithStatus pairs a catalog entry with its unlocked state, description and
// progress for the presentation layer.
type WithStatus struct {
	Achievement
	Description string   `json:"description"`
	Unlocked    bool     `json:"unlocked"`
	Progress    Progress `json:"progress"`
}
