package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogHasUniqueIDs(t *testing.T) {
	seen := make(map[ID]bool)
	for _, a := range All {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
	assert.Len(t, All, 14)
}

func TestEveryEntryHasDisplayText(t *testing.T) {
	for _, a := range All {
		assert.NotEmpty(t, a.Name, "name for %s", a.ID)
		assert.NotEmpty(t, a.Icon, "icon for %s", a.ID)
		assert.NotEmpty(t, Describe(a.ID, Stats{}, 2000), "description for %s", a.ID)
	}
}

func TestQualifiesThresholds(t *testing.T) {
	tests := []struct {
		name   string
		id     ID
		stats  Stats
		goalMl int
		want   bool
	}{
		{"first sip needs any volume", FirstSip, Stats{TotalWaterLoggedMl: 1}, 2000, true},
		{"first sip at zero", FirstSip, Stats{}, 2000, false},
		{"goal getter at one", StayHydrated1, Stats{GoalsMetCount: 1}, 2000, true},
		{"consistent hydrator below five", StayHydrated5, Stats{GoalsMetCount: 4}, 2000, false},
		{"consistent hydrator at five", StayHydrated5, Stats{GoalsMetCount: 5}, 2000, true},
		{"hydration hero at ten", StayHydrated10, Stats{GoalsMetCount: 10}, 2000, true},
		{"streak three", Streak3Days, Stats{CurrentStreak: 3}, 2000, true},
		{"streak seven below", Streak7Days, Stats{CurrentStreak: 6}, 2000, false},
		{"perfect month", StreakPerfectMonth, Stats{CurrentStreak: 30}, 2000, true},
		{"ai curious", AICurious, Stats{AIInsightsUsedCount: 1}, 2000, true},
		{"ai enthusiast", AIExpert5, Stats{AIInsightsUsedCount: 5}, 2000, true},
		{"ai guru below", AIGuru15, Stats{AIInsightsUsedCount: 14}, 2000, false},
		{"high goal by goal not stats", GoalSetterHigh, Stats{}, 3000, true},
		{"high goal below threshold", GoalSetterHigh, Stats{}, 2999, false},
		{"ten liters exact", TotalVolume10L, Stats{TotalWaterLoggedMl: 10000}, 2000, true},
		{"ten liters one ml short", TotalVolume10L, Stats{TotalWaterLoggedMl: 9999}, 2000, false},
		{"fifty liters", TotalVolume50L, Stats{TotalWaterLoggedMl: 50000}, 2000, true},
		{"collector at five unlocks", AllStarCollector, Stats{UnlockedAchievementsCount: 5}, 2000, true},
		{"collector at four", AllStarCollector, Stats{UnlockedAchievementsCount: 4}, 2000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Qualifies(tt.id, tt.stats, tt.goalMl))
		})
	}
}

func TestProgressClampsAtHundred(t *testing.T) {
	a, ok := ByID(Streak3Days)
	assert.True(t, ok)

	p := ProgressFor(a, Stats{CurrentStreak: 12}, 2000)
	assert.Equal(t, 12, p.Current)
	assert.Equal(t, 3, p.Threshold)
	assert.Equal(t, 100.0, p.Percent)
}

func TestProgressPartial(t *testing.T) {
	a, _ := ByID(TotalVolume10L)

	p := ProgressFor(a, Stats{TotalWaterLoggedMl: 2500}, 2000)
	assert.Equal(t, 2500, p.Current)
	assert.Equal(t, 10000, p.Threshold)
	assert.InDelta(t, 25.0, p.Percent, 0.001)
}

func TestProgressDegenerateForOneShot(t *testing.T) {
	a, _ := ByID(FirstSip)

	assert.Equal(t, Progress{}, ProgressFor(a, Stats{TotalWaterLoggedMl: 800}, 2000))
}

func TestGoalSetterProgressIsAllOrNothing(t *testing.T) {
	a, _ := ByID(GoalSetterHigh)

	low := ProgressFor(a, Stats{}, 2000)
	assert.Equal(t, 0.0, low.Percent)

	high := ProgressFor(a, Stats{}, 3500)
	assert.Equal(t, 100.0, high.Percent)
	assert.Equal(t, 3000, high.Current)
}
