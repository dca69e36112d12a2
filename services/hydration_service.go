package services

import (
	"errors"
	"log"
	"sort"
	"sync"

	"hydrateWiseAPI/internal/achievement"
	"hydrateWiseAPI/internal/dates"
	"hydrateWiseAPI/internal/hydration"
	"hydrateWiseAPI/internal/notification"
	"hydrateWiseAPI/internal/store"
	"hydrateWiseAPI/middleware"
	"hydrateWiseAPI/utils"
)

// Persisted state layout. Key names predate this service and must not
// change, or existing installs lose their history.
const (
	goalKey                 = "hydratewise_hydrationGoal"
	intakeKey               = "hydratewise_hydrationIntake"
	lastLogDateKey          = "hydratewise_hydrationLastLogDate"
	unlockedAchievementsKey = "hydratewise_unlockedAchievements"
	achievementStatsKey     = "hydratewise_achievementStats"
)

// ErrInvalidAmount rejects a zero log amount at the boundary. Negative
// amounts are valid (removal is a correction), zero is meaningless.
var ErrInvalidAmount = errors.New("log amount must be a non-zero number of ml")

// Notifier receives in-app toasts. Achievement unlocks, reminders and reset
// confirmations all flow through it.
type Notifier interface {
	Notify(t notification.Type, title, message string)
}

// HydrationService owns daily goal, current intake, achievement stats and
// the unlocked-achievement set. All mutations persist through the store and
// re-evaluate the achievement catalog before returning. Operations are
// serialized by a mutex, so each one fully persists and evaluates before the
// next begins.
type HydrationService struct {
	store    *store.Store
	clock    dates.Clock
	notifier Notifier

	defaultGoalMl int

	mu              sync.Mutex
	dailyGoalMl     int
	currentIntakeMl int
	intakeDate      string
	stats           achievement.Stats
	unlocked        map[achievement.ID]bool
	initialized     bool
}

func NewHydrationService(st *store.Store, clock dates.Clock, notifier Notifier, defaultGoalMl int) *HydrationService {
	if defaultGoalMl <= 0 {
		defaultGoalMl = hydration.DefaultGoalMl
	}
	return &HydrationService{
		store:         st,
		clock:         clock,
		notifier:      notifier,
		defaultGoalMl: defaultGoalMl,
		dailyGoalMl:   defaultGoalMl,
		unlocked:      make(map[achievement.ID]bool),
	}
}

// Initialize loads persisted state, performs the day rollover if the last
// intake log is from a previous day, and runs an achievement evaluation so
// retroactive unlocks (e.g. a high goal set by an older build) are granted.
func (s *HydrationService) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := dates.Today(s.clock)

	s.dailyGoalMl = s.store.GetNumber(goalKey, s.defaultGoalMl)

	storedIntake := s.store.GetNumber(intakeKey, 0)
	lastLogDate := s.store.GetString(lastLogDateKey, "")
	if lastLogDate == today {
		s.currentIntakeMl = storedIntake
	} else {
		// Day rollover: today starts from zero.
		s.currentIntakeMl = 0
		s.store.SetNumber(intakeKey, 0)
		s.store.Set(lastLogDateKey, today)
	}
	s.intakeDate = today

	s.stats = store.GetJSON(s.store, achievementStatsKey, achievement.Stats{})

	ids := store.GetJSON(s.store, unlockedAchievementsKey, []achievement.ID{})
	s.unlocked = make(map[achievement.ID]bool, len(ids))
	for _, id := range ids {
		s.unlocked[id] = true
	}
	s.stats.UnlockedAchievementsCount = len(s.unlocked)

	s.initialized = true
	s.evaluateAchievements()

	log.Printf("HydrationService: initialized (goal=%dml, intake=%dml, streak=%d, unlocked=%d)",
		s.dailyGoalMl, s.currentIntakeMl, s.stats.CurrentStreak, len(s.unlocked))
}

// LogWater adjusts today's intake by amountMl. Positive amounts feed the
// achievement stats (total volume, streak, goal-met); negative amounts only
// correct the intake figure, clamped at zero.
func (s *HydrationService) LogWater(amountMl int) error {
	if amountMl == 0 {
		return ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := dates.Today(s.clock)
	yesterday := dates.Yesterday(s.clock)

	// The process outlives the day boundary, so the rollover has to happen
	// on the first mutation of a new day, not just on startup.
	if s.intakeDate != today {
		s.currentIntakeMl = 0
		s.intakeDate = today
	}

	if amountMl > 0 {
		s.stats.TotalWaterLoggedMl += amountMl

		switch s.stats.LastLogDateISO {
		case today:
			// Already logged today; streak unchanged.
		case yesterday:
			s.stats.CurrentStreak++
		default:
			s.stats.CurrentStreak = 1
		}
		s.stats.LastLogDateISO = today

		middleware.AddWaterLogged(amountMl)
	}

	newIntake := s.currentIntakeMl + amountMl
	if newIntake < 0 {
		newIntake = 0
	}
	s.currentIntakeMl = newIntake
	s.store.SetNumber(intakeKey, newIntake)
	s.store.Set(lastLogDateKey, today)

	if amountMl > 0 && newIntake >= s.dailyGoalMl && s.stats.LastGoalMetDateISO != today {
		s.stats.GoalsMetCount++
		s.stats.LastGoalMetDateISO = today
	}

	s.store.SetJSON(achievementStatsKey, s.stats)
	s.evaluateAchievements()
	return nil
}

// SetDailyGoal persists a new goal, clamped to the minimum, and returns the
// applied value.
func (s *HydrationService) SetDailyGoal(goalMl int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if goalMl < hydration.MinGoalMl {
		goalMl = hydration.MinGoalMl
	}
	s.dailyGoalMl = goalMl
	s.store.SetNumber(goalKey, goalMl)

	s.evaluateAchievements()
	return goalMl
}

// ResetIntake zeroes today's intake. A manual reset is not a day boundary:
// streak, goal-met count and volume totals are untouched.
func (s *HydrationService) ResetIntake() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentIntakeMl = 0
	s.intakeDate = dates.Today(s.clock)
	s.store.SetNumber(intakeKey, 0)
	s.store.Set(lastLogDateKey, s.intakeDate)

	s.evaluateAchievements()

	s.notifier.Notify(notification.TypeIntakeReset,
		"Intake Reset", "Your water intake for today has been reset to 0ml.")
}

// IncrementAIInsightsUsed credits one successful AI insight generation.
func (s *HydrationService) IncrementAIInsightsUsed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.AIInsightsUsedCount++
	s.store.SetJSON(achievementStatsKey, s.stats)
	s.evaluateAchievements()
}

// Snapshot returns the state consumed by the presentation layer.
func (s *HydrationService) Snapshot() hydration.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := hydration.Snapshot{
		DailyGoalMl:      s.dailyGoalMl,
		CurrentIntakeMl:  s.currentIntakeMl,
		Initialized:      s.initialized,
		AchievementStats: s.stats,
	}
	for _, a := range achievement.All {
		if s.unlocked[a.ID] {
			snap.UnlockedAchievementIDs = append(snap.UnlockedAchievementIDs, a.ID)
		}
		snap.Achievements = append(snap.Achievements, achievement.WithStatus{
			Achievement: a,
			Description: achievement.Describe(a.ID, s.stats, s.dailyGoalMl),
			Unlocked:    s.unlocked[a.ID],
			Progress:    achievement.ProgressFor(a, s.stats, s.dailyGoalMl),
		})
	}
	return snap
}

// Score computes the hydration habit score for the stats card.
func (s *HydrationService) Score() hydration.Score {
	s.mu.Lock()
	defer s.mu.Unlock()

	return hydration.Score{
		Score:         utils.CalculateHydrationScore(s.stats.CurrentStreak, s.stats.GoalsMetCount, len(s.unlocked)),
		CurrentStreak: s.stats.CurrentStreak,
		GoalsMet:      s.stats.GoalsMetCount,
		Achievements:  len(s.unlocked),
	}
}

// evaluateAchievements runs the two-stage unlock evaluation. Stage one
// checks every primary predicate against current stats; stage two checks
// the meta entry against the set size including stage one's batch. Toasts
// are emitted only after all state is final and persisted, one per newly
// unlocked achievement. Callers must hold s.mu.
func (s *HydrationService) evaluateAchievements() {
	var newly []achievement.Achievement

	for _, a := range achievement.All {
		if a.ID == achievement.AllStarCollector || s.unlocked[a.ID] {
			continue
		}
		if achievement.Qualifies(a.ID, s.stats, s.dailyGoalMl) {
			s.unlocked[a.ID] = true
			newly = append(newly, a)
		}
	}
	s.stats.UnlockedAchievementsCount = len(s.unlocked)

	// Meta pass: sees the batch above.
	if !s.unlocked[achievement.AllStarCollector] &&
		achievement.Qualifies(achievement.AllStarCollector, s.stats, s.dailyGoalMl) {
		s.unlocked[achievement.AllStarCollector] = true
		s.stats.UnlockedAchievementsCount = len(s.unlocked)
		if meta, ok := achievement.ByID(achievement.AllStarCollector); ok {
			newly = append(newly, meta)
		}
	}

	if len(newly) == 0 {
		return
	}

	s.store.SetJSON(unlockedAchievementsKey, s.unlockedIDs())
	s.store.SetJSON(achievementStatsKey, s.stats)

	for _, a := range newly {
		middleware.IncAchievementUnlocked()
		log.Printf("HydrationService: achievement unlocked: %s", a.ID)
		s.notifier.Notify(notification.TypeAchievement,
			"🏆 Achievement Unlocked!", "You've earned: "+a.Name)
	}
}

// unlockedIDs returns the unlocked set in catalog order so the persisted
// array is deterministic. Ids persisted by another build that are no longer
// in the catalog are kept: the set never shrinks.
func (s *HydrationService) unlockedIDs() []achievement.ID {
	ids := make([]achievement.ID, 0, len(s.unlocked))
	for _, a := range achievement.All {
		if s.unlocked[a.ID] {
			ids = append(ids, a.ID)
		}
	}
	var unknown []achievement.ID
	for id := range s.unlocked {
		if _, ok := achievement.ByID(id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return append(ids, unknown...)
}
