package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"hydrateWiseAPI/internal/achievement"
	"hydrateWiseAPI/internal/dates"
	"hydrateWiseAPI/internal/hydration"
	"hydrateWiseAPI/internal/store"
	"hydrateWiseAPI/services"
)

type staticClock struct{ now time.Time }

func (c staticClock) Now() time.Time { return c.now }

type okGenerator struct{}

func (okGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "Drink steadily through the day.", nil
}

func newTestRouter(t *testing.T) (*mux.Router, *services.HydrationService) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	var clock dates.Clock = staticClock{now: time.Date(2024, 5, 17, 12, 0, 0, 0, time.Local)}
	notificationService := services.NewNotificationService()
	hydrationService := services.NewHydrationService(st, clock, notificationService, 2000)
	hydrationService.Initialize()
	insightsService := services.NewInsightsService(okGenerator{})
	reminderService := services.NewReminderService(notificationService, clock, time.Hour, 2*time.Minute)

	hydrationHandler := NewHydrationHandler(hydrationService)
	insightsHandler := NewInsightsHandler(insightsService, hydrationService)
	notificationHandler := NewNotificationHandler(notificationService)
	presenceHandler := NewPresenceHandler(reminderService)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/hydration", hydrationHandler.GetHydration).Methods("GET")
	api.HandleFunc("/hydration/log", hydrationHandler.LogWater).Methods("POST")
	api.HandleFunc("/hydration/goal", hydrationHandler.SetGoal).Methods("PUT")
	api.HandleFunc("/hydration/reset", hydrationHandler.ResetIntake).Methods("POST")
	api.HandleFunc("/hydration/score", hydrationHandler.GetScore).Methods("GET")
	api.HandleFunc("/achievements", hydrationHandler.GetAchievements).Methods("GET")
	api.HandleFunc("/insights", insightsHandler.GenerateInsights).Methods("POST")
	api.HandleFunc("/notifications", notificationHandler.GetNotifications).Methods("GET")
	api.HandleFunc("/presence/heartbeat", presenceHandler.Heartbeat).Methods("POST")

	return r, hydrationService
}

func doJSON(t *testing.T, r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLogWaterFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/hydration/log", `{"amount_ml": 500}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var snap hydration.Snapshot
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 500, snap.CurrentIntakeMl)
	assert.Equal(t, 500, snap.AchievementStats.TotalWaterLoggedMl)
	assert.Contains(t, snap.UnlockedAchievementIDs, achievement.FirstSip)
}

func TestLogWaterRejectsMissingAndZeroAmounts(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, body := range []string{`{}`, `{"amount_ml": 0}`, `{"amount_ml": "lots"}`, `not json`} {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/hydration/log", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Contains(t, rec.Body.String(), "valid amount")
	}
}

func TestSetGoalClampsAndEchoes(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/v1/hydration/goal", `{"goal_ml": 200}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"goal_ml": 500}`, rec.Body.String())
}

func TestResetEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/v1/hydration/log", `{"amount_ml": 900}`)
	rec := doJSON(t, r, http.MethodPost, "/api/v1/hydration/reset", ``)
	assert.Equal(t, http.StatusOK, rec.Code)

	var snap hydration.Snapshot
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 0, snap.CurrentIntakeMl)
	assert.Equal(t, 900, snap.AchievementStats.TotalWaterLoggedMl)
}

func TestAchievementsEndpointListsCatalog(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/achievements", ``)
	assert.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 14)
	for _, entry := range list {
		assert.NotEmpty(t, entry["description"])
	}
}

func TestInsightsSuccessCreditsAIUsage(t *testing.T) {
	r, svc := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/insights",
		`{"activityLevel":"active","weather":"Hot and sunny","sleepDuration":5,"weight":70}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var out services.InsightsOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 92, out.SuggestedIntakeOz)
	assert.Equal(t, "Drink steadily through the day.", out.HydrationMessage)

	assert.Equal(t, 1, svc.Snapshot().AchievementStats.AIInsightsUsedCount)
}

func TestInsightsValidationErrorDoesNotCredit(t *testing.T) {
	r, svc := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/insights",
		`{"activityLevel":"athletic","weather":"mild","sleepDuration":8,"weight":70}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 0, svc.Snapshot().AchievementStats.AIInsightsUsedCount)
}

func TestNotificationsSurfaceUnlockToasts(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/v1/hydration/log", `{"amount_ml": 2500}`)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/notifications", ``)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Achievement Unlocked")
}

func TestHeartbeatEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/presence/heartbeat", ``)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"visible": true}`, rec.Body.String())
}
