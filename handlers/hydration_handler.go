package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"hydrateWiseAPI/services"
)

type HydrationHandler struct {
	hydrationService *services.HydrationService
}

func NewHydrationHandler(hydrationService *services.HydrationService) *HydrationHandler {
	return &HydrationHandler{
		hydrationService: hydrationService,
	}
}

// GetHydration returns the full engine snapshot the UI renders from.
func (h *HydrationHandler) GetHydration(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.hydrationService.Snapshot())
}

func (h *HydrationHandler) LogWater(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AmountMl *int `json:"amount_ml"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AmountMl == nil {
		respondWithError(w, http.StatusBadRequest, "Please select or enter a valid amount of water in ml")
		return
	}

	if err := h.hydrationService.LogWater(*req.AmountMl); err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			respondWithError(w, http.StatusBadRequest, "Please select or enter a valid amount of water in ml")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to log water")
		return
	}

	respondWithJSON(w, http.StatusOK, h.hydrationService.Snapshot())
}

func (h *HydrationHandler) SetGoal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GoalMl *int `json:"goal_ml"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GoalMl == nil {
		respondWithError(w, http.StatusBadRequest, "Please enter a valid daily goal in ml")
		return
	}

	applied := h.hydrationService.SetDailyGoal(*req.GoalMl)

	respondWithJSON(w, http.StatusOK, map[string]int{"goal_ml": applied})
}

func (h *HydrationHandler) ResetIntake(w http.ResponseWriter, r *http.Request) {
	h.hydrationService.ResetIntake()
	respondWithJSON(w, http.StatusOK, h.hydrationService.Snapshot())
}

// GetAchievements returns the catalog with unlocked status and progress for
// the achievements page.
func (h *HydrationHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	snap := h.hydrationService.Snapshot()
	respondWithJSON(w, http.StatusOK, snap.Achievements)
}

func (h *HydrationHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.hydrationService.Score())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal JSON response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
