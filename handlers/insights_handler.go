package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"hydrateWiseAPI/services"
)

type InsightsHandler struct {
	insightsService  *services.InsightsService
	hydrationService *services.HydrationService
}

func NewInsightsHandler(insightsService *services.InsightsService, hydrationService *services.HydrationService) *InsightsHandler {
	return &InsightsHandler{
		insightsService:  insightsService,
		hydrationService: hydrationService,
	}
}

// GenerateInsights runs the personalized-insights flow. The AI usage counter
// is credited only after the collaborator succeeds; a failed generation
// leaves the engine's stats untouched.
func (h *InsightsHandler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var req services.InsightsInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.insightsService.GenerateInsights(ctx, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("GenerateInsights: %v", err)
		respondWithError(w, http.StatusBadGateway, "Could not fetch AI insights. Please try again.")
		return
	}

	h.hydrationService.IncrementAIInsightsUsed()

	respondWithJSON(w, http.StatusOK, out)
}

func (h *InsightsHandler) DailyTip(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var req services.DailyTipInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.insightsService.DailyTip(ctx, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("DailyTip: %v", err)
		respondWithError(w, http.StatusBadGateway, "Could not fetch the daily tip. Please try again.")
		return
	}

	respondWithJSON(w, http.StatusOK, out)
}

