package rest

import (
	"net/http"
)

type HealthResponse struct {
	Status           string `json:"status"`
	GeminiConfigured bool   `json:"gemini_configured"`
}

// Health check, reports whether the Gemini API key is configured
// (GET /api/health)
func (a *Adapter) healthHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, HealthResponse{
		Status:           "ok",
		GeminiConfigured: a.geminiConfigured,
	})
}
