package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/RichardKnop/answerengine"
)

type SearchRequest struct {
	Query          string `json:"query"`
	ExpectedAnswer string `json:"expected_answer,omitempty"`
}

type SearchResponse struct {
	Query      string         `json:"query"`
	AiAnswer   string         `json:"ai_answer"`
	WebContext string         `json:"web_context"`
	Score      *ScoreResponse `json:"score,omitempty"`
}

// Answer a question using web search and the generative model
// (POST /api/search)
func (a *Adapter) searchHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), searchTimeout)
	defer cancel()

	apiRequest := SearchRequest{}
	if err := readRequestJSON(r, &apiRequest); err != nil {
		renderJSONError(w, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(apiRequest.Query) == "" {
		renderJSONError(w, http.StatusBadRequest, fmt.Errorf("query is required"))
		return
	}

	answer, err := a.engine.Answer(ctx, apiRequest.Query)
	if err != nil {
		a.renderEngineError(w, fmt.Errorf("error generating answer: %w", err))
		return
	}

	apiResponse := SearchResponse{
		Query:      answer.Question.Content,
		AiAnswer:   answer.Text,
		WebContext: string(answer.Snippet),
	}

	// An expected answer in the request means the caller wants the generated
	// answer scored in the same round trip.
	if strings.TrimSpace(apiRequest.ExpectedAnswer) != "" {
		result, err := a.engine.Score(ctx, answerengine.ScoreParams{
			Question: answer.Question.Content,
			Answer:   answer.Text,
			Expected: apiRequest.ExpectedAnswer,
		})
		if err != nil {
			a.renderEngineError(w, fmt.Errorf("error scoring answer: %w", err))
			return
		}
		scoreResponse := mapScoreResult(result)
		apiResponse.Score = &scoreResponse
	}

	renderJSON(w, apiResponse)
}

func (a *Adapter) renderEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, answerengine.ErrAPIKeyMissing) {
		renderJSONError(w, http.StatusServiceUnavailable, answerengine.ErrAPIKeyMissing)
		return
	}
	a.logger.Sugar().With("error", err).Error("request failed")
	renderJSONError(w, http.StatusInternalServerError, err)
}
