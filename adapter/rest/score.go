package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RichardKnop/answerengine"
)

type ScoreRequest struct {
	Query          string `json:"query"`
	AiAnswer       string `json:"ai_answer"`
	ExpectedAnswer string `json:"expected_answer"`
}

type ScoreResponse struct {
	TotalScore      int    `json:"total_score"`
	FactualAccuracy int    `json:"factual_accuracy"`
	Completeness    int    `json:"completeness"`
	Relevance       int    `json:"relevance"`
	Clarity         int    `json:"clarity"`
	Verdict         string `json:"verdict"`
	Feedback        string `json:"feedback"`
	MatchesExpected bool   `json:"matches_expected"`
}

// Score a generated answer against the user's expected answer
// (POST /api/score)
func (a *Adapter) scoreHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), scoreTimeout)
	defer cancel()

	apiRequest := ScoreRequest{}
	if err := readRequestJSON(r, &apiRequest); err != nil {
		renderJSONError(w, http.StatusBadRequest, err)
		return
	}

	params := answerengine.ScoreParams{
		Question: apiRequest.Query,
		Answer:   apiRequest.AiAnswer,
		Expected: apiRequest.ExpectedAnswer,
	}
	if err := params.Valid(); err != nil {
		renderJSONError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.engine.Score(ctx, params)
	if err != nil {
		a.renderEngineError(w, fmt.Errorf("error scoring answer: %w", err))
		return
	}

	renderJSON(w, mapScoreResult(result))
}

func mapScoreResult(result *answerengine.ScoreResult) ScoreResponse {
	return ScoreResponse{
		TotalScore:      result.Total,
		FactualAccuracy: result.Rubric.FactualAccuracy,
		Completeness:    result.Rubric.Completeness,
		Relevance:       result.Rubric.Relevance,
		Clarity:         result.Rubric.Clarity,
		Verdict:         string(result.Verdict),
		Feedback:        result.Feedback,
		MatchesExpected: result.MatchesExpected,
	}
}
