package googlegenai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/RichardKnop/answerengine"
)

var scoreSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"factual_accuracy": {Type: genai.TypeInteger},
		"completeness":     {Type: genai.TypeInteger},
		"relevance":        {Type: genai.TypeInteger},
		"clarity":          {Type: genai.TypeInteger},
		"feedback":         {Type: genai.TypeString},
		"matches_expected": {Type: genai.TypeBoolean},
	},
}

type scorePayload struct {
	FactualAccuracy int    `json:"factual_accuracy"`
	Completeness    int    `json:"completeness"`
	Relevance       int    `json:"relevance"`
	Clarity         int    `json:"clarity"`
	Feedback        string `json:"feedback"`
	MatchesExpected bool   `json:"matches_expected"`
}

func (a *Adapter) Score(ctx context.Context, question answerengine.Question, generated, expected string) (answerengine.Evaluation, error) {
	if a.client == nil {
		return answerengine.Evaluation{}, answerengine.ErrAPIKeyMissing
	}

	prompt := fmt.Sprintf(scoreTemplate, question.Content, generated, expected)

	a.logger.Sugar().With(
		"question_id", question.ID.String(),
	).Info("scoring answer")

	resp, err := a.client.Models.GenerateContent(
		ctx,
		a.generativeModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   scoreSchema,
			ThinkingConfig: &genai.ThinkingConfig{
				ThinkingBudget: nil, // Disables thinking
			},
		},
	)
	if err != nil {
		return answerengine.Evaluation{}, fmt.Errorf("calling generative model: %w", err)
	}
	if len(resp.Candidates) != 1 {
		return answerengine.Evaluation{}, fmt.Errorf("got %v candidates, expected 1", len(resp.Candidates))
	}

	payload, err := decodeScorePayload(resp.Text())
	if err != nil {
		a.logger.Sugar().With("error", err, "response", resp.Text()).Warn("unparsable score response")
		return answerengine.Evaluation{}, fmt.Errorf("%w: %v", answerengine.ErrUnparsableScore, err)
	}

	return answerengine.Evaluation{
		Rubric: answerengine.Rubric{
			FactualAccuracy: payload.FactualAccuracy,
			Completeness:    payload.Completeness,
			Relevance:       payload.Relevance,
			Clarity:         payload.Clarity,
		},
		Feedback:        payload.Feedback,
		MatchesExpected: payload.MatchesExpected,
	}, nil
}

// decodeScorePayload unmarshals the structured scoring response. Models
// sometimes wrap the JSON in markdown fences despite the response schema,
// so a fenced response gets a second chance after stripping.
func decodeScorePayload(raw string) (scorePayload, error) {
	payload := scorePayload{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		if err2 := json.Unmarshal([]byte(stripFences(raw)), &payload); err2 != nil {
			return scorePayload{}, err
		}
	}
	return payload, nil
}

func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
