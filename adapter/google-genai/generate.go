package googlegenai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/RichardKnop/answerengine"
)

const (
	generateTemperature     = 0.7
	generateMaxOutputTokens = 1024
)

func (a *Adapter) Generate(ctx context.Context, question answerengine.Question, snippet answerengine.Snippet) (string, error) {
	if a.client == nil {
		return "", answerengine.ErrAPIKeyMissing
	}

	webContext := string(snippet)
	if snippet.Empty() {
		webContext = noContextPlaceholder
	}

	prompt := fmt.Sprintf(answerTemplate, webContext, question.Content)

	a.logger.Sugar().With(
		"question_id", question.ID.String(),
	).Info("generating answer")

	resp, err := a.client.Models.GenerateContent(
		ctx,
		a.generativeModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](generateTemperature),
			MaxOutputTokens: generateMaxOutputTokens,
			ThinkingConfig: &genai.ThinkingConfig{
				ThinkingBudget: nil, // Disables thinking
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("calling generative model: %w", err)
	}
	if len(resp.Candidates) != 1 {
		return "", fmt.Errorf("got %v candidates, expected 1", len(resp.Candidates))
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no response from generative model")
	}

	return text, nil
}
