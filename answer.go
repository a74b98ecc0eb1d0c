package answerengine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type AnswerID struct{ uuid.UUID }

func NewAnswerID() AnswerID {
	return AnswerID{uuid.Must(uuid.NewV4())}
}

type Answer struct {
	ID       AnswerID
	Question Question
	Text     string
	Snippet  Snippet
	Created  time.Time
}

// Answer runs a question through the full pipeline: fetch web context,
// then generate an answer grounded in it. A failing searcher degrades to
// an empty snippet, only the generative call can fail the request.
func (ae *answerEngine) Answer(ctx context.Context, content string) (*Answer, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("question content is required")
	}

	question := Question{
		ID:      NewQuestionID(),
		Content: content,
		Created: ae.now(),
	}

	ae.logger.Sugar().With(
		"question_id", question.ID.String(),
		"searcher", ae.searcher.Name(),
	).Info("received question")

	snippet, err := ae.searcher.Search(ctx, question.Content)
	if err != nil {
		ae.logger.Sugar().With("error", err).Warn("web search failed, continuing without context")
		snippet = ""
	}

	text, err := ae.generative.Generate(ctx, question, snippet)
	if err != nil {
		return nil, fmt.Errorf("calling generative model: %w", err)
	}

	return &Answer{
		ID:       NewAnswerID(),
		Question: question,
		Text:     text,
		Snippet:  snippet,
		Created:  ae.now(),
	}, nil
}
