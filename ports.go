package answerengine

import (
	"context"
)

// Searcher fetches a short snippet of web context for a query. Implementations
// are best-effort, an unreachable or misbehaving search backend must result in
// an empty snippet rather than an error that would fail the whole request.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string) (Snippet, error)
}

// GenerativeModel uses generative AI to answer a question grounded in web
// context and to evaluate a generated answer against an expected one.
type GenerativeModel interface {
	Name() string
	Generate(ctx context.Context, question Question, snippet Snippet) (string, error)
	Score(ctx context.Context, question Question, generated, expected string) (Evaluation, error)
}
