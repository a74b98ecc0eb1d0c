package answerengine

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrAPIKeyMissing is returned by LLM-backed operations when no Gemini
	// API key was configured. Both the answer and the score path report it
	// so callers see a single, well-defined configuration error.
	ErrAPIKeyMissing = errors.New("GEMINI_API_KEY is not set, configure it in the environment and restart")

	// ErrUnparsableScore is returned by a generative model adapter when the
	// scoring response could not be decoded as the expected JSON shape.
	ErrUnparsableScore = errors.New("could not parse score from model response")
)

type clock func() time.Time

type answerEngine struct {
	searcher   Searcher
	generative GenerativeModel
	thresholds Thresholds
	logger     *zap.Logger
	now        clock
}

type Option func(*answerEngine)

func WithThresholds(thresholds Thresholds) Option {
	return func(ae *answerEngine) {
		ae.thresholds = thresholds
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(ae *answerEngine) {
		ae.logger = logger
	}
}

func New(searcher Searcher, gm GenerativeModel, options ...Option) *answerEngine {
	ae := &answerEngine{
		searcher:   searcher,
		generative: gm,
		thresholds: DefaultThresholds,
		logger:     zap.NewNop(),
		now:        func() time.Time { return time.Now().UTC() },
	}

	for _, o := range options {
		o(ae)
	}

	return ae
}
