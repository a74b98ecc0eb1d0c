package rest

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/RichardKnop/answerengine"
)

type AnswerEngine interface {
	Answer(ctx context.Context, content string) (*answerengine.Answer, error)
	Score(ctx context.Context, params answerengine.ScoreParams) (*answerengine.ScoreResult, error)
}

type Adapter struct {
	engine           AnswerEngine
	geminiConfigured bool
	logger           *zap.Logger
}

type Option func(*Adapter)

func WithGeminiConfigured(configured bool) Option {
	return func(a *Adapter) {
		a.geminiConfigured = configured
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

func New(engine AnswerEngine, options ...Option) *Adapter {
	a := &Adapter{
		engine: engine,
		logger: zap.NewNop(),
	}

	for _, o := range options {
		o(a)
	}

	return a
}

// The search route budget covers two sequential upstream calls (web search
// then generation, optionally a scoring call on top), the score route one.
const (
	searchTimeout = 75 * time.Second
	scoreTimeout  = 35 * time.Second
)

func (a *Adapter) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", a.indexHandler)
	mux.HandleFunc("GET /api/health", a.healthHandler)
	mux.HandleFunc("POST /api/search", a.searchHandler)
	mux.HandleFunc("POST /api/score", a.scoreHandler)
}
