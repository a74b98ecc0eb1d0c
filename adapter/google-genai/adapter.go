package googlegenai

import (
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Adapter implements the generative model port on top of the Gemini API.
// A nil client means no API key was configured, every call then returns
// answerengine.ErrAPIKeyMissing so the server can keep serving the UI and
// health endpoint.
type Adapter struct {
	client          *genai.Client
	generativeModel string
	logger          *zap.Logger
}

type Option func(*Adapter)

func WithGenerativeModel(model string) Option {
	return func(a *Adapter) {
		a.generativeModel = model
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

const (
	defaultGenerativeModel = "gemini-2.0-flash"
)

func New(client *genai.Client, options ...Option) *Adapter {
	a := &Adapter{
		client:          client,
		generativeModel: defaultGenerativeModel,
		logger:          zap.NewNop(),
	}

	for _, o := range options {
		o(a)
	}

	a.logger.Sugar().With(
		"generative model", a.generativeModel,
		"configured", a.client != nil,
	).Info("init google genai adapter")

	return a
}

const adapterName = "google-genai"

func (a *Adapter) Name() string {
	return adapterName
}

func (a *Adapter) Configured() bool {
	return a.client != nil
}
