package answerengine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Verdict string

const (
	VerdictExcellent  Verdict = "Excellent"
	VerdictGood       Verdict = "Good"
	VerdictAcceptable Verdict = "Acceptable"
	VerdictPoor       Verdict = "Poor"
)

// Thresholds are the minimum total scores for each verdict. The cut points
// are product copy rather than invariants, so they are configurable via
// WithThresholds.
type Thresholds struct {
	Excellent  int
	Good       int
	Acceptable int
}

var DefaultThresholds = Thresholds{
	Excellent:  90,
	Good:       70,
	Acceptable: 50,
}

func (t Thresholds) Verdict(total int) Verdict {
	switch {
	case total >= t.Excellent:
		return VerdictExcellent
	case total >= t.Good:
		return VerdictGood
	case total >= t.Acceptable:
		return VerdictAcceptable
	default:
		return VerdictPoor
	}
}

const maxDimensionScore = 25

// Rubric holds the four scored dimensions, each 0-25.
type Rubric struct {
	FactualAccuracy int `json:"factual_accuracy"`
	Completeness    int `json:"completeness"`
	Relevance       int `json:"relevance"`
	Clarity         int `json:"clarity"`
}

// Clamp forces every dimension into the [0, 25] range. Models occasionally
// return out-of-range values despite the prompt.
func (r Rubric) Clamp() Rubric {
	r.FactualAccuracy = clamp(r.FactualAccuracy, 0, maxDimensionScore)
	r.Completeness = clamp(r.Completeness, 0, maxDimensionScore)
	r.Relevance = clamp(r.Relevance, 0, maxDimensionScore)
	r.Clarity = clamp(r.Clarity, 0, maxDimensionScore)
	return r
}

func (r Rubric) Total() int {
	return r.FactualAccuracy + r.Completeness + r.Relevance + r.Clarity
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Evaluation is what a generative model adapter returns from a scoring call,
// before the engine derives totals and a verdict.
type Evaluation struct {
	Rubric          Rubric
	Feedback        string
	MatchesExpected bool
}

// DefaultEvaluation is the degraded mid-scale evaluation used when the model
// response could not be parsed.
func DefaultEvaluation() Evaluation {
	return Evaluation{
		Rubric: Rubric{
			FactualAccuracy: 13,
			Completeness:    13,
			Relevance:       12,
			Clarity:         12,
		},
		Feedback:        "Score could not be parsed from the model response. Try again.",
		MatchesExpected: false,
	}
}

type ScoreID struct{ uuid.UUID }

func NewScoreID() ScoreID {
	return ScoreID{uuid.Must(uuid.NewV4())}
}

type ScoreParams struct {
	Question string
	Answer   string
	Expected string
}

func (p ScoreParams) Valid() error {
	if strings.TrimSpace(p.Question) == "" {
		return fmt.Errorf("question is required")
	}
	if strings.TrimSpace(p.Answer) == "" {
		return fmt.Errorf("answer is required")
	}
	if strings.TrimSpace(p.Expected) == "" {
		return fmt.Errorf("expected answer is required")
	}
	return nil
}

type ScoreResult struct {
	ID              ScoreID
	Rubric          Rubric
	Total           int
	Verdict         Verdict
	Feedback        string
	MatchesExpected bool
	Created         time.Time
}

// Score compares a generated answer with the expected answer using the
// generative model and a fixed four-dimension rubric. The total and verdict
// are always derived server-side from the clamped sub-scores so that the
// documented cut points hold regardless of what the model claims.
func (ae *answerEngine) Score(ctx context.Context, params ScoreParams) (*ScoreResult, error) {
	if err := params.Valid(); err != nil {
		return nil, err
	}

	question := Question{
		ID:      NewQuestionID(),
		Content: strings.TrimSpace(params.Question),
		Created: ae.now(),
	}

	evaluation, err := ae.generative.Score(ctx, question, params.Answer, params.Expected)
	if err != nil {
		if !errors.Is(err, ErrUnparsableScore) {
			return nil, fmt.Errorf("calling generative model: %w", err)
		}
		ae.logger.Sugar().With("error", err).Warn("degrading to default evaluation")
		evaluation = DefaultEvaluation()
	}

	rubric := evaluation.Rubric.Clamp()
	total := rubric.Total()

	return &ScoreResult{
		ID:              NewScoreID(),
		Rubric:          rubric,
		Total:           total,
		Verdict:         ae.thresholds.Verdict(total),
		Feedback:        evaluation.Feedback,
		MatchesExpected: evaluation.MatchesExpected,
		Created:         ae.now(),
	}, nil
}
