package answerenginetest

import (
	"github.com/RichardKnop/answerengine"
)

type ScoreResultOption func(*answerengine.ScoreResult)

func WithRubric(rubric answerengine.Rubric) ScoreResultOption {
	return func(r *answerengine.ScoreResult) {
		r.Rubric = rubric
	}
}

func WithFeedback(feedback string) ScoreResultOption {
	return func(r *answerengine.ScoreResult) {
		r.Feedback = feedback
	}
}

func WithMatchesExpected(matches bool) ScoreResultOption {
	return func(r *answerengine.ScoreResult) {
		r.MatchesExpected = matches
	}
}

func (g *DataGen) Rubric() answerengine.Rubric {
	return answerengine.Rubric{
		FactualAccuracy: g.Number(0, 25),
		Completeness:    g.Number(0, 25),
		Relevance:       g.Number(0, 25),
		Clarity:         g.Number(0, 25),
	}
}

// ScoreResult generates a consistent score result, the total and verdict are
// always derived from the rubric with the default thresholds.
func (g *DataGen) ScoreResult(options ...ScoreResultOption) *answerengine.ScoreResult {
	result := answerengine.ScoreResult{
		ID:              answerengine.NewScoreID(),
		Rubric:          g.Rubric(),
		Feedback:        g.Sentence(8),
		MatchesExpected: g.Bool(),
		Created:         g.now,
	}

	for _, o := range options {
		o(&result)
	}

	result.Rubric = result.Rubric.Clamp()
	result.Total = result.Rubric.Total()
	result.Verdict = answerengine.DefaultThresholds.Verdict(result.Total)

	return &result
}
