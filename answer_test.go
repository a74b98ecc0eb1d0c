package answerengine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	snippet Snippet
	err     error
}

func (s *stubSearcher) Name() string {
	return "stub-searcher"
}

func (s *stubSearcher) Search(ctx context.Context, query string) (Snippet, error) {
	return s.snippet, s.err
}

type stubGenerativeModel struct {
	text        string
	generateErr error
	evaluation  Evaluation
	scoreErr    error

	lastSnippet  Snippet
	lastQuestion Question
}

func (s *stubGenerativeModel) Name() string {
	return "stub-generative"
}

func (s *stubGenerativeModel) Generate(ctx context.Context, question Question, snippet Snippet) (string, error) {
	s.lastQuestion = question
	s.lastSnippet = snippet
	return s.text, s.generateErr
}

func (s *stubGenerativeModel) Score(ctx context.Context, question Question, generated, expected string) (Evaluation, error) {
	return s.evaluation, s.scoreErr
}

func TestAnswerEngine_Answer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		searcher    *stubSearcher
		generative  *stubGenerativeModel
		wantErr     bool
		wantText    string
		wantSnippet Snippet
	}{
		{
			name:        "answer with web context",
			content:     "What is quantum entanglement?",
			searcher:    &stubSearcher{snippet: "Quantum entanglement is a physical phenomenon."},
			generative:  &stubGenerativeModel{text: "Entanglement links particle states."},
			wantText:    "Entanglement links particle states.",
			wantSnippet: "Quantum entanglement is a physical phenomenon.",
		},
		{
			name:        "search failure degrades to empty snippet",
			content:     "What is quantum entanglement?",
			searcher:    &stubSearcher{err: fmt.Errorf("connection refused")},
			generative:  &stubGenerativeModel{text: "Entanglement links particle states."},
			wantText:    "Entanglement links particle states.",
			wantSnippet: "",
		},
		{
			name:       "blank question",
			content:    "   ",
			searcher:   &stubSearcher{},
			generative: &stubGenerativeModel{},
			wantErr:    true,
		},
		{
			name:       "generative model failure",
			content:    "What is quantum entanglement?",
			searcher:   &stubSearcher{},
			generative: &stubGenerativeModel{generateErr: fmt.Errorf("upstream error")},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ae := New(tt.searcher, tt.generative)

			answer, err := ae.Answer(context.Background(), tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantText, answer.Text)
			assert.Equal(t, tt.wantSnippet, answer.Snippet)
			assert.Equal(t, tt.content, answer.Question.Content)
			// The generative model must be called with exactly the snippet
			// the searcher produced.
			assert.Equal(t, tt.wantSnippet, tt.generative.lastSnippet)
			assert.False(t, answer.ID.IsNil())
		})
	}
}

func TestAnswerEngine_Answer_MissingAPIKeyIsDistinct(t *testing.T) {
	t.Parallel()

	ae := New(&stubSearcher{}, &stubGenerativeModel{generateErr: ErrAPIKeyMissing})

	_, err := ae.Answer(context.Background(), "any question")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAPIKeyMissing))
}
