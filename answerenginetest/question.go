package answerenginetest

import (
	"time"

	"github.com/RichardKnop/answerengine"
)

type QuestionOption func(*answerengine.Question)

func WithQuestionContent(content string) QuestionOption {
	return func(q *answerengine.Question) {
		q.Content = content
	}
}

func WithQuestionCreated(created time.Time) QuestionOption {
	return func(q *answerengine.Question) {
		q.Created = created
	}
}

func (g *DataGen) Question(options ...QuestionOption) answerengine.Question {
	aQuestion := answerengine.Question{
		ID:      answerengine.NewQuestionID(),
		Content: g.Faker.Question(),
		Created: g.now,
	}

	for _, o := range options {
		o(&aQuestion)
	}

	return aQuestion
}

type AnswerOption func(*answerengine.Answer)

func WithAnswerText(text string) AnswerOption {
	return func(a *answerengine.Answer) {
		a.Text = text
	}
}

func WithAnswerSnippet(snippet answerengine.Snippet) AnswerOption {
	return func(a *answerengine.Answer) {
		a.Snippet = snippet
	}
}

func (g *DataGen) Answer(options ...AnswerOption) *answerengine.Answer {
	anAnswer := answerengine.Answer{
		ID:       answerengine.NewAnswerID(),
		Question: g.Question(),
		Text:     g.Paragraph(1, 3, 12, " "),
		Snippet:  answerengine.Snippet(g.Sentence(10)),
		Created:  g.now,
	}

	for _, o := range options {
		o(&anAnswer)
	}

	return &anAnswer
}
