package answerengine

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Snippet is a short piece of web context extracted from search results.
// It may be empty when the search yields nothing.
type Snippet string

func (s Snippet) Empty() bool {
	return s == ""
}

type QuestionID struct{ uuid.UUID }

func NewQuestionID() QuestionID {
	return QuestionID{uuid.Must(uuid.NewV4())}
}

type Question struct {
	ID      QuestionID
	Content string
	Created time.Time
}

func (q Question) String() string {
	return q.Content
}
