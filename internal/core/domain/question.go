package domain

import (
	"errors"
	"time"
)

// QuestionStatus is the lifecycle state of a question.
type QuestionStatus string

const (
	QuestionPending  QuestionStatus = "pending"
	QuestionAnswered QuestionStatus = "answered"
)

var ErrQuestionNotFound = errors.New("question not found")

// Question is a directed message from an asking user to a specific expert.
// Status is "answered" iff Answer is non-empty. A repeated reply overwrites
// the answer text and refreshes the timestamps; there is no transition back
// to pending.
type Question struct {
	ID         string         `json:"id"`
	ExpertID   string         `json:"expert_id"`
	AskerID    string         `json:"asker_id"`
	Message    string         `json:"message"`
	Answer     string         `json:"answer,omitempty"`
	Status     QuestionStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	AnsweredAt *time.Time     `json:"answered_at,omitempty"`
}

// CanReply reports whether the actor may answer this question: the addressed
// expert, or any admin.
func (q *Question) CanReply(actor *User) bool {
	if actor == nil {
		return false
	}
	return actor.ID == q.ExpertID || actor.Role == RoleAdmin
}
