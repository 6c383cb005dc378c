package ports

import (
	"context"
	"time"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

// QuestionRepository defines persistence operations for questions.
type QuestionRepository interface {
	Create(ctx context.Context, q *domain.Question) (*domain.Question, error)
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	ListByAsker(ctx context.Context, askerID string, limit int64) ([]*domain.Question, error)
	ListByExpert(ctx context.Context, expertID string, limit int64) ([]*domain.Question, error)
	// SetAnswer writes the answer, flips status to answered and stamps
	// answered_at. It returns the updated question.
	SetAnswer(ctx context.Context, id, answer string, answeredAt time.Time) (*domain.Question, error)
}

// QuestionWithNames decorates a question with the display names the lists
// need, resolved from the user collection.
type QuestionWithNames struct {
	domain.Question
	ExpertName    string
	AskerName     string
	AskerPhotoURL string
}

// QuestionService defines the ask-expert workflow.
type QuestionService interface {
	// Ask creates a pending question addressed to an existing expert.
	Ask(ctx context.Context, asker *domain.User, expertID, message string) (*QuestionWithNames, error)
	MyQuestions(ctx context.Context, askerID string) ([]QuestionWithNames, error)
	ExpertInbox(ctx context.Context, expertID string) ([]QuestionWithNames, error)
	// Reply answers a question. Only the addressed expert or an admin may
	// reply; a repeated reply overwrites the previous answer.
	Reply(ctx context.Context, actor *domain.User, questionID, answer string) (*domain.Question, error)
}
