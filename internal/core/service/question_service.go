package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

const questionListLimit = 300

// QuestionService implements the ask-expert workflow.
type QuestionService struct {
	questions ports.QuestionRepository
	users     ports.UserRepository
	logger    zerolog.Logger
}

func NewQuestionService(questions ports.QuestionRepository, users ports.UserRepository, logger zerolog.Logger) *QuestionService {
	return &QuestionService{questions: questions, users: users, logger: logger}
}

// Ask creates a pending question addressed to an existing expert. Targeting
// a user whose role is not expert fails, never silently accepted.
func (s *QuestionService) Ask(ctx context.Context, asker *domain.User, expertID, message string) (*ports.QuestionWithNames, error) {
	message = strings.TrimSpace(message)
	if expertID == "" || message == "" {
		return nil, domain.ValidationError("expertId and message are required")
	}

	expert, err := s.users.FindByID(ctx, expertID)
	if err != nil || expert.Role != domain.RoleExpert {
		return nil, domain.ErrExpertNotFound
	}

	now := time.Now().UTC()
	created, err := s.questions.Create(ctx, &domain.Question{
		ExpertID:  expert.ID,
		AskerID:   asker.ID,
		Message:   message,
		Status:    domain.QuestionPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("question_id", created.ID).Str("expert_id", expert.ID).Msg("question created")

	return &ports.QuestionWithNames{
		Question:   *created,
		ExpertName: displayName(expert, "Expert"),
	}, nil
}

// MyQuestions lists the asker's questions, newest first, with expert names
// joined in.
func (s *QuestionService) MyQuestions(ctx context.Context, askerID string) ([]ports.QuestionWithNames, error) {
	items, err := s.questions.ListByAsker(ctx, askerID, questionListLimit)
	if err != nil {
		return nil, err
	}

	experts, err := s.loadUsers(ctx, items, func(q *domain.Question) string { return q.ExpertID })
	if err != nil {
		return nil, err
	}

	out := make([]ports.QuestionWithNames, 0, len(items))
	for _, q := range items {
		out = append(out, ports.QuestionWithNames{
			Question:   *q,
			ExpertName: displayName(experts[q.ExpertID], "Expert"),
		})
	}
	return out, nil
}

// ExpertInbox lists questions addressed to the expert, newest first, with
// asker names and photos joined in.
func (s *QuestionService) ExpertInbox(ctx context.Context, expertID string) ([]ports.QuestionWithNames, error) {
	items, err := s.questions.ListByExpert(ctx, expertID, questionListLimit)
	if err != nil {
		return nil, err
	}

	askers, err := s.loadUsers(ctx, items, func(q *domain.Question) string { return q.AskerID })
	if err != nil {
		return nil, err
	}

	out := make([]ports.QuestionWithNames, 0, len(items))
	for _, q := range items {
		item := ports.QuestionWithNames{
			Question:  *q,
			AskerName: displayName(askers[q.AskerID], "User"),
		}
		if a := askers[q.AskerID]; a != nil {
			item.AskerPhotoURL = a.PhotoURL
		}
		out = append(out, item)
	}
	return out, nil
}

// Reply answers a question. Only the addressed expert or an admin may reply.
// A repeated reply overwrites the previous answer and refreshes timestamps.
func (s *QuestionService) Reply(ctx context.Context, actor *domain.User, questionID, answer string) (*domain.Question, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, domain.ValidationError("answer is required")
	}

	q, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !q.CanReply(actor) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.questions.SetAnswer(ctx, q.ID, answer, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("question_id", q.ID).Str("expert_id", actor.ID).Msg("question answered")
	return updated, nil
}

func (s *QuestionService) loadUsers(ctx context.Context, items []*domain.Question, key func(*domain.Question) string) (map[string]*domain.User, error) {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, q := range items {
		id := key(q)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return map[string]*domain.User{}, nil
	}

	users, err := s.users.FindManyByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

// displayName falls back from name to username to a generic label, matching
// the list rendering the clients expect.
func displayName(u *domain.User, fallback string) string {
	if u == nil {
		return fallback
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return fallback
}
