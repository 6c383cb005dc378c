package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// ── user repository ──

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) addUser(u *domain.User) *domain.User {
	if u.ID == "" {
		r.seq++
		u.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u)
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
		if user.Email != "" && u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	return r.addUser(cloneUser(user)), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username || (email != "" && u.Email == email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindManyByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) List(_ context.Context, limit int64) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) SearchExperts(_ context.Context, search string, limit int64) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.Role != domain.RoleExpert {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Name+u.Username+u.Specialty+u.Region), strings.ToLower(search)) {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, patch domain.ProfilePatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Address != nil {
		u.Address = *patch.Address
	}
	if patch.PhotoURL != nil {
		u.PhotoURL = *patch.PhotoURL
	}
	if patch.Specialty != nil {
		u.Specialty = *patch.Specialty
	}
	if patch.Region != nil {
		u.Region = *patch.Region
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// ── question repository ──

type stubQuestionRepo struct {
	questions map[string]*domain.Question
	seq       int
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{questions: make(map[string]*domain.Question)}
}

func cloneQuestion(q *domain.Question) *domain.Question {
	clone := *q
	return &clone
}

func (r *stubQuestionRepo) Create(_ context.Context, q *domain.Question) (*domain.Question, error) {
	r.seq++
	clone := cloneQuestion(q)
	clone.ID = fmt.Sprintf("q-%d", r.seq)
	r.questions[clone.ID] = cloneQuestion(clone)
	return clone, nil
}

func (r *stubQuestionRepo) FindByID(_ context.Context, id string) (*domain.Question, error) {
	if q, ok := r.questions[id]; ok {
		return cloneQuestion(q), nil
	}
	return nil, domain.ErrQuestionNotFound
}

func (r *stubQuestionRepo) ListByAsker(_ context.Context, askerID string, limit int64) ([]*domain.Question, error) {
	var out []*domain.Question
	for _, q := range r.questions {
		if q.AskerID == askerID {
			out = append(out, cloneQuestion(q))
		}
	}
	return out, nil
}

func (r *stubQuestionRepo) ListByExpert(_ context.Context, expertID string, limit int64) ([]*domain.Question, error) {
	var out []*domain.Question
	for _, q := range r.questions {
		if q.ExpertID == expertID {
			out = append(out, cloneQuestion(q))
		}
	}
	return out, nil
}

func (r *stubQuestionRepo) SetAnswer(_ context.Context, id, answer string, answeredAt time.Time) (*domain.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	q.Answer = answer
	q.Status = domain.QuestionAnswered
	q.UpdatedAt = answeredAt
	q.AnsweredAt = &answeredAt
	return cloneQuestion(q), nil
}

// ── story repository ──

type stubStoryRepo struct {
	stories map[string]*domain.Story
	seq     int
}

func newStubStoryRepo() *stubStoryRepo {
	return &stubStoryRepo{stories: make(map[string]*domain.Story)}
}

func cloneStory(s *domain.Story) *domain.Story {
	clone := *s
	return &clone
}

func (r *stubStoryRepo) ListAll(_ context.Context, limit int64) ([]*domain.Story, error) {
	var out []*domain.Story
	for _, s := range r.stories {
		out = append(out, cloneStory(s))
	}
	return out, nil
}

func (r *stubStoryRepo) ListByOwner(_ context.Context, ownerID string, limit int64) ([]*domain.Story, error) {
	var out []*domain.Story
	for _, s := range r.stories {
		if s.OwnerID == ownerID {
			out = append(out, cloneStory(s))
		}
	}
	return out, nil
}

func (r *stubStoryRepo) Create(_ context.Context, s *domain.Story) (*domain.Story, error) {
	r.seq++
	clone := cloneStory(s)
	clone.ID = fmt.Sprintf("story-%d", r.seq)
	r.stories[clone.ID] = cloneStory(clone)
	return clone, nil
}

func (r *stubStoryRepo) Update(_ context.Context, id, ownerID string, patch ports.StoryPatch) (*domain.Story, error) {
	s, ok := r.stories[id]
	if !ok || (ownerID != "" && s.OwnerID != ownerID) {
		return nil, domain.ErrStoryNotFound
	}
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Body != nil {
		s.Body = *patch.Body
	}
	if patch.OwnerPhotoURL != nil {
		s.OwnerPhotoURL = *patch.OwnerPhotoURL
	}
	return cloneStory(s), nil
}

func (r *stubStoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.stories[id]; !ok {
		return domain.ErrStoryNotFound
	}
	delete(r.stories, id)
	return nil
}

func (r *stubStoryRepo) DeleteByOwner(_ context.Context, ownerID string) error {
	for id, s := range r.stories {
		if s.OwnerID == ownerID {
			delete(r.stories, id)
		}
	}
	return nil
}

func (r *stubStoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.stories)), nil
}

// ── farm input repository ──

type stubFarmInputRepo struct {
	inputs map[string]*domain.FarmInput
	seq    int
}

func newStubFarmInputRepo() *stubFarmInputRepo {
	return &stubFarmInputRepo{inputs: make(map[string]*domain.FarmInput)}
}

func (r *stubFarmInputRepo) List(_ context.Context, filter ports.FarmInputFilter, limit int64) ([]*domain.FarmInput, error) {
	var out []*domain.FarmInput
	for _, in := range r.inputs {
		if filter.Category != "" && in.Category != filter.Category {
			continue
		}
		if filter.Region != "" && in.Region != filter.Region {
			continue
		}
		if filter.Product != "" && !strings.Contains(strings.ToLower(in.Product), strings.ToLower(filter.Product)) {
			continue
		}
		clone := *in
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubFarmInputRepo) Create(_ context.Context, in *domain.FarmInput) (*domain.FarmInput, error) {
	r.seq++
	clone := *in
	clone.ID = fmt.Sprintf("input-%d", r.seq)
	stored := clone
	r.inputs[clone.ID] = &stored
	return &clone, nil
}

func (r *stubFarmInputRepo) Update(_ context.Context, id string, patch domain.FarmInputPatch) (*domain.FarmInput, error) {
	in, ok := r.inputs[id]
	if !ok {
		return nil, domain.ErrInputNotFound
	}
	if patch.Product != nil {
		in.Product = *patch.Product
	}
	if patch.Category != nil {
		in.Category = *patch.Category
	}
	if patch.Unit != nil {
		in.Unit = *patch.Unit
	}
	if patch.Price != nil {
		in.Price = *patch.Price
	}
	if patch.Region != nil {
		in.Region = *patch.Region
	}
	if patch.Source != nil {
		in.Source = *patch.Source
	}
	if patch.Notes != nil {
		in.Notes = *patch.Notes
	}
	clone := *in
	return &clone, nil
}

func (r *stubFarmInputRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.inputs[id]; !ok {
		return domain.ErrInputNotFound
	}
	delete(r.inputs, id)
	return nil
}

// ── advisory repository ──

type stubAdvisoryRepo struct {
	advisories map[string]*domain.Advisory
	seq        int
}

func newStubAdvisoryRepo() *stubAdvisoryRepo {
	return &stubAdvisoryRepo{advisories: make(map[string]*domain.Advisory)}
}

func (r *stubAdvisoryRepo) List(_ context.Context) ([]*domain.Advisory, error) {
	var out []*domain.Advisory
	for _, a := range r.advisories {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAdvisoryRepo) Create(_ context.Context, a *domain.Advisory) (*domain.Advisory, error) {
	r.seq++
	clone := *a
	clone.ID = fmt.Sprintf("advisory-%d", r.seq)
	stored := clone
	r.advisories[clone.ID] = &stored
	return &clone, nil
}

func (r *stubAdvisoryRepo) Update(_ context.Context, id string, patch domain.AdvisoryPatch) (*domain.Advisory, error) {
	a, ok := r.advisories[id]
	if !ok {
		return nil, domain.ErrAdvisoryNotFound
	}
	if patch.Location != nil {
		a.Location = *patch.Location
	}
	if patch.RecommendedCrop != nil {
		a.RecommendedCrop = *patch.RecommendedCrop
	}
	if patch.Weather != nil {
		a.Weather = *patch.Weather
	}
	if patch.SoilHealth != nil {
		a.SoilHealth = *patch.SoilHealth
	}
	if patch.Resources != nil {
		a.Resources = *patch.Resources
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdvisoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.advisories[id]; !ok {
		return domain.ErrAdvisoryNotFound
	}
	delete(r.advisories, id)
	return nil
}

// ── market repository ──

type stubMarketRepo struct {
	markets map[string]*domain.Market
	seq     int
}

func newStubMarketRepo() *stubMarketRepo {
	return &stubMarketRepo{markets: make(map[string]*domain.Market)}
}

func (r *stubMarketRepo) List(_ context.Context) ([]*domain.Market, error) {
	var out []*domain.Market
	for _, m := range r.markets {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubMarketRepo) Create(_ context.Context, m *domain.Market) (*domain.Market, error) {
	r.seq++
	clone := *m
	clone.ID = fmt.Sprintf("market-%d", r.seq)
	stored := clone
	r.markets[clone.ID] = &stored
	return &clone, nil
}

func (r *stubMarketRepo) Update(_ context.Context, id string, in ports.MarketInput) (*domain.Market, error) {
	m, ok := r.markets[id]
	if !ok {
		return nil, domain.ErrMarketNotFound
	}
	m.Product = in.Product
	m.Price = in.Price
	m.Trend = in.Trend
	m.TrendChange = in.TrendChange
	clone := *m
	return &clone, nil
}

func (r *stubMarketRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.markets[id]; !ok {
		return domain.ErrMarketNotFound
	}
	delete(r.markets, id)
	return nil
}

// ── AI provider ──

type stubProvider struct {
	generate func(ctx context.Context, in ports.GenerateInput) (string, error)
	calls    []ports.GenerateInput
}

func (p *stubProvider) Generate(ctx context.Context, in ports.GenerateInput) (string, error) {
	p.calls = append(p.calls, in)
	return p.generate(ctx, in)
}
