package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/listing"
	"github.com/heartmarshall/creatorhub-backend/internal/service/auth"
	"github.com/heartmarshall/creatorhub-backend/internal/service/discovery"
	"github.com/heartmarshall/creatorhub-backend/internal/service/profile"
	"github.com/heartmarshall/creatorhub-backend/internal/service/workflow"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockDiscovery struct {
	ListCreatorsFunc  func(ctx context.Context, input discovery.ListInput) (listing.Result[domain.Creator], error)
	ListWorkflowsFunc func(ctx context.Context, input discovery.ListInput) (listing.Result[domain.Workflow], error)
	GetCreatorFunc    func(ctx context.Context, id uuid.UUID) (discovery.CreatorDetail, error)
	featured          []domain.Creator
	featuredWorkflows []domain.Workflow
}

func (m *mockDiscovery) ListCreators(ctx context.Context, input discovery.ListInput) (listing.Result[domain.Creator], error) {
	return m.ListCreatorsFunc(ctx, input)
}

func (m *mockDiscovery) ListWorkflows(ctx context.Context, input discovery.ListInput) (listing.Result[domain.Workflow], error) {
	return m.ListWorkflowsFunc(ctx, input)
}

func (m *mockDiscovery) FeaturedCreators(context.Context) ([]domain.Creator, error) {
	return m.featured, nil
}

func (m *mockDiscovery) FeaturedWorkflows(context.Context) ([]domain.Workflow, error) {
	return m.featuredWorkflows, nil
}

func (m *mockDiscovery) Home(context.Context) (discovery.HomeFeed, error) {
	return discovery.HomeFeed{Creators: m.featured, Workflows: m.featuredWorkflows}, nil
}

func (m *mockDiscovery) GetCreator(ctx context.Context, id uuid.UUID) (discovery.CreatorDetail, error) {
	return m.GetCreatorFunc(ctx, id)
}

type mockAuth struct {
	SignUpFunc  func(ctx context.Context, input auth.SignUpInput) (*auth.SignUpResult, error)
	LoginFunc   func(ctx context.Context, input auth.LoginInput) (*domain.Session, error)
	logoutErr   error
	resetErr    error
	forgotErr   error
	identity    domain.Identity
	sessionErr  error
	logoutCalls int
}

func (m *mockAuth) SignUp(ctx context.Context, input auth.SignUpInput) (*auth.SignUpResult, error) {
	return m.SignUpFunc(ctx, input)
}

func (m *mockAuth) Login(ctx context.Context, input auth.LoginInput) (*domain.Session, error) {
	return m.LoginFunc(ctx, input)
}

func (m *mockAuth) RequestPasswordReset(context.Context, auth.ForgotPasswordInput) error {
	return m.forgotErr
}

func (m *mockAuth) ResetPassword(context.Context, auth.ResetPasswordInput) error {
	return m.resetErr
}

func (m *mockAuth) Logout(context.Context) error {
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockAuth) Session(context.Context) (domain.Identity, error) {
	return m.identity, m.sessionErr
}

type mockProfiles struct {
	profile   domain.Creator
	err       error
	updated   profile.UpdateProfileInput
	avatar    profile.AvatarInput
	avatarRaw string
}

func (m *mockProfiles) GetMyProfile(context.Context) (domain.Creator, error) {
	return m.profile, m.err
}

func (m *mockProfiles) UpdateMyProfile(_ context.Context, input profile.UpdateProfileInput) (domain.Creator, error) {
	m.updated = input
	p := m.profile
	p.Name = input.Name
	return p, m.err
}

func (m *mockProfiles) UploadAvatar(_ context.Context, input profile.AvatarInput) (domain.Creator, error) {
	m.avatar = input
	b, _ := io.ReadAll(input.Body)
	m.avatarRaw = string(b)
	return m.profile, m.err
}

type mockWorkflows struct {
	items   []domain.Workflow
	err     error
	created workflow.CreateWorkflowInput
	updated workflow.UpdateWorkflowInput
	deleted uuid.UUID
}

func (m *mockWorkflows) ListMine(context.Context) ([]domain.Workflow, error) {
	return m.items, m.err
}

func (m *mockWorkflows) GetMine(_ context.Context, id uuid.UUID) (domain.Workflow, error) {
	for _, w := range m.items {
		if w.ID == id {
			return w, nil
		}
	}
	return domain.Workflow{}, domain.ErrNotFound
}

func (m *mockWorkflows) Create(_ context.Context, input workflow.CreateWorkflowInput) (domain.Workflow, error) {
	m.created = input
	return domain.Workflow{ID: uuid.New(), Title: input.Title, Status: domain.WorkflowStatusPending}, m.err
}

func (m *mockWorkflows) Update(_ context.Context, input workflow.UpdateWorkflowInput) (domain.Workflow, error) {
	m.updated = input
	return domain.Workflow{ID: input.ID}, m.err
}

func (m *mockWorkflows) Delete(_ context.Context, input workflow.DeleteWorkflowInput) error {
	m.deleted = input.ID
	return m.err
}
