package cloudshare

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of LabAPI. Unset funcs return
// canned successful values. Every call is appended to Calls.
type MockClient struct {
	PingFunc                func(ctx context.Context) error
	CurrentUserFunc         func(ctx context.Context) (*User, error)
	CreateProjectFunc       func(ctx context.Context, req CreateProjectRequest) (*Project, error)
	ListTeamsFunc           func(ctx context.Context, projectID string) ([]Team, error)
	ListPoliciesFunc        func(ctx context.Context, projectID string) ([]Policy, error)
	InviteProjectMemberFunc func(ctx context.Context, req InvitationRequest) (*Invitation, error)
	CreateEnvironmentFunc   func(ctx context.Context, req EnvironmentRequest) (*Environment, error)

	mu    sync.Mutex
	Calls []string
}

// Ensure interface compliance
var _ LabAPI = (*MockClient)(nil)

func (m *MockClient) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, name)
}

// CallLog returns a copy of the recorded call names.
func (m *MockClient) CallLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	copy(out, m.Calls)
	return out
}

// Ping mocks the health check.
func (m *MockClient) Ping(ctx context.Context) error {
	m.record("ping")
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// CurrentUser mocks profile lookup.
func (m *MockClient) CurrentUser(ctx context.Context) (*User, error) {
	m.record("current-user")
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &User{ID: "mock-user", Email: "owner@example.com"}, nil
}

// CreateProject mocks project creation.
func (m *MockClient) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	m.record("create-project")
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, req)
	}
	return &Project{ID: "mock-project"}, nil
}

// ListTeams mocks team listing.
func (m *MockClient) ListTeams(ctx context.Context, projectID string) ([]Team, error) {
	m.record("list-teams")
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, projectID)
	}
	return []Team{{ID: "mock-team"}}, nil
}

// ListPolicies mocks policy listing.
func (m *MockClient) ListPolicies(ctx context.Context, projectID string) ([]Policy, error) {
	m.record("list-policies")
	if m.ListPoliciesFunc != nil {
		return m.ListPoliciesFunc(ctx, projectID)
	}
	return []Policy{{ID: "mock-policy"}}, nil
}

// InviteProjectMember mocks a single invitation.
func (m *MockClient) InviteProjectMember(ctx context.Context, req InvitationRequest) (*Invitation, error) {
	m.record("invite")
	if m.InviteProjectMemberFunc != nil {
		return m.InviteProjectMemberFunc(ctx, req)
	}
	return &Invitation{}, nil
}

// CreateEnvironment mocks environment creation.
func (m *MockClient) CreateEnvironment(ctx context.Context, req EnvironmentRequest) (*Environment, error) {
	m.record("create-environment")
	if m.CreateEnvironmentFunc != nil {
		return m.CreateEnvironmentFunc(ctx, req)
	}
	return &Environment{ID: "mock-env"}, nil
}
