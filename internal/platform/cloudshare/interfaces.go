package cloudshare

import "context"

// LabAPI is the subset of the CloudShare API the onboarding workflow drives.
// Implemented by *Client and MockClient.
type LabAPI interface {
	Ping(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error)
	ListTeams(ctx context.Context, projectID string) ([]Team, error)
	ListPolicies(ctx context.Context, projectID string) ([]Policy, error)
	InviteProjectMember(ctx context.Context, req InvitationRequest) (*Invitation, error)
	CreateEnvironment(ctx context.Context, req EnvironmentRequest) (*Environment, error)
}

var _ LabAPI = (*Client)(nil)
