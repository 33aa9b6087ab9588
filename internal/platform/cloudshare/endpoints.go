package cloudshare

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/report"
)

// Endpoint paths relative to the base URL.
const (
	EndpointPing           = "/ping"
	EndpointCurrentUser    = "/users/actions/getcurrentuser"
	EndpointCreateProject  = "/Projects/CreateFastProject"
	EndpointTeams          = "/teams"
	EndpointInviteMember   = "/invitations/actions/inviteprojectmember"
	EndpointEnvironments   = "/envs"
	endpointPoliciesFormat = "/projects/%s/policies"
)

// PingAck is the acknowledgement payload of the health endpoint.
const PingAck = "Pong"

// EndpointPolicies returns the policy listing path for a project.
func EndpointPolicies(projectID string) string {
	return fmt.Sprintf(endpointPoliciesFormat, projectID)
}

// Ping checks that the API is reachable and the credentials are accepted.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Do(ctx, Call{
		Op:       "ping",
		Method:   http.MethodGet,
		Endpoint: EndpointPing,
		Tag:      report.TagConnectivity,
	})
	if err != nil {
		return err
	}

	var out PingResponse
	if err := resp.Decode(&out); err != nil {
		return c.Malformed(resp, fmt.Sprintf("invalid JSON: %v", err))
	}
	if !strings.EqualFold(out.Result, PingAck) {
		return c.Malformed(resp, fmt.Sprintf("expected result %q, got %q", PingAck, out.Result))
	}
	return nil
}

// CurrentUser fetches the profile of the user owning the API credentials.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	resp, err := c.Do(ctx, Call{
		Op:       "current-user",
		Method:   http.MethodGet,
		Endpoint: EndpointCurrentUser,
		Tag:      report.TagIdentity,
	})
	if err != nil {
		return nil, err
	}

	var user User
	if err := resp.Decode(&user); err != nil {
		return nil, c.Malformed(resp, fmt.Sprintf("invalid JSON: %v", err))
	}
	if user.Email == "" {
		return nil, c.Malformed(resp, "profile has no email")
	}
	return &user, nil
}

// CreateProject creates a project with its initial teams.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	resp, err := c.Do(ctx, Call{
		Op:       "create-project",
		Method:   http.MethodPost,
		Endpoint: EndpointCreateProject,
		Body:     req,
		Tag:      report.TagProject,
	})
	if err != nil {
		return nil, err
	}

	var project Project
	if err := resp.Decode(&project); err != nil {
		return nil, c.Malformed(resp, fmt.Sprintf("invalid JSON: %v", err))
	}
	if project.ID == "" {
		msg := project.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return nil, c.Malformed(resp, "project id missing: "+msg)
	}
	return &project, nil
}

// ListTeams lists the teams of a project. An empty list is reported as a
// malformed response since every created project carries at least one team.
func (c *Client) ListTeams(ctx context.Context, projectID string) ([]Team, error) {
	resp, err := c.Do(ctx, Call{
		Op:       "list-teams",
		Method:   http.MethodGet,
		Endpoint: EndpointTeams,
		Params: map[string]string{
			"getRows":   "true",
			"projectId": projectID,
			"skip":      "0",
		},
		Tag: report.TagTeam,
	})
	if err != nil {
		return nil, err
	}

	var out teamsResponse
	if err := resp.Decode(&out); err != nil {
		return nil, c.Malformed(resp, fmt.Sprintf("invalid JSON: %v", err))
	}
	if len(out.Rows) == 0 || out.Rows[0].ID == "" {
		return nil, c.Malformed(resp, "no team found for project "+projectID)
	}
	return out.Rows, nil
}

// ListPolicies lists the policies of a project. An empty list is reported as
// a malformed response.
func (c *Client) ListPolicies(ctx context.Context, projectID string) ([]Policy, error) {
	resp, err := c.Do(ctx, Call{
		Op:       "list-policies",
		Method:   http.MethodGet,
		Endpoint: EndpointPolicies(projectID),
		Tag:      report.TagPolicy,
	})
	if err != nil {
		return nil, err
	}

	var policies []Policy
	if err := resp.Decode(&policies); err != nil {
		return nil, c.Malformed(resp, fmt.Sprintf("invalid JSON: %v", err))
	}
	if len(policies) == 0 || policies[0].ID == "" {
		return nil, c.Malformed(resp, "no policies found for project "+projectID)
	}
	return policies, nil
}

// InviteProjectMember invites a single user into a project team.
func (c *Client) InviteProjectMember(ctx context.Context, req InvitationRequest) (*Invitation, error) {
	resp, err := c.Do(ctx, Call{
		Op:       "invite",
		Method:   http.MethodPost,
		Endpoint: EndpointInviteMember,
		Body:     req,
		Tag:      report.TagInvitation,
	})
	if err != nil {
		return nil, err
	}

	var inv Invitation
	if err := resp.Decode(&inv); err != nil {
		// The invitation was accepted; an unparsable body is not worth failing over.
		c.log.V(1).Info("ignoring unparsable invitation response", "email", req.Email, "error", err.Error())
	}
	return &inv, nil
}

// CreateEnvironment submits an environment with its VM cart.
func (c *Client) CreateEnvironment(ctx context.Context, req EnvironmentRequest) (*Environment, error) {
	resp, err := c.Do(ctx, Call{
		Op:       "create-environment",
		Method:   http.MethodPost,
		Endpoint: EndpointEnvironments,
		Body:     req,
		Tag:      report.TagEnvironment,
	})
	if err != nil {
		return nil, err
	}

	var env Environment
	if err := resp.Decode(&env); err != nil {
		c.log.V(1).Info("ignoring unparsable environment response", "error", err.Error())
	}
	return &env, nil
}
