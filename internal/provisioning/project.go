package provisioning

import (
	"fmt"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/platform/cloudshare"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/util/naming"
)

// ProjectPhase creates the customer project with its single team.
type ProjectPhase struct{}

// NewProjectPhase creates a new project phase.
func NewProjectPhase() *ProjectPhase {
	return &ProjectPhase{}
}

// Name implements the Phase interface.
func (p *ProjectPhase) Name() string {
	return PhaseProject
}

// Provision implements the Phase interface.
func (p *ProjectPhase) Provision(ctx *Context) error {
	name := naming.Project(ctx.Config.Project.NamePrefix, ctx.Customer)
	LogResourceCreating(ctx.Observer, PhaseProject, "project", name)

	project, err := ctx.API.CreateProject(ctx, cloudshare.CreateProjectRequest{
		SubscriptionID: ctx.Config.Project.SubscriptionID,
		ProjectName:    name,
		TeamNames:      []string{naming.Team(ctx.Customer)},
		ProjectType:    ctx.Config.Project.ProjectType,
	})
	if err != nil {
		LogResourceFailed(ctx.Observer, PhaseProject, "project", name, err)
		return fmt.Errorf("failed to create project %q: %w", name, err)
	}

	ctx.State.ProjectName = name
	ctx.State.ProjectID = project.ID
	LogResourceCreated(ctx.Observer, PhaseProject, "project", name, project.ID)
	return nil
}

// TeamPhase resolves the team created with the project.
type TeamPhase struct{}

// NewTeamPhase creates a new team phase.
func NewTeamPhase() *TeamPhase {
	return &TeamPhase{}
}

// Name implements the Phase interface.
func (p *TeamPhase) Name() string {
	return PhaseTeam
}

// Provision implements the Phase interface.
func (p *TeamPhase) Provision(ctx *Context) error {
	if ctx.State.ProjectID == "" {
		return missingState("project id")
	}

	teams, err := ctx.API.ListTeams(ctx, ctx.State.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to list teams of project %s: %w", ctx.State.ProjectID, err)
	}
	if len(teams) == 0 || teams[0].ID == "" {
		return fmt.Errorf("project %s has no team", ctx.State.ProjectID)
	}

	ctx.State.TeamID = teams[0].ID
	LogResourceResolved(ctx.Observer, PhaseTeam, "team", teams[0].ID)
	return nil
}

// PolicyPhase resolves the project's default policy.
type PolicyPhase struct{}

// NewPolicyPhase creates a new policy phase.
func NewPolicyPhase() *PolicyPhase {
	return &PolicyPhase{}
}

// Name implements the Phase interface.
func (p *PolicyPhase) Name() string {
	return PhasePolicy
}

// Provision implements the Phase interface.
func (p *PolicyPhase) Provision(ctx *Context) error {
	if ctx.State.ProjectID == "" {
		return missingState("project id")
	}

	policies, err := ctx.API.ListPolicies(ctx, ctx.State.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to list policies of project %s: %w", ctx.State.ProjectID, err)
	}
	if len(policies) == 0 || policies[0].ID == "" {
		return fmt.Errorf("project %s has no policy", ctx.State.ProjectID)
	}

	ctx.State.PolicyID = policies[0].ID
	LogResourceResolved(ctx.Observer, PhasePolicy, "policy", policies[0].ID)
	return nil
}
