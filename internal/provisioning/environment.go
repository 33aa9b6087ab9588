package provisioning

import (
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/config"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/platform/cloudshare"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/util/naming"
)

// EnvironmentPhase creates the starter environment from the configured VM
// cart. A failure is recorded but nothing already created is rolled back.
type EnvironmentPhase struct{}

// NewEnvironmentPhase creates a new environment phase.
func NewEnvironmentPhase() *EnvironmentPhase {
	return &EnvironmentPhase{}
}

// Name implements the Phase interface.
func (p *EnvironmentPhase) Name() string {
	return PhaseEnvironment
}

// Provision implements the Phase interface.
func (p *EnvironmentPhase) Provision(ctx *Context) error {
	if ctx.State.ProjectID == "" || ctx.State.TeamID == "" || ctx.State.PolicyID == "" {
		return missingState("project, team and policy id")
	}

	req := BuildEnvironmentRequest(ctx.Config, ctx.Customer, ctx.State)
	name := req.Environment.Name
	LogResourceCreating(ctx.Observer, PhaseEnvironment, "environment", name)

	env, err := ctx.API.CreateEnvironment(ctx, req)
	if err != nil {
		LogResourceFailed(ctx.Observer, PhaseEnvironment, "environment", name, err)
		return &DegradedError{Phase: PhaseEnvironment, Err: err}
	}

	ctx.State.EnvironmentName = name
	ctx.State.EnvironmentID = env.ID
	LogResourceCreated(ctx.Observer, PhaseEnvironment, "environment", name, env.ID)
	return nil
}

// BuildEnvironmentRequest assembles the environment creation payload.
func BuildEnvironmentRequest(cfg *config.Config, customer string, state *State) cloudshare.EnvironmentRequest {
	return cloudshare.EnvironmentRequest{
		Environment: cloudshare.EnvironmentSpec{
			Name:              naming.Environment(customer, cfg.Environment.NameSuffix),
			ProjectID:         state.ProjectID,
			TeamID:            state.TeamID,
			PolicyID:          state.PolicyID,
			RegionID:          cfg.Environment.RegionID,
			Description:       naming.EnvironmentDescription(cfg.Environment.DescriptionTemplate, customer),
			ExternalCloudData: []any{},
			OwnerEmail:        state.OwnerEmail,
		},
		Preview:                 false,
		ItemsCart:               BuildCart(cfg.Environment.Cart),
		EnableAutomaticSnapshot: cfg.Environment.AutomaticSnapshot,
	}
}

// BuildCart converts configured cart entries to template VM items.
func BuildCart(items []config.CartItem) []cloudshare.CartItem {
	cart := make([]cloudshare.CartItem, 0, len(items))
	for _, item := range items {
		packages := item.ChocolateyPackages
		if packages == nil {
			packages = []string{}
		}
		cart = append(cart, cloudshare.CartItem{
			Type:               cloudshare.CartItemTypeTemplateVM,
			Name:               item.Name,
			Description:        item.Description,
			ChocolateyPackages: packages,
			TemplateVMID:       item.TemplateVMID,
		})
	}
	return cart
}
