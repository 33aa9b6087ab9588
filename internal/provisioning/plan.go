package provisioning

import (
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/config"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/platform/cloudshare"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/util/naming"
)

// Plan is what a run would create, computed without calling the API.
type Plan struct {
	Customer               string
	ProjectName            string
	TeamName               string
	SubscriptionID         string
	EnvironmentName        string
	EnvironmentDescription string
	RegionID               string
	OwnerOverride          string
	Cart                   []cloudshare.CartItem
	Invitees               []roster.Invitee
	Concurrency            int
}

// BuildPlan computes the dry-run plan for a customer and roster.
func BuildPlan(cfg *config.Config, customer string, r *roster.Roster) *Plan {
	p := &Plan{
		Customer:               customer,
		ProjectName:            naming.Project(cfg.Project.NamePrefix, customer),
		TeamName:               naming.Team(customer),
		SubscriptionID:         cfg.Project.SubscriptionID,
		EnvironmentName:        naming.Environment(customer, cfg.Environment.NameSuffix),
		EnvironmentDescription: naming.EnvironmentDescription(cfg.Environment.DescriptionTemplate, customer),
		RegionID:               cfg.Environment.RegionID,
		OwnerOverride:          cfg.Environment.OwnerEmail,
		Cart:                   BuildCart(cfg.Environment.Cart),
		Concurrency:            cfg.Invitations.Concurrency,
	}
	if r != nil {
		p.Invitees = r.Invitees
	}
	return p
}
