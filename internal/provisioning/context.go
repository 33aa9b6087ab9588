package provisioning

import (
	"context"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/config"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/metrics"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/platform/cloudshare"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/report"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	Customer string
	State    *State
	API      cloudshare.LabAPI
	Roster   *roster.Roster
	Failures *report.Collector
	Observer Observer
	// Metrics may be nil.
	Metrics *metrics.Recorder
}

// NewContext creates a new provisioning context. failures must be the same
// collector the API client records into.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	customer string,
	api cloudshare.LabAPI,
	r *roster.Roster,
	failures *report.Collector,
) *Context {
	if r == nil {
		r = &roster.Roster{}
	}
	if failures == nil {
		failures = report.NewCollector()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Customer: customer,
		State:    NewState(),
		API:      api,
		Roster:   r,
		Failures: failures,
		Observer: NewConsoleObserver(0),
	}
}
