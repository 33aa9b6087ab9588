package provisioning

// ConnectivityPhase checks that the API is reachable and accepts the
// credentials. Any failure is fatal.
type ConnectivityPhase struct{}

// NewConnectivityPhase creates a new connectivity phase.
func NewConnectivityPhase() *ConnectivityPhase {
	return &ConnectivityPhase{}
}

// Name implements the Phase interface.
func (p *ConnectivityPhase) Name() string {
	return PhaseConnectivity
}

// Provision implements the Phase interface.
func (p *ConnectivityPhase) Provision(ctx *Context) error {
	ctx.Observer.Printf("[Connectivity] Checking API connectivity...")
	if err := ctx.API.Ping(ctx); err != nil {
		return &FatalError{Phase: PhaseConnectivity, Err: err}
	}
	ctx.Observer.Printf("[Connectivity] API reachable")
	return nil
}

// IdentityPhase resolves the calling user, whose email owns the starter
// environment unless the configuration names another owner. Any failure is
// fatal.
type IdentityPhase struct{}

// NewIdentityPhase creates a new identity phase.
func NewIdentityPhase() *IdentityPhase {
	return &IdentityPhase{}
}

// Name implements the Phase interface.
func (p *IdentityPhase) Name() string {
	return PhaseIdentity
}

// Provision implements the Phase interface.
func (p *IdentityPhase) Provision(ctx *Context) error {
	user, err := ctx.API.CurrentUser(ctx)
	if err != nil {
		return &FatalError{Phase: PhaseIdentity, Err: err}
	}

	ctx.State.OwnerEmail = user.Email
	if override := ctx.Config.Environment.OwnerEmail; override != "" {
		ctx.Observer.Printf("[Identity] Authenticated as %s; environment owner overridden to %s", user.Email, override)
		ctx.State.OwnerEmail = override
		return nil
	}

	ctx.Observer.Printf("[Identity] Authenticated as %s", user.Email)
	return nil
}
