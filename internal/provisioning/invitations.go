package provisioning

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/platform/cloudshare"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/util/async"
)

// InvitationPhase invites every roster entry to the project team. A failed
// invitation never stops the others; the phase fails only when the roster
// is non-empty and nobody could be invited.
type InvitationPhase struct{}

// NewInvitationPhase creates a new invitation phase.
func NewInvitationPhase() *InvitationPhase {
	return &InvitationPhase{}
}

// Name implements the Phase interface.
func (p *InvitationPhase) Name() string {
	return PhaseInvitations
}

// Provision implements the Phase interface.
func (p *InvitationPhase) Provision(ctx *Context) error {
	if ctx.State.ProjectID == "" || ctx.State.TeamID == "" {
		return missingState("project and team id")
	}

	var invitees []roster.Invitee
	if ctx.Roster != nil {
		invitees = ctx.Roster.Invitees
	}
	set := &OutcomeSet{Outcomes: make([]InviteOutcome, len(invitees))}
	ctx.State.Invitations = set

	if len(invitees) == 0 {
		ctx.Observer.Printf("[Invitations] WARNING: roster is empty, skipping invitations")
		return nil
	}

	var done atomic.Int32
	tasks := make([]async.Task, len(invitees))
	for i, inv := range invitees {
		req := cloudshare.InvitationRequest{
			Email:          inv.Email,
			FirstName:      inv.FirstName,
			LastName:       inv.LastName,
			ProjectID:      ctx.State.ProjectID,
			TeamID:         ctx.State.TeamID,
			UserLevel:      inv.Role.Level(),
			SuppressEmails: ctx.Config.Invitations.SuppressEmails,
		}
		tasks[i] = async.Task{
			Name: inv.Email,
			Func: func(c context.Context) error {
				_, err := ctx.API.InviteProjectMember(c, req)
				ctx.Metrics.RecordInvitation(err == nil)
				ctx.Observer.Progress(PhaseInvitations, int(done.Add(1)), len(tasks))
				return err
			},
		}
	}

	errs := async.Run(ctx, ctx.Config.Invitations.Concurrency, tasks)

	for i, inv := range invitees {
		set.Outcomes[i] = InviteOutcome{Invitee: inv, Err: errs[i]}
		if errs[i] != nil {
			ctx.Observer.Printf("[Invitations] %s (%s): %v", inv.Email, inv.Role, errs[i])
		}
	}

	failed := async.Failed(errs)
	ctx.Observer.Printf("[Invitations] %d of %d invitation(s) succeeded", len(errs)-failed, len(errs))
	if failed == len(errs) {
		return fmt.Errorf("%w: all %d attempt(s) failed: %w", ErrNoInvitationsSucceeded, failed, async.Join(tasks, errs))
	}
	return nil
}
