package handlers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/provisioning"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
)

func sampleResult(status provisioning.Status) *provisioning.Result {
	state := provisioning.NewState()
	state.ProjectName = "NEXTGEN CyberLAB - Acme"
	state.ProjectID = "P1"
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &provisioning.Result{
		Customer: "Acme",
		Status:   status,
		State:    state,
		Started:  start,
		Finished: start.Add(1500 * time.Millisecond),
	}
}

func TestRenderSummary_Plain(t *testing.T) {
	t.Parallel()
	res := sampleResult(provisioning.StatusCompletedWithErrors)
	res.State.EnvironmentName = "Acme example environment"
	res.State.EnvironmentID = "E1"

	out := renderSummary(res, 2, false)

	assert.Contains(t, out, "Onboarding: Acme")
	assert.Contains(t, out, "Status:       completed_with_errors")
	assert.Contains(t, out, "Duration:     1.5s")
	assert.Contains(t, out, "NEXTGEN CyberLAB - Acme (P1)")
	assert.Contains(t, out, "Acme example environment (E1)")
	assert.Contains(t, out, "2 failure(s) recorded")
	assert.NotContains(t, out, "Stopped at")
	assert.NotContains(t, out, "Team:")
}

func TestRenderSummary_Aborted(t *testing.T) {
	t.Parallel()
	res := sampleResult(provisioning.StatusAborted)
	res.AbortedStep = provisioning.PhaseTeam

	out := renderSummary(res, 1, true)

	assert.Contains(t, out, "Stopped at:   team")
	assert.Contains(t, out, "aborted")
}

func TestOrphanNote(t *testing.T) {
	t.Parallel()

	assert.Contains(t, orphanNote(sampleResult(provisioning.StatusAborted)), `"NEXTGEN CyberLAB - Acme" (P1)`)
	assert.Empty(t, orphanNote(sampleResult(provisioning.StatusCompleted)))

	noProject := sampleResult(provisioning.StatusAborted)
	noProject.State.ProjectID = ""
	noProject.Err = errors.New("project creation failed")
	assert.Empty(t, orphanNote(noProject))
}

func TestRenderRoster(t *testing.T) {
	t.Parallel()
	r := &roster.Roster{
		Origin: "users.csv",
		Invitees: []roster.Invitee{
			{Email: "alice@acme.com", FirstName: "Alice", LastName: "Smith", Role: roster.RoleProjectManager},
		},
		DefaultRoleCount: 1,
		Skipped:          []roster.SkippedRow{{Line: 3, Raw: []string{"x", "y"}, Reason: "too few fields"}},
	}

	out := renderRoster(r, false)

	assert.Contains(t, out, "Roster users.csv: 1 user(s)")
	assert.Contains(t, out, "Alice Smith")
	assert.Contains(t, out, "1 user(s) defaulted to Project Manager")
	assert.Contains(t, out, "line 3: too few fields (x,y)")
}
