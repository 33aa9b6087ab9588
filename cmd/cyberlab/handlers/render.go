package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/provisioning"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusStyles = map[provisioning.Status]lipgloss.Style{
		provisioning.StatusCompleted:           lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		provisioning.StatusCompletedWithErrors: lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
		provisioning.StatusAborted:             lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		provisioning.StatusFatal:               lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	}
)

// painter applies a style only when output goes to a terminal.
type painter bool

func (p painter) paint(style lipgloss.Style, s string) string {
	if !p {
		return s
	}
	return style.Render(s)
}

// renderSummary produces the end-of-run summary.
func renderSummary(res *provisioning.Result, failures int, styled bool) string {
	p := painter(styled)
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(p.paint(titleStyle, fmt.Sprintf("  Onboarding: %s", res.Customer)))
	b.WriteString("\n")
	b.WriteString(p.paint(dimStyle, "  "+strings.Repeat("═", 30)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "    Status:       %s\n", p.paint(statusStyles[res.Status], string(res.Status)))
	if res.AbortedStep != "" {
		fmt.Fprintf(&b, "    Stopped at:   %s\n", res.AbortedStep)
	}
	fmt.Fprintf(&b, "    Duration:     %s\n", res.Duration().Round(time.Millisecond))

	if s := res.State; s != nil {
		writeResource(&b, "Project", s.ProjectName, s.ProjectID)
		writeResource(&b, "Team", "", s.TeamID)
		writeResource(&b, "Policy", "", s.PolicyID)
		if s.Invitations.Len() > 0 {
			fmt.Fprintf(&b, "    Invitations:  %d sent, %d failed\n", s.Invitations.SuccessCount(), s.Invitations.FailureCount())
		}
		writeResource(&b, "Environment", s.EnvironmentName, s.EnvironmentID)
	}

	if failures > 0 {
		b.WriteString(p.paint(dimStyle, fmt.Sprintf("    %d failure(s) recorded; details below.", failures)))
		b.WriteString("\n")
	}

	return b.String()
}

func writeResource(b *strings.Builder, label, name, id string) {
	if id == "" {
		return
	}
	if name != "" {
		fmt.Fprintf(b, "    %-13s %s (%s)\n", label+":", name, id)
		return
	}
	fmt.Fprintf(b, "    %-13s %s\n", label+":", id)
}

// orphanNote warns about a project left behind by an aborted run.
func orphanNote(res *provisioning.Result) string {
	if res.Status != provisioning.StatusAborted || res.State == nil || res.State.ProjectID == "" {
		return ""
	}
	return fmt.Sprintf("Note: project %q (%s) was created but onboarding did not finish. "+
		"Complete the setup or remove it in CloudShare before retrying.", res.State.ProjectName, res.State.ProjectID)
}

// renderPlan describes what a run would create.
func renderPlan(plan *provisioning.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nDry run for %s (no API calls made)\n\n", plan.Customer)
	fmt.Fprintf(&b, "  Project:      %s\n", plan.ProjectName)
	fmt.Fprintf(&b, "  Subscription: %s\n", plan.SubscriptionID)
	fmt.Fprintf(&b, "  Team:         %s\n", plan.TeamName)
	fmt.Fprintf(&b, "  Environment:  %s\n", plan.EnvironmentName)
	fmt.Fprintf(&b, "  Description:  %s\n", plan.EnvironmentDescription)
	fmt.Fprintf(&b, "  Region:       %s\n", plan.RegionID)
	if plan.OwnerOverride != "" {
		fmt.Fprintf(&b, "  Owner:        %s\n", plan.OwnerOverride)
	}

	fmt.Fprintf(&b, "\n  VMs (%d):\n", len(plan.Cart))
	for _, vm := range plan.Cart {
		fmt.Fprintf(&b, "    - %s [%s]\n", vm.Name, vm.TemplateVMID)
	}

	fmt.Fprintf(&b, "\n  Invitations (%d, concurrency %d):\n", len(plan.Invitees), plan.Concurrency)
	for _, inv := range plan.Invitees {
		fmt.Fprintf(&b, "    - %s <%s> as %s\n", inv.FullName(), inv.Email, inv.Role)
	}

	return b.String()
}

// renderRoster lists parsed invitees and rejected rows.
func renderRoster(r *roster.Roster, styled bool) string {
	p := painter(styled)
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(p.paint(sectionStyle, fmt.Sprintf("  Roster %s: %d user(s)", r.Origin, r.Len())))
	b.WriteString("\n")
	for _, inv := range r.Invitees {
		fmt.Fprintf(&b, "    %-30s %-24s %s\n", inv.Email, inv.FullName(), inv.Role)
	}

	if r.DefaultRoleCount > 0 {
		fmt.Fprintf(&b, "\n    %d user(s) defaulted to %s\n", r.DefaultRoleCount, roster.DefaultRole)
	}

	if len(r.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(p.paint(sectionStyle, fmt.Sprintf("  Skipped rows: %d", len(r.Skipped))))
		b.WriteString("\n")
		for _, s := range r.Skipped {
			fmt.Fprintf(&b, "    line %d: %s (%s)\n", s.Line, s.Reason, strings.Join(s.Raw, ","))
		}
	}

	for _, d := range r.Diagnostics {
		b.WriteString(p.paint(dimStyle, "    "+d))
		b.WriteString("\n")
	}

	return b.String()
}
