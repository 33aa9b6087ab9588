package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// OriginInteractive is the Roster.Origin of manually entered rosters.
const OriginInteractive = "interactive"

// Prompter asks the operator for users. HuhPrompter is the terminal
// implementation; tests substitute their own.
type Prompter interface {
	PromptInvitee(ctx context.Context) (Invitee, error)
	ConfirmAnother(ctx context.Context) (bool, error)
}

// InteractiveSource collects invitees one at a time until the operator
// declines to add another.
type InteractiveSource struct {
	prompter Prompter
}

var _ Source = (*InteractiveSource)(nil)

// NewInteractiveSource creates a source driven by p. A nil p uses HuhPrompter.
func NewInteractiveSource(p Prompter) *InteractiveSource {
	if p == nil {
		p = HuhPrompter{}
	}
	return &InteractiveSource{prompter: p}
}

// Load prompts until the operator stops. Addresses are re-validated here so a
// Prompter without inline validation still cannot forward a malformed email.
func (s *InteractiveSource) Load(ctx context.Context) (*Roster, error) {
	roster := &Roster{Origin: OriginInteractive}

	for entry := 1; ; entry++ {
		inv, err := s.prompter.PromptInvitee(ctx)
		if err != nil {
			return nil, fmt.Errorf("user entry %d: %w", entry, err)
		}

		inv.Email = strings.TrimSpace(inv.Email)
		emailErr := ValidateEmail(inv.Email)
		switch {
		case emailErr != nil:
			roster.skip(entry, []string{inv.Email, inv.FirstName, inv.LastName}, emailErr.Error())
		case !inv.Role.Valid():
			roster.addDiagnostic("entry %d: unknown %v; defaulting %s to %s", entry, inv.Role, inv.Email, DefaultRole)
			roster.DefaultRoleCount++
			inv.Role = DefaultRole
			roster.Invitees = append(roster.Invitees, inv)
		default:
			roster.Invitees = append(roster.Invitees, inv)
		}

		more, err := s.prompter.ConfirmAnother(ctx)
		if err != nil {
			return nil, fmt.Errorf("user entry %d: %w", entry, err)
		}
		if !more {
			break
		}
	}

	return roster, nil
}

// HuhPrompter prompts on the terminal with huh forms.
type HuhPrompter struct{}

// PromptInvitee asks for one user's details.
func (HuhPrompter) PromptInvitee(ctx context.Context) (Invitee, error) {
	inv := Invitee{Role: DefaultRole}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First Name").
				Value(&inv.FirstName).
				Validate(requireNonEmpty("first name")),
			huh.NewInput().
				Title("Last Name").
				Value(&inv.LastName).
				Validate(requireNonEmpty("last name")),
			huh.NewInput().
				Title("Email Address").
				Placeholder("user@example.com").
				Value(&inv.Email).
				Validate(ValidateEmail),
			huh.NewSelect[Role]().
				Title("Access Role").
				Options(RoleOptions()...).
				Value(&inv.Role),
		).Title("Invite User"),
	).RunWithContext(ctx)

	return inv, err
}

// ConfirmAnother asks whether to add another user.
func (HuhPrompter) ConfirmAnother(ctx context.Context) (bool, error) {
	var more bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add another user?").
				Value(&more),
		),
	).RunWithContext(ctx)
	return more, err
}

// RoleOptions returns the select options for every role, highest first.
func RoleOptions() []huh.Option[Role] {
	opts := make([]huh.Option[Role], 0, len(Roles))
	for i := len(Roles) - 1; i >= 0; i-- {
		r := Roles[i]
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%d)", r, r.Level()), r))
	}
	return opts
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
