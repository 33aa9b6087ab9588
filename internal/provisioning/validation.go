package provisioning

import (
	"fmt"
	"strings"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/config"
	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/roster"
)

// ValidationPhase implements the Phase interface for pre-flight validation.
// It makes no API calls.
type ValidationPhase struct{}

// NewValidationPhase creates a new validation phase.
func NewValidationPhase() *ValidationPhase {
	return &ValidationPhase{}
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return PhaseValidation
}

// Provision implements the Phase interface.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	ctx.Observer.Printf("[Validation] Running pre-flight validation...")

	allErrors := validate(ctx)

	for _, ve := range allErrors {
		eventType := EventValidationWarning
		if ve.IsError() {
			eventType = EventValidationError
		}
		ctx.Observer.Event(Event{
			Type:    eventType,
			Phase:   PhaseValidation,
			Message: ve.Message,
			Fields:  map[string]string{"field": ve.Field},
		})
	}

	if err := config.Join(allErrors); err != nil {
		return &FatalError{Phase: PhaseValidation, Err: err}
	}

	ctx.Observer.Printf("[Validation] Validation passed")
	return nil
}

// validate runs all validation checks and returns any errors or warnings.
func validate(ctx *Context) []config.ValidationError {
	var errs []config.ValidationError

	if ctx.Config == nil {
		return []config.ValidationError{{
			Field:    "config",
			Message:  "configuration is required",
			Severity: config.SeverityError,
		}}
	}

	errs = append(errs, ctx.Config.Validate()...)

	// --- Customer ---

	if strings.TrimSpace(ctx.Customer) == "" {
		errs = append(errs, config.ValidationError{
			Field:    "customer",
			Message:  "customer name is required",
			Severity: config.SeverityError,
		})
	}

	// --- Roster ---

	r := ctx.Roster
	if r == nil {
		r = &roster.Roster{}
	}

	switch {
	case r.Len() == 0:
		errs = append(errs, config.ValidationError{
			Field:    "roster",
			Message:  "roster is empty; no users will be invited",
			Severity: config.SeverityWarning,
		})
	case r.DefaultRoleCount > 0:
		errs = append(errs, config.ValidationError{
			Field:    "roster",
			Message:  "some users have no valid role and will be invited as Project Manager",
			Severity: config.SeverityWarning,
		})
	}

	if n := len(r.Skipped); n > 0 {
		errs = append(errs, config.ValidationError{
			Field:    "roster",
			Message:  fmt.Sprintf("%d row(s) skipped; see diagnostics", n),
			Severity: config.SeverityWarning,
		})
	}

	return errs
}
