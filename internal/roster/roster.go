package roster

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrNoSource is returned when no roster file exists and interactive entry
// is not possible.
var ErrNoSource = errors.New("no roster source available")

// Invitee is one user to invite. Invitees are never mutated once loaded.
type Invitee struct {
	Email     string
	FirstName string
	LastName  string
	Role      Role
}

// FullName joins first and last name.
func (i Invitee) FullName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	default:
		return i.FirstName + " " + i.LastName
	}
}

// SkippedRow is an input row that was rejected.
type SkippedRow struct {
	Line   int
	Raw    []string
	Reason string
}

// Roster is the validated result of a source.
type Roster struct {
	Invitees []Invitee
	Skipped  []SkippedRow
	// DefaultRoleCount counts invitees that received DefaultRole because
	// their row had no role or an unknown one.
	DefaultRoleCount int
	// Diagnostics are human-readable notes produced while loading.
	Diagnostics []string
	// Origin names the source (file path or "interactive").
	Origin string
}

// Len returns the number of accepted invitees.
func (r *Roster) Len() int {
	return len(r.Invitees)
}

func (r *Roster) addDiagnostic(format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, fmt.Sprintf(format, args...))
}

// Source produces a roster.
type Source interface {
	Load(ctx context.Context) (*Roster, error)
}

// Resolve picks the roster source: the CSV file when it exists, otherwise
// interactive entry when allowed. The returned bool reports whether the
// interactive fallback was chosen.
func Resolve(path string, interactiveAllowed bool, prompter Prompter) (Source, bool, error) {
	if _, err := os.Stat(path); err == nil {
		return NewCSVSource(path), false, nil
	} else if !os.IsNotExist(err) {
		return nil, false, fmt.Errorf("failed to check roster file %s: %w", path, err)
	}

	if !interactiveAllowed {
		return nil, false, fmt.Errorf("%w: %s not found and interactive input is disabled", ErrNoSource, path)
	}
	return NewInteractiveSource(prompter), true, nil
}
