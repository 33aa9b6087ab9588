package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRole is returned for role codes outside {2, 4, 8}.
var ErrInvalidRole = errors.New("invalid role code")

// Role is a project access level. The numeric value is the wire userLevel.
type Role int

const (
	// RoleTeamMember can use environments in the team.
	RoleTeamMember Role = 2
	// RoleTeamManager manages the team's members and environments.
	RoleTeamManager Role = 4
	// RoleProjectManager administers the whole project.
	RoleProjectManager Role = 8
)

// DefaultRole is applied when a row carries no usable role code.
const DefaultRole = RoleProjectManager

// Roles lists every valid role, lowest privilege first.
var Roles = []Role{RoleTeamMember, RoleTeamManager, RoleProjectManager}

// ParseRole parses a wire role code. Only 2, 4 and 8 are accepted.
func ParseRole(s string) (Role, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	r := Role(n)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRole, n)
	}
	return r, nil
}

// Valid reports whether r is one of the three known levels.
func (r Role) Valid() bool {
	switch r {
	case RoleTeamMember, RoleTeamManager, RoleProjectManager:
		return true
	}
	return false
}

// Level returns the wire userLevel value.
func (r Role) Level() int {
	return int(r)
}

func (r Role) String() string {
	switch r {
	case RoleTeamMember:
		return "Team Member"
	case RoleTeamManager:
		return "Team Manager"
	case RoleProjectManager:
		return "Project Manager"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}
