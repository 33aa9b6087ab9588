package roster

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidEmail is returned when an address fails validation.
var ErrInvalidEmail = errors.New("invalid email address")

// emailPattern: word characters, dots and hyphens in the local part with an
// optional single +tag, and at least two dot-separated domain labels.
var emailPattern = regexp.MustCompile(`^[\w.-]+(\+[\w.-]+)?@[\w-]+(\.[\w-]+)+$`)

// ValidateEmail checks the address format.
func ValidateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return fmt.Errorf("%w: value is empty", ErrInvalidEmail)
	}
	if !emailPattern.MatchString(trimmed) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, trimmed)
	}
	return nil
}
