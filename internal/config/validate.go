package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Severity levels for ValidationError.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ValidationError represents a configuration validation error or warning.
type ValidationError struct {
	Field    string // Configuration field that failed validation
	Message  string // Human-readable error message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == SeverityError
}

// Validate checks the configuration and returns all errors and warnings.
// Credentials are checked separately by ValidateCredentials so commands that
// make no API calls can run without them.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	// --- API ---

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:    "api.base_url",
			Message:  fmt.Sprintf("invalid URL %q", c.API.BaseURL),
			Severity: SeverityError,
		})
	} else if u.Scheme != "https" {
		errs = append(errs, ValidationError{
			Field:    "api.base_url",
			Message:  "credentials will be signed over plain HTTP",
			Severity: SeverityWarning,
		})
	}

	if c.API.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:    "api.timeout",
			Message:  "timeout must not be negative",
			Severity: SeverityError,
		})
	}

	// --- Project ---

	if c.Project.SubscriptionID == "" {
		errs = append(errs, ValidationError{
			Field:    "project.subscription_id",
			Message:  "subscription id is required",
			Severity: SeverityError,
		})
	}

	// --- Environment ---

	if c.Environment.RegionID == "" {
		errs = append(errs, ValidationError{
			Field:    "environment.region_id",
			Message:  "region id is required",
			Severity: SeverityError,
		})
	}

	if !strings.Contains(c.Environment.DescriptionTemplate, "{customer}") {
		errs = append(errs, ValidationError{
			Field:    "environment.description",
			Message:  "description does not mention {customer}; every environment will share it",
			Severity: SeverityWarning,
		})
	}

	if len(c.Environment.Cart) == 0 {
		errs = append(errs, ValidationError{
			Field:    "environment.cart",
			Message:  "cart is empty; the environment will be created without VMs",
			Severity: SeverityWarning,
		})
	}

	for i, item := range c.Environment.Cart {
		if item.TemplateVMID == "" {
			errs = append(errs, ValidationError{
				Field:    fmt.Sprintf("environment.cart[%d].template_vm_id", i),
				Message:  "template VM id is required",
				Severity: SeverityError,
			})
		}
		if item.Name == "" {
			errs = append(errs, ValidationError{
				Field:    fmt.Sprintf("environment.cart[%d].name", i),
				Message:  "name is required",
				Severity: SeverityError,
			})
		}
	}

	// --- Invitations ---

	if c.Invitations.Concurrency < 1 {
		errs = append(errs, ValidationError{
			Field:    "invitations.concurrency",
			Message:  fmt.Sprintf("concurrency must be at least 1, got %d", c.Invitations.Concurrency),
			Severity: SeverityError,
		})
	}

	// --- Report archive ---

	if a := c.Report.Archive; a.Enabled {
		if a.Bucket == "" {
			errs = append(errs, ValidationError{
				Field:    "report.archive.bucket",
				Message:  "bucket is required when the archive is enabled",
				Severity: SeverityError,
			})
		}
		if a.Endpoint == "" {
			errs = append(errs, ValidationError{
				Field:    "report.archive.endpoint",
				Message:  "endpoint is required when the archive is enabled",
				Severity: SeverityError,
			})
		}
		if a.AccessKey == "" || a.SecretKey == "" {
			errs = append(errs, ValidationError{
				Field:    "report.archive",
				Message:  fmt.Sprintf("%s and %s must be set when the archive is enabled", EnvS3AccessKey, EnvS3SecretKey),
				Severity: SeverityError,
			})
		}
	}

	return errs
}

// ValidateCredentials reports missing API credentials.
func (c *Config) ValidateCredentials() []ValidationError {
	var errs []ValidationError
	if c.Credentials.APIID == "" {
		errs = append(errs, ValidationError{
			Field:    EnvAPIID,
			Message:  "API id is required",
			Severity: SeverityError,
		})
	}
	if c.Credentials.APIKey == "" {
		errs = append(errs, ValidationError{
			Field:    EnvAPIKey,
			Message:  "API key is required",
			Severity: SeverityError,
		})
	}
	return errs
}

// Errors returns only the entries with error severity.
func Errors(errs []ValidationError) []ValidationError {
	var out []ValidationError
	for _, ve := range errs {
		if ve.IsError() {
			out = append(out, ve)
		}
	}
	return out
}

// Join folds error-severity entries into one error, or nil if there are none.
func Join(errs []ValidationError) error {
	fatal := Errors(errs)
	if len(fatal) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(fatal))
	for _, e := range fatal {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(msgs, "\n  "))
}
