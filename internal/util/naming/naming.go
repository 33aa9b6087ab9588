package naming

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// CustomerPlaceholder is replaced by the customer name in templates.
const CustomerPlaceholder = "{customer}"

func Project(prefix, customer string) string {
	return prefix + strings.TrimSpace(customer)
}

func Team(customer string) string {
	return strings.TrimSpace(customer)
}

func Environment(customer, suffix string) string {
	return strings.TrimSpace(customer) + suffix
}

// EnvironmentDescription expands the description template for a customer.
func EnvironmentDescription(template, customer string) string {
	return strings.ReplaceAll(template, CustomerPlaceholder, strings.TrimSpace(customer))
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases s and collapses everything but letters and digits to '-'.
func Slug(s string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "unnamed"
	}
	return slug
}

// ReportKey is the object key of an archived failure report:
// {prefix}{customer-slug}/{yyyymmddThhmmssZ}-{runID}.json.
func ReportKey(prefix, customer, runID string, at time.Time) string {
	return fmt.Sprintf("%s%s/%s-%s.json", prefix, Slug(customer), at.UTC().Format("20060102T150405Z"), runID)
}
