// Package naming derives the names of CloudShare resources from the
// customer name so every onboarding run produces the same shapes.
//
// Projects are named {prefix}{customer}, the single team is {customer},
// and the starter environment is {customer}{suffix}.
package naming
