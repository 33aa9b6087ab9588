// Package config holds the onboarding tool's settings: API endpoint,
// subscription and region identifiers, naming templates, the environment
// VM cart, invitation concurrency and the failure report archive.
//
// Settings come from three layers, later ones winning: built-in defaults
// ([Default]), an optional YAML file ([LoadFile]) and environment variables
// ([Config.ApplyEnv]). API credentials are only ever read from the
// environment.
package config
