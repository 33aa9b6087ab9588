// Package cloudshare is a small client for the CloudShare v3 REST API.
//
// # Authentication
//
// Every request carries a freshly derived Authorization header:
//
//	cs_sha1 userapiid:<id>;timestamp:<unix>;token:<10 alnum>;hmac:<sha1 hex>
//
// The digest covers the API key, the canonical URL (GET parameters sorted by
// key), the timestamp and the nonce, so no two headers are alike.
//
// # Failures
//
// Client.Do treats 200, 201 and 204 as success. Anything else, a transport
// error, or a 2xx payload missing a required field is turned into a single
// report.FailureRecord handed to the configured recorder and returned as a
// *CallError. Callers decide whether a failure aborts their workflow.
//
// # Typed endpoints
//
//   - Ping, CurrentUser: pre-flight checks
//   - CreateProject, ListTeams, ListPolicies: project scaffolding
//   - InviteProjectMember: one invitation per user
//   - CreateEnvironment: VM cart submission
package cloudshare
