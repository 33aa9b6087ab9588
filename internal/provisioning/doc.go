// Package provisioning runs the customer onboarding workflow against the
// CloudShare API.
//
// # Phases
//
// A run is an ordered list of [Phase] values executed by [RunPhases]:
//
//	validation -> connectivity -> identity -> project -> team -> policy ->
//	invitations -> environment
//
// Each phase reads the identifiers produced by earlier phases from [State]
// and adds its own. A phase whose prerequisites are missing returns
// [ErrMissingState] instead of calling the API.
//
// # Failure handling
//
// Failures are classified by how far they let the run go:
//   - [FatalError]: validation, connectivity and identity. Nothing was created
//     and the process exits non-zero.
//   - Abort: project, team and policy. The run stops; anything already
//     created is reported, never rolled back.
//   - Per-user: a failed invitation is recorded and the next user is tried.
//     The phase only aborts when no invitation at all succeeded.
//   - [DegradedError]: environment. The run completes with errors.
//
// Every failed API call is captured once, by the API client, in the run's
// report.Collector. [Run] folds all of this into a [Result].
package provisioning
