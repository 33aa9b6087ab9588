// Package report collects the failures produced during a single onboarding run
// and renders them for the operator.
//
// A Collector is created per run and handed to every component that can fail
// (the CloudShare gateway client and the provisioning phases). Records are
// append-only; nothing is ever removed or summarized, because root-causing
// upstream API failures requires the raw request/response pair.
//
// Rendering:
//
//   - RenderStyled: lipgloss output for interactive terminals
//   - RenderPlain: uncolored text for logs and pipes
//   - WriteJSON: machine-readable dump for attaching to support tickets
package report
