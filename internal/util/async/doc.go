// Package async provides bounded parallel task execution with per-task
// error capture.
//
// [Run] executes tasks through a worker limit and returns one error slot
// per task in input order, so a failing task never hides or cancels the
// outcome of another. It drives the bulk invitation step.
package async
