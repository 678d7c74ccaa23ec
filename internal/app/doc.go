// Package app wires the engine together: it owns the logger, the
// component registry and the parse-plan-evaluate lifecycle of a single
// document run.
package app
