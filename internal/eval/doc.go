// Package eval walks an evaluation plan over a graph: it materializes
// each node's input vector (collapsing fan-in deterministically and
// substituting defaults), invokes the resolved component, merges outputs
// and harvests renderable geometry. A run is all-or-nothing; the first
// failing node aborts with an error naming it.
package eval
