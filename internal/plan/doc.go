// Package plan precomputes everything the evaluator needs to walk a
// graph: a topological node order, per-pin incoming wire lists in a
// deterministic sort, and the effective input pin order of every node.
// A plan is built once per graph and reused across runs.
package plan
