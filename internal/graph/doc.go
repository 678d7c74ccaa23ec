// Package graph holds the document graph model: nodes with named input
// and output pins, directed wires between pins, and the identity indices
// used to look nodes up by id, guid or name.
//
// The graph is write-once: parsers and builders populate it, then the
// planner and evaluator treat it as read-only. Node removal is not part
// of this model, so the indices never dangle.
package graph
