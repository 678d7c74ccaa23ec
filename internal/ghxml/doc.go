// Package ghxml parses XML graph documents into the in-memory graph model.
//
// Two document shapes are accepted: a compact hand-authorable form rooted
// at <ghx>, and a chunk-tree archive form rooted at <archive>. Both are
// detected from the first element of the document.
package ghxml
