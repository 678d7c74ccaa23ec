// Package hclgraph builds graphs from a hand-authorable HCL format, a
// developer-friendly alternative to the XML document shapes. Node
// metadata is carried as cty values, matching the graph model's meta
// representation.
package hclgraph
