// Package value defines the closed universe of runtime values that flow
// across graph wires, together with the coercion helpers components use to
// read a Value as a concrete numeric or geometric shape.
package value
