// Package registry maps a node's identity (guid, canonical name or
// nickname) to an executable component. The catalogue is closed: every
// kind is registered up front by the component category modules, and
// resolution never invents a component at runtime.
package registry
