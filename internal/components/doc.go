// Package components holds the closed catalogue of component kinds. Each
// category file defines a Module that registers its kinds — guids, names,
// optional pins and evaluate functions — into a registry. Default wires
// them all up.
package components
