// Package ingraph parses the module's plain-text graph input format into a
// core.Graph.
package ingraph
