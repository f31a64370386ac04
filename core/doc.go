// Package core defines Graph, VertexID and EdgeID — the dense-ID directed
// multigraph every other package in this module builds on.
package core
