// Package builder constructs small core.Graph fixtures used by this
// module's own tests and as starting points for ad-hoc experimentation.
package builder
