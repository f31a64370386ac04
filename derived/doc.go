// Package derived builds layered copies of a core.Graph that force every
// accepted walk to have crossed one or two designated vertices, so the
// path-counting machinery in package paths can be reused unchanged to
// answer "how many walks pass through x" (and "through x and y jointly")
// questions.
package derived
