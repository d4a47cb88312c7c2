// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (slide chrome, indicator dots)
//
// Not allowed here:
// - key handling, paging state transitions, or storage access
package widgets
