// Package strip implements the pager's display surface for the terminal: a
// strip of three pane slots (previous, current, next) slid by a continuous
// cell offset.
//
// Allowed here:
// - mouse-drag capture and offset mapping, settle/flick tweens, frame ticks
// - ANSI-aware horizontal/vertical slicing of the pane window
//
// Not allowed here:
// - index policy (pager owns it), storage, or app-level key handling
package strip
