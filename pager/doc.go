// Package pager contains the paging container core: pane list and adjacency,
// the data-source contract, offset-to-index tracking, and the controller that
// ties them to a display surface.
//
// Allowed here:
// - pane identity/ordering contracts, the data-source protocol
// - the offset tracker state machine and its controller orchestration
// - the surface collaborator contract and the auto-advance timer add-on
//
// Not allowed here:
// - concrete surface rendering or gesture decoding (strip)
// - storage, app wiring, or widget primitives
package pager
