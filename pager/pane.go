package pager

// Pane is one unit of content displayed full-bounds in the paging container.
// Identity is the ID string: it must be stable for the lifetime of the pane
// and unique within a list. The container never inspects pane content.
type Pane interface {
	ID() string
	Title() string
	View(width, height int) string
}
