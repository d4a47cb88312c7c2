package pager

// DataSource supplies the ordered pane list and the index to display first.
// Panes may return nil (nothing to show); DefaultIndex is validated by the
// controller against the fetched list.
type DataSource interface {
	Panes(c *Controller) []Pane
	DefaultIndex(c *Controller) int
}

// emptySource is the built-in fallback data source: no panes, index 0. A
// controller always has a data source, so controller logic never checks for
// "no source attached", only for a source that answered with nothing.
type emptySource struct{}

func (emptySource) Panes(*Controller) []Pane     { return nil }
func (emptySource) DefaultIndex(*Controller) int { return 0 }
