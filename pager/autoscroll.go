package pager

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AutoScrollMsg fires when the intermission timer elapses. Generation lets
// Advance drop ticks scheduled by a run that has since been stopped.
type AutoScrollMsg struct {
	Generation int
}

// AutoScroller advances the controller to the next pane on a fixed
// intermission timer. It is an ordinary collaborator: it reads the current
// index and calls the controller's normal animated-jump entry point, with no
// special accommodation from the core.
type AutoScroller struct {
	controller   *Controller
	intermission time.Duration
	wrap         bool
	running      bool
	generation   int
}

func NewAutoScroller(c *Controller, intermission time.Duration, wrap bool) *AutoScroller {
	if intermission <= 0 {
		intermission = 5 * time.Second
	}
	return &AutoScroller{controller: c, intermission: intermission, wrap: wrap}
}

func (a *AutoScroller) Running() bool { return a.running }

func (a *AutoScroller) Intermission() time.Duration { return a.intermission }

func (a *AutoScroller) SetIntermission(d time.Duration) {
	if d > 0 {
		a.intermission = d
	}
}

// Start begins (or restarts) the timer and returns the first tick command.
func (a *AutoScroller) Start() tea.Cmd {
	a.generation++
	a.running = true
	return a.tick()
}

// Stop halts auto-advance. Ticks already in flight become stale and are
// dropped by Advance.
func (a *AutoScroller) Stop() {
	a.running = false
}

// Advance handles one timer message: it moves to the next pane (wrapping or
// stopping at the end) and schedules the following tick. Stale messages
// return nil.
func (a *AutoScroller) Advance(msg AutoScrollMsg) tea.Cmd {
	if !a.running || msg.Generation != a.generation {
		return nil
	}
	if idx, ok := a.controller.CurrentIndex(); ok {
		next := idx + 1
		if next >= a.controller.Len() {
			if !a.wrap {
				a.running = false
				return nil
			}
			next = 0
		}
		a.controller.JumpTo(next, true)
	}
	return a.tick()
}

func (a *AutoScroller) tick() tea.Cmd {
	gen := a.generation
	return tea.Tick(a.intermission, func(time.Time) tea.Msg {
		return AutoScrollMsg{Generation: gen}
	})
}
