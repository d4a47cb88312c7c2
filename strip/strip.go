package strip

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskdeck/pager"
)

const (
	settleDuration = 220 * time.Millisecond
	jumpDuration   = 320 * time.Millisecond
	frameInterval  = time.Second / 30
)

// frameMsg drives one animation step. generation invalidates ticks from a
// tween that has since been replaced or aborted.
type frameMsg struct {
	generation int
}

type animation struct {
	from, to float64
	start    time.Time
	duration time.Duration
	// target becomes the frontmost pane when the tween lands on a new page;
	// it equals the current pane for a settle-back.
	target pager.Pane
}

// Strip is a Bubble Tea implementation of the pager.Surface contract. It
// keeps a three-pane window [before, current, after] obtained from the
// controller's adjacency protocol. The raw offset ranges over [0, 2W] where W
// is the page size, resting at W: the one-page lead the tracker normalizes
// against.
type Strip struct {
	controller *pager.Controller
	axis       pager.Axis

	width  int
	height int

	before  pager.Pane
	current pager.Pane
	after   pager.Pane

	offset float64

	dragging  bool
	dragStart int
	dragBase  float64

	anim        *animation
	animGen     int
	pumpPending bool
}

// New builds a strip bound to the controller. The strip registers an index
// observer so that a boundary crossed mid-drag recenters the window and
// remaps the drag origin, letting the gesture continue across pages.
func New(axis pager.Axis, c *pager.Controller) *Strip {
	s := &Strip{controller: c, axis: axis}
	c.OnIndexChanged(s.recenterOnIndex)
	return s
}

// SetSize sets the pane viewport size. A resize abandons any drag or tween in
// flight and snaps the strip back to rest.
func (s *Strip) SetSize(width, height int) {
	s.width = width
	s.height = height
	if s.dragging {
		s.dragging = false
		s.controller.SetDragging(false)
	}
	s.abortAnimation()
	s.offset = s.pageSize()
}

func (s *Strip) pageSize() float64 {
	if s.axis == pager.AxisVertical {
		return float64(s.height)
	}
	return float64(s.width)
}

// ---------------------------------------------------------------------------
// pager.Surface
// ---------------------------------------------------------------------------

func (s *Strip) PageWidth() float64 { return s.pageSize() }

func (s *Strip) Frontmost() pager.Pane { return s.current }

// Show makes pane the current pane. Non-animated shows snap immediately,
// discarding any prior display state; animated shows slot the pane into the
// travel direction and start a tween. The frame command for a
// controller-driven animated Show is collected via Pump.
func (s *Strip) Show(pane pager.Pane, dir pager.Direction, animated bool) {
	if pane == nil {
		return
	}
	if !animated || s.pageSize() <= 0 {
		s.abortAnimation()
		s.current = pane
		s.rebuild()
		s.offset = s.pageSize()
		return
	}
	if s.current != nil && pane.ID() == s.current.ID() {
		return
	}
	s.abortAnimation()
	w := s.pageSize()
	to := 2 * w
	if dir == pager.DirectionBackward {
		s.before = pane
		to = 0
	} else {
		s.after = pane
	}
	s.startTween(to, jumpDuration, pane)
	s.pumpPending = true
	s.controller.WillTransition([]pager.Pane{pane})
}

// ---------------------------------------------------------------------------
// Bubble Tea plumbing
// ---------------------------------------------------------------------------

// Update handles mouse and frame messages; everything else is ignored.
func (s *Strip) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return s.handleMouse(msg)
	case frameMsg:
		return s.handleFrame(msg)
	}
	return nil
}

// Pump returns the pending frame command for an animation begun outside the
// strip's own Update loop (a controller-driven Show), or nil when none is
// waiting. Callers batch it after any controller call that may animate.
func (s *Strip) Pump() tea.Cmd {
	if !s.pumpPending || s.anim == nil {
		s.pumpPending = false
		return nil
	}
	s.pumpPending = false
	return s.frameTick()
}

// Animate runs an animated transition to the adjacent pane and returns the
// frame command driving it, or nil when no neighbor exists that way.
func (s *Strip) Animate(dir pager.Direction) tea.Cmd {
	target := s.after
	if dir == pager.DirectionBackward {
		target = s.before
	}
	if target == nil || s.pageSize() <= 0 {
		return nil
	}
	s.Show(target, dir, true)
	return s.Pump()
}

// ---------------------------------------------------------------------------
// Drag handling
// ---------------------------------------------------------------------------

func (s *Strip) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if s.pageSize() <= 0 {
		return nil
	}
	pos := msg.X
	if s.axis == pager.AxisVertical {
		pos = msg.Y
	}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			s.abortAnimation()
			s.dragging = true
			s.dragStart = pos
			s.dragBase = s.offset
			s.controller.SetDragging(true)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			return s.Animate(pager.DirectionForward)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			return s.Animate(pager.DirectionBackward)
		}
		return nil
	case tea.MouseActionMotion:
		if !s.dragging {
			return nil
		}
		raw := s.dragBase - float64(pos-s.dragStart)
		s.offset = s.clampOffset(raw)
		s.controller.OffsetChanged(s.offset)
		return nil
	case tea.MouseActionRelease:
		if !s.dragging {
			return nil
		}
		s.dragging = false
		s.controller.SetDragging(false)
		return s.settle()
	}
	return nil
}

// clampOffset keeps a drag inside the window, and pins the edge with no
// adjacent pane so the first and last pages cannot be dragged past.
func (s *Strip) clampOffset(raw float64) float64 {
	w := s.pageSize()
	lo, hi := 0.0, 2*w
	if s.before == nil {
		lo = w
	}
	if s.after == nil {
		hi = w
	}
	return math.Min(math.Max(raw, lo), hi)
}

// settle animates to the nearest page after a release: past half a page onto
// the neighbor, otherwise back to rest. The settle frames run with
// dragging=false, so a boundary crossed here is reconciled by the completion
// event, not by the tracker's drag math.
func (s *Strip) settle() tea.Cmd {
	w := s.pageSize()
	to, target := w, s.current
	if s.after != nil && s.offset >= 1.5*w {
		to, target = 2*w, s.after
	} else if s.before != nil && s.offset <= 0.5*w {
		to, target = 0, s.before
	}
	s.startTween(to, settleDuration, target)
	if target != nil && s.current != nil && target.ID() != s.current.ID() {
		s.controller.WillTransition([]pager.Pane{target})
	}
	return s.frameTick()
}

// ---------------------------------------------------------------------------
// Tween
// ---------------------------------------------------------------------------

func (s *Strip) startTween(to float64, d time.Duration, target pager.Pane) {
	s.anim = &animation{from: s.offset, to: to, start: time.Now(), duration: d, target: target}
	s.animGen++
}

func (s *Strip) handleFrame(msg frameMsg) tea.Cmd {
	if s.anim == nil || msg.generation != s.animGen {
		return nil
	}
	elapsed := time.Since(s.anim.start)
	if elapsed >= s.anim.duration {
		s.offset = s.anim.to
		s.controller.OffsetChanged(s.offset)
		s.completeAnimation()
		return nil
	}
	t := easeOutCubic(float64(elapsed) / float64(s.anim.duration))
	s.offset = lerp(s.anim.from, s.anim.to, t)
	s.controller.OffsetChanged(s.offset)
	return s.frameTick()
}

// completeAnimation lands the tween: the window recenters on the target pane
// and the completion event fires with completed=true.
func (s *Strip) completeAnimation() {
	anim := s.anim
	s.anim = nil
	previous := s.window()
	if anim.target != nil && (s.current == nil || anim.target.ID() != s.current.ID()) {
		s.current = anim.target
		s.rebuild()
	}
	s.offset = s.pageSize()
	s.controller.DidFinishAnimating(true, true, previous)
}

// abortAnimation discards a tween in flight, reporting completed=false.
func (s *Strip) abortAnimation() {
	if s.anim == nil {
		return
	}
	previous := s.window()
	s.anim = nil
	s.controller.DidFinishAnimating(true, false, previous)
}

func (s *Strip) frameTick() tea.Cmd {
	gen := s.animGen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{generation: gen}
	})
}

// ---------------------------------------------------------------------------
// Window bookkeeping
// ---------------------------------------------------------------------------

func (s *Strip) rebuild() {
	s.before = s.controller.Before(s.current)
	s.after = s.controller.After(s.current)
}

func (s *Strip) window() []pager.Pane {
	out := make([]pager.Pane, 0, 3)
	for _, p := range []pager.Pane{s.before, s.current, s.after} {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// recenterOnIndex follows tracker index changes. When a boundary is crossed
// mid-drag the window shifts one page and the drag origin is remapped so the
// gesture continues seamlessly across the crossing.
func (s *Strip) recenterOnIndex(old, new int) {
	if s.controller.Surface() != pager.Surface(s) {
		return
	}
	p := s.controller.PaneAt(new)
	if p == nil || (s.current != nil && p.ID() == s.current.ID()) {
		return
	}
	w := s.pageSize()
	if s.dragging && w > 0 {
		if new > old {
			s.offset -= w
			s.dragBase -= w
		} else {
			s.offset += w
			s.dragBase += w
		}
	}
	s.current = p
	s.rebuild()
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// View renders the visible slice of the three-pane window at the current
// offset.
func (s *Strip) View() string {
	if s.width <= 0 || s.height <= 0 || s.current == nil {
		return ""
	}
	if s.axis == pager.AxisVertical {
		return s.viewVertical()
	}
	return s.viewHorizontal()
}

func (s *Strip) viewHorizontal() string {
	left := clampInt(int(math.Round(s.offset)), 0, 2*s.width)
	b := s.paneLines(s.before)
	c := s.paneLines(s.current)
	a := s.paneLines(s.after)
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = cutCells(b[i]+c[i]+a[i], left, s.width)
	}
	return strings.Join(rows, "\n")
}

func (s *Strip) viewVertical() string {
	top := clampInt(int(math.Round(s.offset)), 0, 2*s.height)
	canvas := make([]string, 0, 3*s.height)
	canvas = append(canvas, s.paneLines(s.before)...)
	canvas = append(canvas, s.paneLines(s.current)...)
	canvas = append(canvas, s.paneLines(s.after)...)
	return strings.Join(canvas[top:top+s.height], "\n")
}

// paneLines renders a pane to exactly height lines of exactly width cells. A
// nil pane renders blank, keeping the canvas rectangular.
func (s *Strip) paneLines(p pager.Pane) []string {
	var lines []string
	if p != nil {
		lines = strings.Split(p.View(s.width, s.height), "\n")
	}
	out := make([]string, s.height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], s.width, "")
		}
		if w := ansi.StringWidth(line); w < s.width {
			line += strings.Repeat(" ", s.width-w)
		}
		out[i] = line
	}
	return out
}

// cutCells slices width cells starting at cell position left, ANSI-aware.
func cutCells(line string, left, width int) string {
	out := ansi.Truncate(ansi.TruncateLeft(line, left, ""), width, "")
	if w := ansi.StringWidth(out); w < width {
		out += strings.Repeat(" ", width-w)
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// easeOutCubic decelerates toward the end of the tween.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
