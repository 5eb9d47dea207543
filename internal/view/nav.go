// Package view holds the interaction state machines: the animated
// scroll offset fed into the layout engine, and the keyboard/pointer
// selection. Neither owns a clock; animation is advanced by the caller
// feeding time deltas, which keeps transitions testable with synthetic
// ticks.
package view

import (
	"math"
	"time"

	"kalender/internal/cal"
)

// One navigation transition takes one time unit of Advance deltas.
const animationDuration = 1.0

// Navigation tracks the current and target scroll offsets in fractional
// month units. Offsets are year-aligned: navigation targets are always
// a January, so the visible window is a calendar year.
type Navigation struct {
	current   float64
	target    float64
	from      float64
	elapsed   float64
	animating bool
}

// yearOffset is the offset showing the year of d, January leftmost.
func yearOffset(d cal.Date) float64 {
	return float64(cal.MonthOf(d.Month.Year(), time.January))
}

// NewNavigation starts at rest on the year of today.
func NewNavigation(today cal.Date) *Navigation {
	offset := yearOffset(today)
	return &Navigation{current: offset, target: offset}
}

// PreviousYear scrolls one year back.
func (n *Navigation) PreviousYear() { n.retarget(n.target - 12) }

// NextYear scrolls one year forward.
func (n *Navigation) NextYear() { n.retarget(n.target + 12) }

// Today scrolls to the year containing today.
func (n *Navigation) Today(today cal.Date) { n.retarget(yearOffset(today)) }

// retarget starts a new transition from the current, possibly
// mid-flight, offset. Navigation commands restart, they never queue.
func (n *Navigation) retarget(target float64) {
	n.target = target
	n.from = n.current
	n.elapsed = 0
	n.animating = true
}

// Advance moves the animation forward by dt time units. The caller
// drives this from its frame clock; when the transition completes the
// state returns to idle.
func (n *Navigation) Advance(dt float64) {
	if !n.animating {
		return
	}
	n.elapsed += dt
	t := n.elapsed / animationDuration
	if t >= 1 {
		n.current = n.target
		n.animating = false
		return
	}
	n.current = n.from + (n.target-n.from)*easeInOutQuad(t)
}

// Offset is the current, continuously animatable scroll position.
func (n *Navigation) Offset() float64 { return n.current }

// Target is the scroll destination.
func (n *Navigation) Target() float64 { return n.target }

// Animating reports whether a transition is in flight.
func (n *Navigation) Animating() bool { return n.animating }

// TargetWindow is the 12-month range the navigation is headed for.
func (n *Navigation) TargetWindow() (first, last cal.Date) {
	m := cal.MonthIndex(math.Floor(n.target))
	first = cal.Date{Month: m, Day: 1}
	last = cal.Date{Month: m + 11, Day: cal.DaysInMonth(m + 11)}
	return first, last
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}
