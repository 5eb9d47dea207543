package view

import (
	"kalender/internal/cal"
	"kalender/internal/store"
)

// Selection is the anchor/active date pair. The selected range is the
// inclusive span between them, whichever order they are in; without the
// extend modifier every move collapses the anchor onto the active date.
type Selection struct {
	anchor   cal.Date
	active   cal.Date
	nav      *Navigation
	pressed  bool
	onChange func()
}

// NewSelection starts collapsed on today.
func NewSelection(today cal.Date, nav *Navigation) *Selection {
	return &Selection{anchor: today, active: today, nav: nav}
}

// OnChange registers the single change listener.
func (s *Selection) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Selection) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Anchor returns the fixed end of the selection.
func (s *Selection) Anchor() cal.Date { return s.anchor }

// Active returns the moving end of the selection.
func (s *Selection) Active() cal.Date { return s.active }

// Range returns the selected span in ascending order. It may collapse
// to a single day.
func (s *Selection) Range() (start, end cal.Date) {
	return cal.Min(s.anchor, s.active), cal.Max(s.anchor, s.active)
}

// Contains reports whether d lies in the selected range.
func (s *Selection) Contains(d cal.Date) bool {
	start, end := s.Range()
	return !d.Before(start) && !d.After(end)
}

// setActive applies a keyboard move: the anchor follows unless the
// extend modifier is held, and the navigation window is corrected one
// year at a time until the active date is back in view.
func (s *Selection) setActive(d cal.Date, extend bool) {
	s.active = d
	if !extend {
		s.anchor = d
	}
	s.scrollIntoView()
	s.notify()
}

// scrollIntoView advances the navigation target year by year until the
// active date falls inside the targeted window. Stepping instead of
// jumping keeps the scroll animation consistent however far the
// selection moved.
func (s *Selection) scrollIntoView() {
	for {
		first, _ := s.nav.TargetWindow()
		if !s.active.Before(first) {
			break
		}
		s.nav.PreviousYear()
	}
	for {
		_, last := s.nav.TargetWindow()
		if !s.active.After(last) {
			break
		}
		s.nav.NextYear()
	}
}

// StepDay moves the active date by delta days.
func (s *Selection) StepDay(delta int, extend bool) {
	s.setActive(s.active.AddDays(delta), extend)
}

// StepMonth moves the active date by delta months, clamping the day.
func (s *Selection) StepMonth(delta int, extend bool) {
	s.setActive(s.active.AddMonths(delta), extend)
}

// MonthStart jumps to day 1 of the active month.
func (s *Selection) MonthStart(extend bool) {
	s.setActive(cal.Date{Month: s.active.Month, Day: 1}, extend)
}

// MonthEnd jumps to the last day of the active month.
func (s *Selection) MonthEnd(extend bool) {
	s.setActive(cal.Date{Month: s.active.Month, Day: cal.DaysInMonth(s.active.Month)}, extend)
}

// JumpToday jumps to the current date.
func (s *Selection) JumpToday(today cal.Date, extend bool) {
	s.setActive(today, extend)
}

// PressMonth is a pointer press on a month-header band: it selects the
// whole month, or extends the active end onto its last day when the
// extend modifier is held.
func (s *Selection) PressMonth(m cal.MonthIndex, extend bool) {
	s.pressed = true
	if !extend {
		s.anchor = cal.Date{Month: m, Day: 1}
	}
	s.active = cal.Date{Month: m, Day: cal.DaysInMonth(m)}
	s.notify()
}

// PressDay is a pointer press in the day grid: a single-day selection,
// or an extension of the active end.
func (s *Selection) PressDay(d cal.Date, extend bool) {
	s.pressed = true
	s.active = d
	if !extend {
		s.anchor = d
	}
	s.notify()
}

// DragTo updates the active end while a press is held.
func (s *Selection) DragTo(d cal.Date) {
	if !s.pressed {
		return
	}
	s.active = d
	s.notify()
}

// Release finalizes a pointer interaction.
func (s *Selection) Release() {
	s.pressed = false
}

// SecondaryPress handles a right-click at d: outside the current
// selection it first collapses the selection onto d, then the
// non-deleted entries intersecting the selection are returned for
// context-menu population, ordered by identifier. Picking among them is
// the caller's concern.
func (s *Selection) SecondaryPress(d cal.Date, st *store.Store) []store.Entry {
	if !s.Contains(d) {
		s.anchor = d
		s.active = d
		s.notify()
	}
	start, end := s.Range()
	return st.Intersecting(start, end)
}
