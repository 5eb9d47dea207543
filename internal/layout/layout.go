// Package layout maps a fractional scroll offset and viewport size to
// pixel geometry for the continuously scrollable month/day grid, and
// back again for hit testing. The engine is a pure function of its
// inputs; nothing here is cached and nothing here draws.
package layout

import (
	"math"

	"kalender/internal/cal"
)

// Vertical partitioning of the viewport, in pixels.
const (
	YearHeaderHeight  = 40.0
	MonthHeaderHeight = 20.0
	HeaderHeight      = YearHeaderHeight + MonthHeaderHeight
	BottomMargin      = 10.0

	MinColumnWidth = 40.0
	MaxColumnWidth = 125.0
	MinRowHeight   = 10.0
)

// Engine computes geometry for one viewport size. Column and row sizes
// are derived on every call, so resizing can never desynchronize
// geometry from content.
type Engine struct {
	Width  float64
	Height float64
}

func New(width, height float64) Engine {
	return Engine{Width: width, Height: height}
}

// ColumnWidth is the width of one month column, clamped so a year stays
// readable on narrow viewports and does not stretch on wide ones.
func (e Engine) ColumnWidth() float64 {
	return math.Min(math.Max(e.Width/12, MinColumnWidth), MaxColumnWidth)
}

// RowHeight is the height of one day row, 31 rows below the headers.
func (e Engine) RowHeight() float64 {
	return math.Max((e.Height-HeaderHeight-BottomMargin)/31, MinRowHeight)
}

// MonthColumn is one visible month and its x position.
type MonthColumn struct {
	Month cal.MonthIndex
	X     float64
}

// VisibleMonths returns the months intersecting the viewport at the
// given offset, in strictly increasing order. The sequence starts 13
// months before the offset so a full year header plus lead-in is always
// covered, and ends one column past the right edge.
func (e Engine) VisibleMonths(offset float64) []MonthColumn {
	first := e.firstVisible(offset)
	last := e.lastVisible(offset)

	out := make([]MonthColumn, 0, last-first+1)
	for m := first; m <= last; m++ {
		out = append(out, MonthColumn{Month: m, X: e.MonthX(offset, m)})
	}
	return out
}

func (e Engine) firstVisible(offset float64) cal.MonthIndex {
	return cal.MonthIndex(math.Floor(offset)) - 13
}

func (e Engine) lastVisible(offset float64) cal.MonthIndex {
	return cal.MonthIndex(math.Floor(offset + e.Width/e.ColumnWidth()))
}

// MonthX returns the x position of a month's left edge.
func (e Engine) MonthX(offset float64, m cal.MonthIndex) float64 {
	return (float64(m) - offset) * e.ColumnWidth()
}

// MonthForX is the inverse mapping from a viewport x position.
func (e Engine) MonthForX(offset, x float64) cal.MonthIndex {
	return cal.MonthIndex(math.Floor(offset + x/e.ColumnWidth()))
}

// DayForY maps a y position inside a month column to a day, clamped to
// the month's length so presses below the last row select the last day.
func (e Engine) DayForY(m cal.MonthIndex, y float64) int {
	day := int(math.Floor((y-HeaderHeight)/e.RowHeight())) + 1
	if day < 1 {
		return 1
	}
	if max := cal.DaysInMonth(m); day > max {
		return max
	}
	return day
}

// DayTop returns the y position of a day row's upper edge.
func (e Engine) DayTop(day int) float64 {
	return HeaderHeight + float64(day-1)*e.RowHeight()
}

// DayCenter returns the y position of a day row's vertical center,
// where range markers sit.
func (e Engine) DayCenter(day int) float64 {
	return HeaderHeight + (float64(day)-0.5)*e.RowHeight()
}

// MarkerRadius is the radius of range start/end markers, derived from
// the cell geometry.
func (e Engine) MarkerRadius() float64 {
	r := math.Min(e.RowHeight()*0.5, e.ColumnWidth()*0.25) - 2
	return math.Max(6, r) / 2
}
