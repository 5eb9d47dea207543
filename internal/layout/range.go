package layout

import "kalender/internal/cal"

// Horizontal inset keeping range lines off the column borders.
const rangeInset = 5.0

// RangeSegment is the drawable geometry of one range inside one month
// column: a vertical line from LineTop to LineBottom at X, plus a start
// or end marker where the range actually begins or ends. A renderer
// drawing all segments of a range gets one continuous path across
// months.
type RangeSegment struct {
	Month cal.MonthIndex
	X     float64

	LineTop    float64
	LineBottom float64

	HasStart bool
	StartY   float64
	HasEnd   bool
	EndY     float64
}

// RangeGeometry lays out a single multi-month range for the visible
// window at offset. The ordinal selects the jitter sub-position; each
// concurrently drawn range passes a distinct ordinal (its identifier).
func (e Engine) RangeGeometry(offset float64, start, end cal.Date, ordinal int) []RangeSegment {
	fromMonth, toMonth := start.Month, end.Month
	startY := e.DayCenter(start.Day)
	endY := e.DayCenter(end.Day)

	first := fromMonth
	if w := e.firstVisible(offset); w > first {
		first = w
	}
	last := toMonth
	if w := e.lastVisible(offset); w < last {
		last = w
	}

	colWidth := e.ColumnWidth()
	jitter := JitterOffset(ordinal)

	var out []RangeSegment
	for m := first; m <= last; m++ {
		seg := RangeSegment{
			Month:      m,
			X:          e.MonthX(offset, m) + rangeInset + (colWidth-2*rangeInset)*jitter,
			LineTop:    0,
			LineBottom: e.Height,
		}
		if m == fromMonth {
			seg.HasStart = true
			seg.StartY = startY
			seg.LineTop = startY
		}
		if m == toMonth {
			seg.HasEnd = true
			seg.EndY = endY
			seg.LineBottom = endY
		}
		out = append(out, seg)
	}
	return out
}
