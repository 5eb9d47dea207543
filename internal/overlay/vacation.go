package overlay

import "kalender/internal/cal"

// Interval is a closed date range valid for one school year. School
// years straddle a new year, so validity is a calendar-year pair; a date
// is only checked against intervals whose pair contains its year.
type Interval struct {
	Years [2]int
	Start cal.Date
	End   cal.Date
}

// Contains reports whether d falls into the interval.
func (iv Interval) Contains(d cal.Date) bool {
	year := d.Month.Year()
	if year != iv.Years[0] && year != iv.Years[1] {
		return false
	}
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// VacationOverlay matches a static, versioned school-vacation table.
// The tables are historical data and not user-editable.
type VacationOverlay struct {
	name      string
	style     Style
	intervals []Interval
	enabled   bool
}

func NewVacationOverlay(name string, style Style, intervals []Interval) *VacationOverlay {
	return &VacationOverlay{
		name:      name,
		style:     style,
		intervals: intervals,
		enabled:   true,
	}
}

func (o *VacationOverlay) Name() string { return o.name }

func (o *VacationOverlay) Match(d cal.Date) bool {
	if !o.enabled {
		return false
	}
	for _, iv := range o.intervals {
		if iv.Contains(d) {
			return true
		}
	}
	return false
}

func (o *VacationOverlay) Style() Style            { return o.style }
func (o *VacationOverlay) Enabled() bool           { return o.enabled }
func (o *VacationOverlay) SetEnabled(enabled bool) { o.enabled = enabled }
