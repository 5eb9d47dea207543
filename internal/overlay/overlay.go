// Package overlay classifies dates against toggleable rule sets: public
// holidays, Sundays and school-vacation interval tables. Overlays are
// registered on an Engine; registration order is paint order and callers
// rely on it being preserved exactly.
package overlay

import "kalender/internal/cal"

// RGBA is a display color with alpha, as handed to the rendering layer.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Style describes how a matching day cell is painted.
type Style struct {
	Fill RGBA `json:"fill"`
}

// Cell fill colors, from the application's palette.
var (
	holidayFill  = RGBA{R: 242, G: 219, B: 219, A: 100}
	vacationFill = RGBA{R: 100, G: 219, B: 100, A: 50}
	sundayFill   = RGBA{R: 255, G: 255, B: 0, A: 50}
)

// Overlay is a date-matching classification rule. Match must return
// false whenever the overlay is disabled.
type Overlay interface {
	Name() string
	Match(d cal.Date) bool
	Style() Style
	Enabled() bool
	SetEnabled(enabled bool)
}

// Engine holds overlays in registration order. Overlapping overlays are
// painted in that order, later ones on top.
type Engine struct {
	overlays []Overlay
}

func NewEngine() *Engine {
	return &Engine{}
}

// Register appends an overlay. Insertion order is paint order.
func (e *Engine) Register(o Overlay) {
	e.overlays = append(e.overlays, o)
}

// Overlays returns all registered overlays in registration order.
func (e *Engine) Overlays() []Overlay {
	return e.overlays
}

// Find returns the overlay with the given name.
func (e *Engine) Find(name string) (Overlay, bool) {
	for _, o := range e.overlays {
		if o.Name() == name {
			return o, true
		}
	}
	return nil, false
}

// Matches returns the enabled overlays matching d, in paint order.
func (e *Engine) Matches(d cal.Date) []Overlay {
	var out []Overlay
	for _, o := range e.overlays {
		if o.Match(d) {
			out = append(out, o)
		}
	}
	return out
}

// HolidayOverlay matches public holidays. Plain Sundays are excluded;
// SundayOverlay exists for those.
type HolidayOverlay struct {
	enabled bool
}

func NewHolidayOverlay() *HolidayOverlay {
	return &HolidayOverlay{enabled: true}
}

func (o *HolidayOverlay) Name() string { return "holidays" }

func (o *HolidayOverlay) Match(d cal.Date) bool {
	if !o.enabled {
		return false
	}
	return cal.Classify(d)&^cal.HolidaySunday != cal.HolidayNone
}

func (o *HolidayOverlay) Style() Style            { return Style{Fill: holidayFill} }
func (o *HolidayOverlay) Enabled() bool           { return o.enabled }
func (o *HolidayOverlay) SetEnabled(enabled bool) { o.enabled = enabled }

// SundayOverlay matches Sundays only.
type SundayOverlay struct {
	enabled bool
}

func NewSundayOverlay() *SundayOverlay {
	return &SundayOverlay{enabled: true}
}

func (o *SundayOverlay) Name() string { return "sundays" }

func (o *SundayOverlay) Match(d cal.Date) bool {
	if !o.enabled {
		return false
	}
	return cal.Classify(d).Has(cal.HolidaySunday)
}

func (o *SundayOverlay) Style() Style            { return Style{Fill: sundayFill} }
func (o *SundayOverlay) Enabled() bool           { return o.enabled }
func (o *SundayOverlay) SetEnabled(enabled bool) { o.enabled = enabled }
