// Package web exposes the calendar over HTTP as a JSON API plus an
// iCalendar feed. The server is the single writer for the entry store;
// every handler serializes on one mutex.
package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"kalender/internal/cal"
	"kalender/internal/config"
	"kalender/internal/export"
	"kalender/internal/layout"
	appLog "kalender/internal/log"
	"kalender/internal/overlay"
	"kalender/internal/store"
)

// Server provides HTTP access to the entry store, the overlay engine and
// the layout geometry.
type Server struct {
	cfg *config.Config
	mux *http.ServeMux

	mu       sync.Mutex
	store    *store.Store
	overlays *overlay.Engine
}

// NewServer constructs a new Server around an already loaded store.
func NewServer(cfg *config.Config, st *store.Store, ov *overlay.Engine) *Server {
	s := &Server{
		cfg:      cfg,
		mux:      http.NewServeMux(),
		store:    st,
		overlays: ov,
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/view", s.handleView)
	s.mux.HandleFunc("/api/entries", s.handleEntries)
	s.mux.HandleFunc("/api/entries/", s.handleEntryByID)
	s.mux.HandleFunc("/api/undo", s.handleUndo)
	s.mux.HandleFunc("/api/redo", s.handleRedo)
	s.mux.HandleFunc("/api/overlays", s.handleOverlays)
	s.mux.HandleFunc("/api/save", s.handleSave)
	s.mux.HandleFunc("/calendar.ics", s.handleCalendarFeed)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// viewResponse is the JSON response shape for /api/view: everything a
// client needs to paint one frame of the scrollable grid.
type viewResponse struct {
	Offset      float64    `json:"offset"`
	ColumnWidth float64    `json:"column_width"`
	RowHeight   float64    `json:"row_height"`
	Months      []monthDTO `json:"months"`
	Ranges      []rangeDTO `json:"ranges"`
}

type monthDTO struct {
	Index cal.MonthIndex `json:"index"`
	Year  int            `json:"year"`
	Name  string         `json:"name"`
	Days  int            `json:"days"`
	X     float64        `json:"x"`
	Marks []dayMarkDTO   `json:"marks,omitempty"`
}

// dayMarkDTO lists the matching overlays of one day, in paint order.
type dayMarkDTO struct {
	Day      int      `json:"day"`
	Overlays []string `json:"overlays"`
}

type rangeDTO struct {
	ID       int          `json:"id"`
	Title    string       `json:"title"`
	Color    string       `json:"color"`
	Segments []segmentDTO `json:"segments"`
}

type segmentDTO struct {
	Month      cal.MonthIndex `json:"month"`
	X          float64        `json:"x"`
	LineTop    float64        `json:"line_top"`
	LineBottom float64        `json:"line_bottom"`
	HasStart   bool           `json:"has_start"`
	StartY     float64        `json:"start_y"`
	HasEnd     bool           `json:"has_end"`
	EndY       float64        `json:"end_y"`
}

// handleView computes the visible geometry for a viewport.
//
// GET /api/view?offset=1368.5&width=1280&height=800
//   - offset: fractional month offset, defaults to the current month
//   - width/height: viewport size in pixels
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	now := time.Now()
	offset := parseFloatDefault(q.Get("offset"), float64(cal.MonthOf(now.Year(), now.Month())))
	width := parseFloatDefault(q.Get("width"), 1280)
	height := parseFloatDefault(q.Get("height"), 800)

	eng := layout.New(width, height)

	s.mu.Lock()
	defer s.mu.Unlock()

	columns := eng.VisibleMonths(offset)
	months := make([]monthDTO, 0, len(columns))
	for _, col := range columns {
		m := monthDTO{
			Index: col.Month,
			Year:  col.Month.Year(),
			Name:  col.Month.Name(false),
			Days:  cal.DaysInMonth(col.Month),
			X:     col.X,
		}
		for day := 1; day <= m.Days; day++ {
			matched := s.overlays.Matches(cal.Date{Month: col.Month, Day: day})
			if len(matched) == 0 {
				continue
			}
			names := make([]string, 0, len(matched))
			for _, o := range matched {
				names = append(names, o.Name())
			}
			m.Marks = append(m.Marks, dayMarkDTO{Day: day, Overlays: names})
		}
		months = append(months, m)
	}

	ranges := []rangeDTO{}
	if len(columns) > 0 {
		winStart := cal.Date{Month: columns[0].Month, Day: 1}
		lastMonth := columns[len(columns)-1].Month
		winEnd := cal.Date{Month: lastMonth, Day: cal.DaysInMonth(lastMonth)}

		for _, e := range s.store.Intersecting(winStart, winEnd) {
			segs := eng.RangeGeometry(offset, e.Start, e.End, e.ID)
			dto := rangeDTO{
				ID:       e.ID,
				Title:    e.Title,
				Color:    e.Color.String(),
				Segments: make([]segmentDTO, 0, len(segs)),
			}
			for _, seg := range segs {
				dto.Segments = append(dto.Segments, segmentDTO{
					Month:      seg.Month,
					X:          seg.X,
					LineTop:    seg.LineTop,
					LineBottom: seg.LineBottom,
					HasStart:   seg.HasStart,
					StartY:     seg.StartY,
					HasEnd:     seg.HasEnd,
					EndY:       seg.EndY,
				})
			}
			ranges = append(ranges, dto)
		}
	}

	writeJSON(w, http.StatusOK, viewResponse{
		Offset:      offset,
		ColumnWidth: eng.ColumnWidth(),
		RowHeight:   eng.RowHeight(),
		Months:      months,
		Ranges:      ranges,
	})
}

// entryDTO is the JSON shape of one entry.
type entryDTO struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Notes string `json:"notes"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

// entryRequest is the POST body for creating or updating an entry. An
// absent color picks a random accent color, like a freshly drawn range.
type entryRequest struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Notes string `json:"notes"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

// historyDTO reports the undo/redo/dirty state after a mutation.
type historyDTO struct {
	CanUndo  bool `json:"can_undo"`
	CanRedo  bool `json:"can_redo"`
	Modified bool `json:"modified"`
}

func entryToDTO(e store.Entry) entryDTO {
	return entryDTO{
		ID:    e.ID,
		Title: e.Title,
		Notes: e.Notes,
		Start: e.Start.String(),
		End:   e.End.String(),
		Color: e.Color.String(),
	}
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.Lock()
		entries := s.store.Entries()
		s.mu.Unlock()

		dtos := make([]entryDTO, 0, len(entries))
		for _, e := range entries {
			dtos = append(dtos, entryToDTO(e))
		}
		writeJSON(w, http.StatusOK, dtos)

	case http.MethodPost:
		var req entryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		start, err := cal.ParseDate(req.Start)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start date")
			return
		}
		end, err := cal.ParseDate(req.End)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end date")
			return
		}

		color := store.RandomAccentColor()
		if req.Color != "" {
			color, err = store.ParseColor(req.Color)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid color")
				return
			}
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if req.ID != 0 {
			if _, ok := s.store.Get(req.ID); !ok {
				writeError(w, http.StatusNotFound, "no such entry")
				return
			}
		}

		id := s.store.Commit(store.Entry{
			ID:    req.ID,
			Title: req.Title,
			Notes: req.Notes,
			Start: start,
			End:   end,
			Color: color,
		})
		e, _ := s.store.Get(id)
		appLog.Info("entry committed", "id", id, "start", e.Start, "end", e.End)
		writeJSON(w, http.StatusOK, entryToDTO(e))

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleEntryByID serves /api/entries/{id}.
func (s *Server) handleEntryByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/entries/")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid entry identifier")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.store.Get(id)
	if !ok || e.Deleted {
		writeError(w, http.StatusNotFound, "no such entry")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, entryToDTO(e))

	case http.MethodDelete:
		s.store.Delete(id)
		appLog.Info("entry deleted", "id", id)
		writeJSON(w, http.StatusOK, s.historyState())

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) historyState() historyDTO {
	return historyDTO{
		CanUndo:  s.store.CanUndo(),
		CanRedo:  s.store.CanRedo(),
		Modified: s.store.Modified(),
	}
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Undo()
	writeJSON(w, http.StatusOK, s.historyState())
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Redo()
	writeJSON(w, http.StatusOK, s.historyState())
}

// overlayDTO is the JSON shape of one registered overlay.
type overlayDTO struct {
	Name    string        `json:"name"`
	Enabled bool          `json:"enabled"`
	Style   overlay.Style `json:"style"`
}

// overlayRequest toggles one overlay by name.
type overlayRequest struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

func (s *Server) handleOverlays(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		overlays := s.overlays.Overlays()
		dtos := make([]overlayDTO, 0, len(overlays))
		for _, o := range overlays {
			dtos = append(dtos, overlayDTO{Name: o.Name(), Enabled: o.Enabled(), Style: o.Style()})
		}
		writeJSON(w, http.StatusOK, dtos)

	case http.MethodPost:
		var req overlayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		o, ok := s.overlays.Find(req.Name)
		if !ok {
			writeError(w, http.StatusNotFound, "no such overlay")
			return
		}
		o.SetEnabled(req.Enabled)
		appLog.Info("overlay toggled", "name", o.Name(), "enabled", o.Enabled())
		writeJSON(w, http.StatusOK, overlayDTO{Name: o.Name(), Enabled: o.Enabled(), Style: o.Style()})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(s.cfg.DocumentPath); err != nil {
		appLog.Error("document save failed", err, "path", s.cfg.DocumentPath)
		writeError(w, http.StatusInternalServerError, "failed to save document")
		return
	}
	appLog.Info("document saved", "path", s.cfg.DocumentPath)
	writeJSON(w, http.StatusOK, s.historyState())
}

// SaveIfModified persists the document when the store carries unsaved
// changes. Autosave and shutdown call this; an unchanged store is a
// no-op so the file mtime stays honest.
func (s *Server) SaveIfModified() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Modified() {
		return nil
	}
	if err := s.store.Save(s.cfg.DocumentPath); err != nil {
		return err
	}
	appLog.Info("document saved", "path", s.cfg.DocumentPath)
	return nil
}

func (s *Server) handleCalendarFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.mu.Lock()
	feed := export.ICS(s.store, time.Now())
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(feed))
}

func parseFloatDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
