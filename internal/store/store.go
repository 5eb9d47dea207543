// Package store owns the user-defined calendar entries: colored date
// ranges with a title and free-text notes. The store is the single
// mutation authority for entries and keeps a linear undo/redo log of
// whole-entry snapshots. Deletion is soft: a tombstone snapshot stays
// addressable under its identifier so undo can bring it back.
//
// The store is not safe for concurrent mutation; callers marshal all
// writes onto a single owner and listen for change notifications.
package store

import (
	"sort"

	"kalender/internal/cal"
)

// Entry is one user-defined range. ID 0 marks a draft that has not been
// committed yet; committed entries keep their identifier for life.
type Entry struct {
	ID      int
	Deleted bool
	Title   string
	Notes   string
	Start   cal.Date
	End     cal.Date
	Color   Color
}

// Intersects reports whether the entry's range touches [start, end].
func (e Entry) Intersects(start, end cal.Date) bool {
	return !e.End.Before(start) && !e.Start.After(end)
}

// Store maps identifiers to current entry snapshots, tombstones included.
type Store struct {
	entries  map[int]Entry
	undoLog  []Entry
	redoLog  []Entry
	modified bool
	onChange func()
}

func New() *Store {
	return &Store{entries: map[int]Entry{}}
}

// OnChange registers the single change listener. The callback carries no
// payload; subscribers re-query current state.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// NextID returns the next free identifier.
func (s *Store) NextID() int {
	next := 1
	for id := range s.entries {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// Commit stores e as the current snapshot for its identifier, assigning
// the next free one to drafts. The inverse snapshot is pushed onto the
// undo log first: the previous snapshot if the identifier existed, or a
// synthetic tombstone so that undoing a creation removes the entry.
// Start and end are swapped if given in reverse order. Every commit
// clears the redo log.
func (s *Store) Commit(e Entry) int {
	id := e.ID
	if id == 0 {
		id = s.NextID()
	}

	if prev, ok := s.entries[id]; ok {
		s.undoLog = append(s.undoLog, prev)
	} else {
		s.undoLog = append(s.undoLog, Entry{ID: id, Deleted: true})
	}

	e.ID = id
	if e.End.Before(e.Start) {
		e.Start, e.End = e.End, e.Start
	}
	s.entries[id] = e
	s.redoLog = nil
	s.modified = true

	s.notify()
	return id
}

// Delete tombstones the entry. It commits the current snapshot with the
// deleted flag set, so it is undoable like any other edit. Unknown
// identifiers are ignored.
func (s *Store) Delete(id int) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	e.Deleted = true
	s.Commit(e)
}

// Undo reverts the most recent commit. No-op on an empty log.
func (s *Store) Undo() {
	if len(s.undoLog) == 0 {
		return
	}

	action := s.undoLog[len(s.undoLog)-1]
	s.undoLog = s.undoLog[:len(s.undoLog)-1]

	s.redoLog = append(s.redoLog, s.entries[action.ID])
	s.entries[action.ID] = action

	s.notify()
}

// Redo re-applies the most recently undone commit. No-op on an empty log.
func (s *Store) Redo() {
	if len(s.redoLog) == 0 {
		return
	}

	action := s.redoLog[len(s.redoLog)-1]
	s.redoLog = s.redoLog[:len(s.redoLog)-1]

	s.undoLog = append(s.undoLog, s.entries[action.ID])
	s.entries[action.ID] = action

	s.notify()
}

// CanUndo reports whether the undo log is non-empty.
func (s *Store) CanUndo() bool { return len(s.undoLog) > 0 }

// CanRedo reports whether the redo log is non-empty.
func (s *Store) CanRedo() bool { return len(s.redoLog) > 0 }

// Modified reports whether the store changed since the last save or load.
func (s *Store) Modified() bool { return s.modified }

// Get returns the current snapshot for id, tombstones included.
func (s *Store) Get(id int) (Entry, bool) {
	e, ok := s.entries[id]
	return e, ok
}

// Entries returns all non-deleted entries ordered by identifier.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.Deleted {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Intersecting returns the non-deleted entries whose range touches
// [start, end], ordered by identifier.
func (s *Store) Intersecting(start, end cal.Date) []Entry {
	var out []Entry
	for _, e := range s.Entries() {
		if e.Intersects(start, end) {
			out = append(out, e)
		}
	}
	return out
}
