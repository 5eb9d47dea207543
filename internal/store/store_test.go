package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kalender/internal/cal"
)

func augustEntry(title string) Entry {
	return Entry{
		Title: title,
		Start: cal.DateOf(2014, time.August, 3),
		End:   cal.DateOf(2014, time.August, 4),
		Color: AccentColors[0],
	}
}

func TestCommitAssignsSequentialIDs(t *testing.T) {
	s := New()

	id := s.Commit(augustEntry("a"))
	assert.Equal(t, 1, id)
	assert.Equal(t, 2, s.Commit(augustEntry("b")))
	assert.Equal(t, 3, s.Commit(augustEntry("c")))

	// Overwriting an existing identifier does not burn a new one.
	e, ok := s.Get(2)
	require.True(t, ok)
	e.Title = "b2"
	assert.Equal(t, 2, s.Commit(e))
	assert.Equal(t, 4, s.NextID())
}

func TestCommitSwapsReversedRange(t *testing.T) {
	s := New()
	id := s.Commit(Entry{
		Start: cal.DateOf(2014, time.August, 10),
		End:   cal.DateOf(2014, time.August, 4),
	})

	e, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, cal.DateOf(2014, time.August, 4), e.Start)
	assert.Equal(t, cal.DateOf(2014, time.August, 10), e.End)
}

func TestUndoFullyUnwinds(t *testing.T) {
	s := New()
	s.Commit(augustEntry("a"))
	s.Commit(augustEntry("b"))

	e, _ := s.Get(1)
	e.Title = "a2"
	s.Commit(e)

	s.Undo()
	s.Undo()
	s.Undo()

	assert.Empty(t, s.Entries())
	assert.Empty(t, s.Serialize())
	assert.False(t, s.CanUndo())
}

func TestRedoRestoresExactSnapshot(t *testing.T) {
	s := New()
	id := s.Commit(Entry{
		Title: "Urlaub",
		Notes: "Ostsee",
		Start: cal.DateOf(2014, time.August, 3),
		End:   cal.DateOf(2014, time.August, 4),
		Color: Color{0x26, 0x8b, 0xd2},
	})

	before, _ := s.Get(id)
	s.Undo()
	s.Redo()
	after, ok := s.Get(id)

	require.True(t, ok)
	assert.Equal(t, before, after)

	// And the pair keeps round-tripping.
	s.Undo()
	tombstone, _ := s.Get(id)
	assert.True(t, tombstone.Deleted)
	s.Redo()
	after, _ = s.Get(id)
	assert.Equal(t, before, after)
}

func TestCommitClearsRedoLog(t *testing.T) {
	s := New()
	s.Commit(augustEntry("a"))
	s.Undo()
	require.True(t, s.CanRedo())

	s.Commit(augustEntry("b"))
	assert.False(t, s.CanRedo())

	s.Redo() // no-op
	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Title)
}

func TestUndoRedoEmptyLogsAreNoOps(t *testing.T) {
	s := New()
	s.Undo()
	s.Redo()
	assert.Empty(t, s.Entries())
	assert.False(t, s.Modified())
}

func TestDeleteTombstoneScenario(t *testing.T) {
	s := New()

	id := s.Commit(augustEntry("Urlaub"))
	require.Equal(t, 1, id)

	s.Delete(id)
	assert.Empty(t, s.Serialize(), "tombstones are never persisted")

	// The tombstone stays addressable.
	e, ok := s.Get(id)
	require.True(t, ok)
	assert.True(t, e.Deleted)

	s.Undo()
	e, ok = s.Get(id)
	require.True(t, ok)
	assert.False(t, e.Deleted)
	assert.Len(t, s.Serialize(), 1)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.Delete(42)
	assert.False(t, s.CanUndo())
}

func TestUndoCreationLeavesAddressableTombstone(t *testing.T) {
	s := New()
	id := s.Commit(augustEntry("a"))
	s.Undo()

	e, ok := s.Get(id)
	require.True(t, ok)
	assert.True(t, e.Deleted)
	assert.Equal(t, id, e.ID)
	assert.Empty(t, s.Entries())
}

func TestChangeNotification(t *testing.T) {
	s := New()
	calls := 0
	s.OnChange(func() { calls++ })

	id := s.Commit(augustEntry("a"))
	s.Undo()
	s.Redo()
	s.Delete(id)
	assert.Equal(t, 4, calls)
}

func TestModifiedFlag(t *testing.T) {
	s := New()
	assert.False(t, s.Modified())
	s.Commit(augustEntry("a"))
	assert.True(t, s.Modified())
}

func TestIntersecting(t *testing.T) {
	s := New()
	s.Commit(Entry{Start: cal.DateOf(2014, time.August, 1), End: cal.DateOf(2014, time.August, 10)})
	s.Commit(Entry{Start: cal.DateOf(2014, time.August, 9), End: cal.DateOf(2014, time.September, 2)})
	s.Commit(Entry{Start: cal.DateOf(2014, time.October, 1), End: cal.DateOf(2014, time.October, 2)})
	s.Delete(3)

	got := s.Intersecting(cal.DateOf(2014, time.August, 10), cal.DateOf(2014, time.August, 20))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)

	got = s.Intersecting(cal.DateOf(2014, time.October, 1), cal.DateOf(2014, time.October, 31))
	assert.Empty(t, got, "tombstones never intersect")
}
