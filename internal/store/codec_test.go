package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kalender/internal/cal"
)

func TestSerializeDeserializeIdempotent(t *testing.T) {
	s := New()
	s.Commit(Entry{
		Title: "Urlaub",
		Notes: "Ostsee\nmit Hund",
		Start: cal.DateOf(2014, time.August, 3),
		End:   cal.DateOf(2014, time.August, 4),
		Color: Color{0x26, 0x8b, 0xd2},
	})
	s.Commit(Entry{
		Title: "",
		Start: cal.DateOf(2015, time.January, 1),
		End:   cal.DateOf(2015, time.January, 1),
		Color: Color{0xb5, 0x89, 0x00},
	})

	doc := s.Serialize()
	loaded, err := Deserialize(doc)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded.Serialize())

	// A freshly loaded store has no history and is unmodified.
	assert.False(t, loaded.CanUndo())
	assert.False(t, loaded.CanRedo())
	assert.False(t, loaded.Modified())
}

func TestSerializeRecordShape(t *testing.T) {
	s := New()
	s.Commit(Entry{
		Title: "Urlaub",
		Start: cal.DateOf(2014, time.August, 3),
		End:   cal.DateOf(2014, time.August, 4),
		Color: Color{0xdc, 0x32, 0x2f},
	})

	doc := s.Serialize()
	rec, ok := doc["1"]
	require.True(t, ok)
	assert.Equal(t, "2014-08-03", rec.Start)
	assert.Equal(t, "2014-08-04", rec.End)
	assert.Equal(t, "#dc322f", rec.Color)
}

func TestDeserializeRejectsMalformedDocuments(t *testing.T) {
	good := Record{Start: "2014-08-03", End: "2014-08-04", Color: "#dc322f"}

	cases := map[string]Document{
		"bad identifier":  {"x": good},
		"zero identifier": {"0": good},
		"negative id":     {"-1": good},
		"bad start":       {"1": {Start: "03.08.2014", End: "2014-08-04", Color: "#dc322f"}},
		"bad end":         {"1": {Start: "2014-08-03", End: "2014-02-30", Color: "#dc322f"}},
		"bad color":       {"1": {Start: "2014-08-03", End: "2014-08-04", Color: "red"}},
		"missing fields":  {"1": {}},
	}

	for name, doc := range cases {
		_, err := Deserialize(doc)
		var ferr *FormatError
		assert.ErrorAs(t, err, &ferr, name)
	}
}

func TestDeserializeErrorKinds(t *testing.T) {
	_, err := Deserialize(Document{"1": {Start: "nope", End: "2014-08-04", Color: "#dc322f"}})
	assert.ErrorIs(t, err, cal.ErrInvalidDate)

	_, err = Deserialize(Document{"1": {Start: "2014-08-03", End: "2014-08-04", Color: "nope"}})
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestDecodeRejectsBadJSON(t *testing.T) {
	_, err := Decode([]byte(`{`))
	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestFailedDeserializeLeavesExistingStoreUsable(t *testing.T) {
	s := New()
	s.Commit(Entry{
		Start: cal.DateOf(2014, time.August, 3),
		End:   cal.DateOf(2014, time.August, 4),
		Color: Color{0xdc, 0x32, 0x2f},
	})

	_, err := Decode([]byte(`{"1":{"start":"bad"}}`))
	require.Error(t, err)

	// The prior in-memory store is untouched by the failed load.
	assert.Len(t, s.Entries(), 1)
	assert.True(t, s.CanUndo())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kalender.json")

	s := New()
	s.Commit(Entry{
		Title: "Urlaub",
		Start: cal.DateOf(2014, time.August, 3),
		End:   cal.DateOf(2014, time.August, 4),
		Color: Color{0x26, 0x8b, 0xd2},
	})
	require.True(t, s.Modified())

	require.NoError(t, s.Save(path))
	assert.False(t, s.Modified(), "save clears the modified flag")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Serialize(), loaded.Serialize())
}

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Empty(t, s.Entries())
	assert.False(t, s.Modified())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#dc322f")
	require.NoError(t, err)
	assert.Equal(t, Color{0xdc, 0x32, 0x2f}, c)
	assert.Equal(t, "#dc322f", c.String())

	for _, bad := range []string{"", "#dc322", "#dc322f0", "dc322f", "#zzzzzz"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, "input %q", bad)
	}
}
