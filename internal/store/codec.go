package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"kalender/internal/cal"
)

// Record is the persisted form of one entry. Dates are ISO-8601, the
// color is a hex RGB string.
type Record struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

// Document maps string-encoded identifiers to records. Tombstones are
// never part of a document, and neither is undo/redo history.
type Document map[string]Record

// FormatError reports a malformed document. Deserialization fails as a
// whole; no store is partially populated.
type FormatError struct {
	Key string
	Err error
}

func (e *FormatError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("malformed document: %v", e.Err)
	}
	return fmt.Sprintf("malformed document: entry %q: %v", e.Key, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Serialize produces the document for every non-deleted entry.
func (s *Store) Serialize() Document {
	doc := Document{}
	for id, e := range s.entries {
		if e.Deleted {
			continue
		}
		doc[strconv.Itoa(id)] = Record{
			Title: e.Title,
			Notes: e.Notes,
			Start: e.Start.String(),
			End:   e.End.String(),
			Color: e.Color.String(),
		}
	}
	return doc
}

// Deserialize builds a fresh store from a document. The new store has
// empty undo/redo logs and is not marked modified. Any malformed
// identifier, date or color fails the whole document with a FormatError.
func Deserialize(doc Document) (*Store, error) {
	s := New()
	for key, rec := range doc {
		id, err := strconv.Atoi(key)
		if err != nil || id <= 0 {
			return nil, &FormatError{Key: key, Err: errors.New("identifier must be a positive integer")}
		}

		start, err := cal.ParseDate(rec.Start)
		if err != nil {
			return nil, &FormatError{Key: key, Err: err}
		}
		end, err := cal.ParseDate(rec.End)
		if err != nil {
			return nil, &FormatError{Key: key, Err: err}
		}
		color, err := ParseColor(rec.Color)
		if err != nil {
			return nil, &FormatError{Key: key, Err: err}
		}

		s.entries[id] = Entry{
			ID:    id,
			Title: rec.Title,
			Notes: rec.Notes,
			Start: start,
			End:   end,
			Color: color,
		}
	}
	return s, nil
}

// Encode renders the store's document as JSON.
func (s *Store) Encode() ([]byte, error) {
	return json.Marshal(s.Serialize())
}

// Decode parses JSON into a fresh store.
func Decode(data []byte) (*Store, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Err: err}
	}
	return Deserialize(doc)
}

// Load reads a document file into a fresh store. A missing file is not
// an error: it yields an empty store, like opening a new calendar.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	return Decode(data)
}

// Save writes the document atomically (temp file + rename) and clears
// the modified flag on success.
func (s *Store) Save(path string) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".kalender-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	s.modified = false
	return nil
}
