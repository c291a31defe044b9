// Package shortcut expands user-defined abbreviations at word commit.
// The table is bounded, keeps insertion order for export, and imports
// are all-or-nothing.
package shortcut

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// MaxEntries bounds the table. New abbreviations beyond the bound are
// rejected; existing ones can still be redefined.
const MaxEntries = 200

// ErrFull is returned by Set when the table is at capacity.
var ErrFull = errors.New("shortcut: table full")

// Entry is one abbreviation pair. Method scopes it to one typing
// convention ("telex" or "vni"); empty means both.
type Entry struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Method string `json:"method,omitempty"`
}

type fileFormat struct {
	Shortcuts []Entry `json:"shortcuts"`
}

const schemaSrc = `{
	"type": "object",
	"required": ["shortcuts"],
	"properties": {
		"shortcuts": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["from", "to"],
				"properties": {
					"from": {"type": "string", "minLength": 1},
					"to": {"type": "string"},
					"method": {"enum": ["", "telex", "vni"]}
				}
			}
		}
	}
}`

var fileSchema = jsonschema.MustCompileString("shortcuts.schema.json", schemaSrc)

// Table maps abbreviations to their expansions. Safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	m     map[string]Entry
	order []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{m: make(map[string]Entry)}
}

// NewDefaultTable returns a table preloaded with the stock abbreviations.
func NewDefaultTable() *Table {
	t := NewTable()
	t.Set("vn", "Việt Nam")
	t.Set("hn", "Hà Nội")
	t.Set("hcm", "Hồ Chí Minh")
	return t
}

// Set adds or redefines an abbreviation available under both methods.
func (t *Table) Set(from, to string) error {
	return t.SetScoped(Entry{From: from, To: to})
}

// SetScoped adds or redefines an abbreviation with its method scope.
func (t *Table) SetScoped(e Entry) error {
	if e.From == "" {
		return errors.New("shortcut: empty abbreviation")
	}
	switch e.Method {
	case "", "telex", "vni":
	default:
		return fmt.Errorf("shortcut: unknown method %q", e.Method)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.m[e.From]; !ok {
		if len(t.order) >= MaxEntries {
			return ErrFull
		}
		t.order = append(t.order, e.From)
	}
	t.m[e.From] = e
	return nil
}

// Delete removes an abbreviation, reporting whether it existed.
func (t *Table) Delete(from string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.m[from]; !ok {
		return false
	}
	delete(t.m, from)
	for i, f := range t.order {
		if f == from {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Lookup returns the expansion for a committed word under the active
// method.
func (t *Table) Lookup(word, method string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.m[word]
	if !ok || (e.Method != "" && e.Method != method) {
		return "", false
	}
	return e.To, true
}

// Len returns the number of abbreviations held.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// Entries returns the abbreviations in insertion order.
func (t *Table) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, 0, len(t.order))
	for _, from := range t.order {
		out = append(out, t.m[from])
	}
	return out
}

// ExportJSON writes the table in the interchange format, preserving
// insertion order.
func (t *Table) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fileFormat{Shortcuts: t.Entries()})
}

// ImportJSON replaces the table's contents with the file's. The file is
// validated and size-checked in full before anything changes; on error
// the table is left untouched.
func (t *Table) ImportJSON(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("shortcut: read import: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("shortcut: parse import: %w", err)
	}
	if err := fileSchema.Validate(doc); err != nil {
		return fmt.Errorf("shortcut: validate import: %w", err)
	}
	var ff fileFormat
	if err := json.Unmarshal(raw, &ff); err != nil {
		return fmt.Errorf("shortcut: parse import: %w", err)
	}
	m := make(map[string]Entry, len(ff.Shortcuts))
	order := make([]string, 0, len(ff.Shortcuts))
	for _, e := range ff.Shortcuts {
		if _, dup := m[e.From]; !dup {
			order = append(order, e.From)
		}
		m[e.From] = e
	}
	if len(order) > MaxEntries {
		return fmt.Errorf("shortcut: import holds %d entries, limit is %d", len(order), MaxEntries)
	}
	t.mu.Lock()
	t.m = m
	t.order = order
	t.mu.Unlock()
	return nil
}
