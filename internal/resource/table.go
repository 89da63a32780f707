package resource

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

const (
	// DefaultPackageID is the package byte used for application tables
	DefaultPackageID uint8 = 0x7f

	// MaxEntriesPerKind is the number of entries of one kind a table can hold
	MaxEntriesPerKind = 0xffff
)

// ErrTableFull is returned when a kind has no identifiers left
var ErrTableFull = errors.New("resource table full")

type tableEntry struct {
	entry    Entry
	str      string
	color    Color
	drawable Drawable
}

// Table is an in-memory Provider. Entries receive stable identifiers in
// insertion order per kind; putting an existing name replaces its value
// and keeps the identifier.
type Table struct {
	mu      sync.RWMutex
	pkg     string
	pkgID   uint8
	names   map[Kind]map[string]ID
	entries map[ID]*tableEntry
}

var _ Provider = (*Table)(nil)

// NewTable creates an empty table serving pkg
func NewTable(pkg string, pkgID uint8) *Table {
	names := make(map[Kind]map[string]ID, len(Kinds))
	for _, k := range Kinds {
		names[k] = make(map[string]ID)
	}
	return &Table{
		pkg:     pkg,
		pkgID:   pkgID,
		names:   names,
		entries: make(map[ID]*tableEntry),
	}
}

func (t *Table) put(name string, kind Kind, fill func(e *tableEntry)) (ID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.names[kind][name]; ok {
		fill(t.entries[id])
		return id, nil
	}
	if len(t.names[kind]) >= MaxEntriesPerKind {
		return 0, fmt.Errorf("%w: %d %s entries, cannot add %q", ErrTableFull, MaxEntriesPerKind, kind, name)
	}

	id := NewID(t.pkgID, kind, uint16(len(t.names[kind])+1))
	e := &tableEntry{entry: Entry{Package: t.pkg, Kind: kind, Name: name}}
	fill(e)
	t.names[kind][name] = id
	t.entries[id] = e
	return id, nil
}

// PutString stores a string resource. Putting an existing name replaces its value.
func (t *Table) PutString(name, value string) (ID, error) {
	return t.put(name, KindString, func(e *tableEntry) { e.str = value })
}

// PutColor stores a color resource
func (t *Table) PutColor(name string, value Color) (ID, error) {
	return t.put(name, KindColor, func(e *tableEntry) { e.color = value })
}

// PutDrawable stores a drawable resource. The drawable name defaults to the entry name.
func (t *Table) PutDrawable(name string, value Drawable) (ID, error) {
	if value.Name == "" {
		value.Name = name
	}
	return t.put(name, KindDrawable, func(e *tableEntry) { e.drawable = value })
}

// Package returns the namespace of the table
func (t *Table) Package() string {
	return t.pkg
}

// Identifier returns the id of name/kind, or zero when pkg names another namespace
func (t *Table) Identifier(name string, kind Kind, pkg string) ID {
	if pkg != "" && pkg != t.pkg {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	byName, ok := t.names[kind]
	if !ok {
		return 0
	}
	return byName[name]
}

func (t *Table) lookup(id ID, kind Kind) (*tableEntry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[id]
	if !ok {
		return nil, NotFound(id)
	}
	if e.entry.Kind != kind {
		return nil, fmt.Errorf("%w: %s is a %s, not a %s", ErrKindMismatch, e.entry, e.entry.Kind, kind)
	}
	return e, nil
}

// Entry reverse-maps id to its symbolic identity
func (t *Table) Entry(id ID) (Entry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[id]
	if !ok {
		return Entry{}, NotFound(id)
	}
	return e.entry, nil
}

// String returns the string stored under id
func (t *Table) String(id ID) (string, error) {
	e, err := t.lookup(id, KindString)
	if err != nil {
		return "", err
	}
	return e.str, nil
}

// Color returns the color stored under id
func (t *Table) Color(id ID) (Color, error) {
	e, err := t.lookup(id, KindColor)
	if err != nil {
		return 0, err
	}
	return e.color, nil
}

// Drawable returns the drawable stored under id
func (t *Table) Drawable(id ID) (Drawable, error) {
	e, err := t.lookup(id, KindDrawable)
	if err != nil {
		return Drawable{}, err
	}
	return e.drawable, nil
}

// Entries lists every entry sorted by kind and name
func (t *Table) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind.id() < out[j].Kind.id()
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of entries
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
