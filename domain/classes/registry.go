// Package classes maps integer class IDs to display names and persists the
// mapping as a flat list file where the line number is the ID.
package classes

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrEmptyName is returned by Add for a name that is blank after trimming.
var ErrEmptyName = errors.New("class name is empty")

// FileName is the per-folder class list.
const FileName = "classes.txt"

// Entry is one registry row.
type Entry struct {
	ID   int
	Name string
}

// Added describes the outcome of Add.
type Added struct {
	ID      int
	Created bool
}

// Registry is the ID to name mapping. IDs are never reused and entries are
// never removed. The zero value is an empty, unbound registry.
type Registry struct {
	names map[int]string
	path  string
}

// New returns an unbound registry seeded with names, where the slice index
// is the ID. Blank names leave gaps.
func New(names []string) *Registry {
	r := &Registry{names: make(map[int]string, len(names))}
	for i, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			r.names[i] = n
		}
	}
	return r
}

// Load reads a class list file and returns a registry bound to it, so that
// later additions are written back to the same file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classes %s: %w", path, err)
	}
	r := &Registry{names: make(map[int]string), path: path}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for id := 0; sc.Scan(); id++ {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			r.names[id] = name
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan classes %s: %w", path, err)
	}
	return r, nil
}

// Bind sets the file that Add persists to. An empty path disables writes.
func (r *Registry) Bind(path string) { r.path = path }

// Path returns the bound file, if any.
func (r *Registry) Path() string { return r.path }

// Add registers name. An existing name (case-insensitive) yields its ID with
// Created false and nothing is written. A new name takes max ID + 1, or 0
// for an empty registry, and the whole table is persisted immediately. A
// failed write is returned; the in-memory entry is kept.
func (r *Registry) Add(name string) (Added, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Added{}, ErrEmptyName
	}
	for _, e := range r.Entries() {
		if strings.EqualFold(e.Name, name) {
			return Added{ID: e.ID}, nil
		}
	}
	if r.names == nil {
		r.names = make(map[int]string)
	}
	id := r.nextID()
	r.names[id] = name
	added := Added{ID: id, Created: true}
	if r.path != "" {
		if err := r.Save(r.path); err != nil {
			return added, err
		}
	}
	return added, nil
}

// Ensure adds a placeholder name for an unknown id and reports whether it
// did. Placeholders are not written on their own.
func (r *Registry) Ensure(id int) bool {
	if id < 0 {
		return false
	}
	if _, ok := r.names[id]; ok {
		return false
	}
	if r.names == nil {
		r.names = make(map[int]string)
	}
	r.names[id] = Placeholder(id)
	return true
}

// Has reports whether id is registered.
func (r *Registry) Has(id int) bool {
	_, ok := r.names[id]
	return ok
}

// Name returns the display name for id, or its placeholder.
func (r *Registry) Name(id int) string {
	if n, ok := r.names[id]; ok {
		return n
	}
	return Placeholder(id)
}

// Entries returns all rows sorted by ID.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.names))
	for id, n := range r.names {
		out = append(out, Entry{ID: id, Name: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered IDs.
func (r *Registry) Len() int { return len(r.names) }

// Save writes IDs 0..max, one name per line. Missing IDs are written as
// their placeholder so line numbers keep matching IDs.
func (r *Registry) Save(path string) error {
	var buf bytes.Buffer
	if len(r.names) > 0 {
		for id := 0; id < r.nextID(); id++ {
			buf.WriteString(r.Name(id))
			buf.WriteByte('\n')
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write classes %s: %w", path, err)
	}
	return nil
}

func (r *Registry) nextID() int {
	if len(r.names) == 0 {
		return 0
	}
	maxID := -1
	for id := range r.names {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Placeholder is the synthesized name for an ID without a registered name.
func Placeholder(id int) string { return "class_" + strconv.Itoa(id) }
