// Package surface models the root rendering element whose class list drives
// which style rules apply.
package surface

import (
	"sort"
	"strings"
	"sync"
)

// ClassList is the part of a rendering surface that presentation observers write to.
type ClassList interface {
	ReplaceClasses(remove []string, add ...string)
}

// Root is the designated root element of the rendering surface.
// Its classes behave as a set.
type Root struct {
	mu      sync.RWMutex
	classes map[string]struct{}
	version uint64
}

var _ ClassList = (*Root)(nil)

// NewRoot creates a root element carrying the given classes.
func NewRoot(classes ...string) *Root {
	r := &Root{classes: make(map[string]struct{})}
	r.AddClass(classes...)
	r.version = 0
	return r
}

// AddClass adds each non-empty name. Present names are left as they are.
func (r *Root) AddClass(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.add(names) {
		r.version++
	}
}

// ReplaceClasses removes every name in remove and then adds add, under one lock.
// Readers see the list before or after the swap, never in between.
func (r *Root) ReplaceClasses(remove []string, add ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := r.snapshot()
	r.remove(remove)
	r.add(add)
	if !sameSet(before, r.classes) {
		r.version++
	}
}

func (r *Root) add(names []string) bool {
	changed := false
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := r.classes[name]; ok {
			continue
		}
		r.classes[name] = struct{}{}
		changed = true
	}
	return changed
}

func (r *Root) remove(names []string) {
	for _, name := range names {
		delete(r.classes, strings.TrimSpace(name))
	}
}

func (r *Root) snapshot() map[string]struct{} {
	out := make(map[string]struct{}, len(r.classes))
	for name := range r.classes {
		out[name] = struct{}{}
	}
	return out
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for name := range a {
		if _, ok := b[name]; !ok {
			return false
		}
	}
	return true
}

// HasClass reports whether name is present.
func (r *Root) HasClass(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.classes[name]
	return ok
}

// Classes returns a sorted snapshot of the class list.
func (r *Root) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.classes))
	for name := range r.classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Version increments on every effective change to the class list.
func (r *Root) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// String renders the class attribute value.
func (r *Root) String() string {
	return strings.Join(r.Classes(), " ")
}
