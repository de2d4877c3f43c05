package wishlist

import (
	"strings"
	"sync"
	"time"
)

// Entry is a saved product id and when it was first saved.
type Entry struct {
	ProductID string
	AddedAt   time.Time
}

// List is a per-session ordered set of product ids.
type List struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// New returns an empty wishlist.
func New() *List {
	return &List{now: time.Now}
}

// Add saves id. Adding an id already present keeps its original timestamp.
// It reports whether the id was newly added.
func (l *List) Add(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.indexOf(id) >= 0 {
		return false
	}
	l.entries = append(l.entries, Entry{ProductID: id, AddedAt: l.now().UTC()})
	return true
}

// Remove drops id if present.
func (l *List) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if idx := l.indexOf(strings.TrimSpace(id)); idx >= 0 {
		l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
	}
}

// Contains reports whether id is saved.
func (l *List) Contains(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.indexOf(strings.TrimSpace(id)) >= 0
}

// IDs returns the saved product ids in insertion order.
func (l *List) IDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.ProductID
	}
	return out
}

// Entries returns a copy of the saved entries in insertion order.
func (l *List) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of saved ids.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *List) indexOf(id string) int {
	for i := range l.entries {
		if l.entries[i].ProductID == id {
			return i
		}
	}
	return -1
}
