package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a named item is not held by a ledger.
var ErrNotFound = errors.New("item not found")

// Ledger is a name-keyed set of items. Listing order is insertion order.
// The zero value is not usable; create ledgers with NewLedger.
type Ledger struct {
	items map[string]*Item
	order []string
}

// NewLedger creates an empty Ledger.
//
// Postcondition: returned Ledger is ready for use with zero items.
func NewLedger() *Ledger {
	return &Ledger{items: make(map[string]*Item)}
}

// Add places item in the ledger.
//
// Precondition: item is non-nil with a non-empty Name.
// Postcondition: Returns false and leaves the ledger unchanged if an item with
// the same name is already held.
func (l *Ledger) Add(item *Item) bool {
	if _, exists := l.items[item.Name]; exists {
		return false
	}
	l.items[item.Name] = item
	l.order = append(l.order, item.Name)
	return true
}

// Remove takes the named item out of the ledger.
//
// Postcondition: on success the item is no longer held and is returned;
// otherwise the ledger is unchanged and ErrNotFound is returned.
func (l *Ledger) Remove(name string) (*Item, error) {
	item, ok := l.items[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	delete(l.items, name)
	for i, n := range l.order {
		if n == name {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return item, nil
}

// Has reports whether the named item is held.
func (l *Ledger) Has(name string) bool {
	_, ok := l.items[name]
	return ok
}

// Get returns the named item if held.
func (l *Ledger) Get(name string) (*Item, bool) {
	item, ok := l.items[name]
	return item, ok
}

// Len returns the number of items held.
func (l *Ledger) Len() int {
	return len(l.order)
}

// IsEmpty reports whether the ledger holds no items.
func (l *Ledger) IsEmpty() bool {
	return l.Len() == 0
}

// Items returns the held items in insertion order.
//
// Postcondition: returned slice is a copy; mutations do not affect the ledger.
func (l *Ledger) Items() []*Item {
	out := make([]*Item, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.items[name])
	}
	return out
}

// String lists the held items one per line as "NAME: description".
func (l *Ledger) String() string {
	lines := make([]string, 0, len(l.order))
	for _, name := range l.order {
		lines = append(lines, name+": "+l.items[name].Description)
	}
	return strings.Join(lines, "\n")
}

// Transfer moves the named item from one ledger to another.
//
// Precondition: from and to are distinct ledgers.
// Postcondition: on success the item is held by to and not by from; on error
// neither ledger is modified.
func Transfer(from, to *Ledger, name string) (*Item, error) {
	item, ok := from.Get(name)
	if !ok {
		return nil, fmt.Errorf("transfer %q: %w", name, ErrNotFound)
	}
	if to.Has(name) {
		return nil, fmt.Errorf("transfer %q: destination already holds it", name)
	}
	if _, err := from.Remove(name); err != nil {
		return nil, fmt.Errorf("transfer %q: %w", name, err)
	}
	to.Add(item)
	return item, nil
}
