// Package store holds the ordered, selectable list of scan matches between
// scan completion and deletion. The store is owned by the control loop;
// nothing else mutates it.
package store

import "github.com/gunktools/gunk/internal/scan"

// Item is one listed match with its selection state. Newly discovered
// matches start selected.
type Item struct {
	scan.Entry
	Selected bool
}

// Store is the result list for the current scan, in discovery order.
// Paths are unique within one scan.
type Store struct {
	items []*Item
	index map[string]*Item
}

// New returns an empty Store.
func New() *Store {
	return &Store{index: make(map[string]*Item)}
}

// Add appends a discovered entry, selected by default. Duplicate paths are
// ignored.
func (s *Store) Add(entry scan.Entry) {
	if _, ok := s.index[entry.Path]; ok {
		return
	}
	item := &Item{Entry: entry, Selected: true}
	s.items = append(s.items, item)
	s.index[entry.Path] = item
}

// ReplaceAll discards the current list and installs entries in order.
func (s *Store) ReplaceAll(entries []scan.Entry) {
	s.Clear()
	for _, e := range entries {
		s.Add(e)
	}
}

// Clear empties the store (a new scan is starting).
func (s *Store) Clear() {
	s.items = nil
	s.index = make(map[string]*Item)
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Items returns the items in discovery order. The slice is shared; callers
// must not reorder it.
func (s *Store) Items() []*Item {
	return s.items
}

// Get returns the item for path, or nil.
func (s *Store) Get(path string) *Item {
	return s.index[path]
}

// Toggle flips the selection state of path and reports whether the path
// was present.
func (s *Store) Toggle(path string) bool {
	item, ok := s.index[path]
	if !ok {
		return false
	}
	item.Selected = !item.Selected
	return true
}

// SelectAll marks every item selected.
func (s *Store) SelectAll() {
	for _, item := range s.items {
		item.Selected = true
	}
}

// DeselectAll clears every selection.
func (s *Store) DeselectAll() {
	for _, item := range s.items {
		item.Selected = false
	}
}

// Remove drops path from the list after a successful deletion. It reports
// whether the path was present.
func (s *Store) Remove(path string) bool {
	if _, ok := s.index[path]; !ok {
		return false
	}
	delete(s.index, path)
	for i, item := range s.items {
		if item.Path == path {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// SelectedPaths returns the paths of all selected items in list order.
func (s *Store) SelectedPaths() []string {
	var paths []string
	for _, item := range s.items {
		if item.Selected {
			paths = append(paths, item.Path)
		}
	}
	return paths
}

// AnySelected reports whether at least one item is selected. Deletion may
// only be invoked when this is true.
func (s *Store) AnySelected() bool {
	for _, item := range s.items {
		if item.Selected {
			return true
		}
	}
	return false
}

// AllSelected reports whether every item is selected. False when empty.
func (s *Store) AllSelected() bool {
	if len(s.items) == 0 {
		return false
	}
	for _, item := range s.items {
		if !item.Selected {
			return false
		}
	}
	return true
}

// TotalSize sums the sizes of all items.
func (s *Store) TotalSize() int64 {
	var total int64
	for _, item := range s.items {
		total += item.Size
	}
	return total
}

// SelectedSize sums the sizes of selected items.
func (s *Store) SelectedSize() int64 {
	var total int64
	for _, item := range s.items {
		if item.Selected {
			total += item.Size
		}
	}
	return total
}
