package warehouse

import (
	"strings"

	"github.com/hhyeonhee/ULTRA/model"
)

// AddWarehouse creates a warehouse with the default column count and no
// slots, and selects it. Names are unique case-insensitively.
func (s *Session) AddWarehouse(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if s.indexOf(name) >= 0 {
		return ErrDuplicateWarehouse
	}
	s.warehouses = append(s.warehouses, name)
	s.zones.SetColumnCount(name, model.DefaultColumnCount)
	s.selectWarehouse(name)
	return nil
}

// RemoveWarehouse destroys a warehouse: every slot record, every column
// alias and the zone entry go with it. Selection moves to the warehouse at
// the same list position, clamped. An empty registry is refilled with the
// default warehouse.
func (s *Session) RemoveWarehouse(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(name)
	if idx < 0 {
		return ErrUnknownWarehouse
	}
	target := s.warehouses[idx]
	s.slots.DropWarehouse(target)
	s.zones.Drop(target)
	s.warehouses = append(s.warehouses[:idx], s.warehouses[idx+1:]...)
	s.ensureDefault()
	if idx >= len(s.warehouses) {
		idx = len(s.warehouses) - 1
	}
	s.selectWarehouse(s.warehouses[idx])
	return nil
}

// RenameWarehouse relocates the zone entry, every column alias and every
// slot record from old to new. No data is dropped. Fails when new is empty,
// old is unknown, or new collides with an existing name (old included).
func (s *Session) RenameWarehouse(oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	idx := s.indexOf(oldName)
	if idx < 0 {
		return ErrUnknownWarehouse
	}
	if s.indexOf(newName) >= 0 {
		return ErrDuplicateWarehouse
	}
	oldDisplay := s.warehouses[idx]
	s.warehouses[idx] = newName
	s.zones.Rename(oldDisplay, newName)
	s.slots.Rekey(oldDisplay, newName)
	if model.FoldName(s.selected) == model.FoldName(oldDisplay) {
		s.selectWarehouse(newName)
	}
	return nil
}

// SetColumnCount updates the active warehouse's column count, clamped to at
// least one. Shrinking does not delete slot records beyond the new count:
// they fall outside the view but stay addressable and reappear when the
// count grows back.
func (s *Session) SetColumnCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return ErrUnknownWarehouse
	}
	if n < 1 {
		n = 1
	}
	s.zones.SetColumnCount(s.selected, n)
	s.colCount = n
	return nil
}

// AddColumn grows the active warehouse by one column.
func (s *Session) AddColumn() error {
	s.mu.Lock()
	n := s.colCount + 1
	s.mu.Unlock()
	return s.SetColumnCount(n)
}

// RemoveColumn shrinks the active warehouse by one column, to no fewer
// than one.
func (s *Session) RemoveColumn() error {
	s.mu.Lock()
	n := s.colCount - 1
	s.mu.Unlock()
	return s.SetColumnCount(n)
}

// RenameColumn sets the display alias for a column of the active warehouse.
// An empty alias removes it.
func (s *Session) RenameColumn(col int, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return ErrUnknownWarehouse
	}
	s.zones.SetAlias(s.selected, col, strings.TrimSpace(alias))
	return nil
}
