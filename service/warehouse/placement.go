package warehouse

import (
	"strings"

	"github.com/hhyeonhee/ULTRA/model"
)

// Assign drops a product onto a slot of the active warehouse. An empty slot
// gets a fresh record with quantity 1. An occupied slot is re-labelled: the
// product identity, name and unit are overwritten but a positive quantity is
// kept. Only a degenerate quantity (zero or less) resets to 1. The unit comes from
// the catalog when the product number is known, else from the caller.
func (s *Session) Assign(productNo, productName, unit string, col, slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return ErrUnknownWarehouse
	}
	key := model.SlotKey{Warehouse: s.selected, Col: col, Slot: slot}
	d := s.slots.Get(key)
	if d == nil {
		d = &model.SlotData{}
	}
	d.ProductNo = strings.TrimSpace(productNo)
	d.ProductName = strings.TrimSpace(productName)
	if p := s.findProduct(productNo); p != nil {
		d.Unit = p.Unit
	} else {
		d.Unit = strings.TrimSpace(unit)
	}
	if d.Qty <= 0 {
		d.Qty = 1
	}
	s.slots.Set(key, d)
	s.recalcTotals()
	return nil
}

// Move relocates a slot's contents within the active warehouse. Moving onto
// the same product merges quantities and clears the source; anything else is
// a full swap: the destination's previous contents land back at the source.
// Same source and destination, or an empty source, is a no-op.
func (s *Session) Move(fromCol, fromSlot, toCol, toSlot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return ErrUnknownWarehouse
	}
	if fromCol == toCol && fromSlot == toSlot {
		return nil
	}
	from := model.SlotKey{Warehouse: s.selected, Col: fromCol, Slot: fromSlot}
	to := model.SlotKey{Warehouse: s.selected, Col: toCol, Slot: toSlot}
	src := s.slots.Get(from)
	if src == nil {
		return nil
	}
	dst := s.slots.Get(to)
	if dst != nil && model.FoldName(dst.ProductNo) == model.FoldName(src.ProductNo) {
		dst.Qty += src.Qty
		s.slots.Remove(from)
	} else {
		s.slots.Set(to, src)
		if dst != nil {
			s.slots.Set(from, dst)
		} else {
			s.slots.Remove(from)
		}
	}
	s.recalcTotals()
	return nil
}

// Clear empties a slot of the active warehouse unconditionally.
func (s *Session) Clear(col, slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return ErrUnknownWarehouse
	}
	s.slots.Remove(model.SlotKey{Warehouse: s.selected, Col: col, Slot: slot})
	s.recalcTotals()
	return nil
}

// AddStock adds quantity for a catalog product in the active warehouse. The
// first slot already holding the product (in col/slot order) absorbs the
// quantity; otherwise the first empty slot within the current column range
// receives a new record. With no slot free the operation fails and nothing
// changes; capacity grows only by adding a column.
func (s *Session) AddStock(productNo string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return ErrUnknownWarehouse
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	p := s.findProduct(productNo)
	if p == nil {
		return ErrUnknownProduct
	}

	for _, e := range s.slots.Query(s.selected) {
		if !e.Data.Blank() && model.FoldName(e.Data.ProductNo) == model.FoldName(p.Number) {
			e.Data.Qty += qty
			s.recalcTotals()
			return nil
		}
	}

	for col := 1; col <= s.colCount; col++ {
		for slot := 1; slot <= model.SlotsPerColumn; slot++ {
			key := model.SlotKey{Warehouse: s.selected, Col: col, Slot: slot}
			if !s.slots.Get(key).Blank() {
				continue
			}
			s.slots.Set(key, &model.SlotData{
				ProductNo:   p.Number,
				ProductName: p.Name,
				Qty:         qty,
				Unit:        p.Unit,
			})
			s.recalcTotals()
			return nil
		}
	}
	return ErrNoEmptySlot
}

// SetUnit applies a unit to every occupied slot of a product within the
// active warehouse only. Other warehouses keep their units.
func (s *Session) SetUnit(productNo, unit string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return ErrUnknownWarehouse
	}
	p := s.findProduct(productNo)
	if p == nil {
		return ErrUnknownProduct
	}
	unit = strings.TrimSpace(unit)
	for _, e := range s.slots.Query(s.selected) {
		if !e.Data.Blank() && model.FoldName(e.Data.ProductNo) == model.FoldName(p.Number) {
			e.Data.Unit = unit
		}
	}
	s.recalcTotals()
	return nil
}
