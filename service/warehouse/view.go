package warehouse

import (
	"fmt"

	"github.com/hhyeonhee/ULTRA/model"
)

// SlotView is one display cell of the layout.
type SlotView struct {
	Col         int    `json:"col"`
	Index       int    `json:"index"`
	Empty       bool   `json:"empty"`
	ProductNo   string `json:"product_no,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	Qty         int    `json:"qty"`
	Unit        string `json:"unit,omitempty"`
	Memo        string `json:"memo,omitempty"`
}

// ColumnView is one column of the layout with its fixed run of slots.
type ColumnView struct {
	Col    int        `json:"col"`
	Alias  string     `json:"alias,omitempty"`
	Header string     `json:"header"`
	Slots  []SlotView `json:"slots"`
}

// View is the materialized layout of the active warehouse.
type View struct {
	Warehouse string       `json:"warehouse"`
	Columns   []ColumnView `json:"columns"`
}

// View rebuilds the layout of the active warehouse: columns 1..columnCount,
// slots 1..10 each, looked up against the slot map. Slot records beyond the
// column range simply don't materialize; the view range is a subset of the
// slot map's domain.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildView(s.selected, s.colCount)
}

// ViewOf materializes the layout of any known warehouse without touching the
// selection. The read-only query surface uses it.
func (s *Session) ViewOf(name string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(name)
	if i < 0 {
		return View{}, ErrUnknownWarehouse
	}
	wh := s.warehouses[i]
	return s.buildView(wh, s.zones.ColumnCount(wh)), nil
}

func (s *Session) buildView(warehouse string, colCount int) View {
	v := View{Warehouse: warehouse}
	if warehouse == "" {
		return v
	}
	for col := 1; col <= colCount; col++ {
		cv := ColumnView{
			Col:   col,
			Alias: s.zones.Alias(warehouse, col),
		}
		cv.Header = columnHeader(col, cv.Alias)
		for slot := 1; slot <= model.SlotsPerColumn; slot++ {
			sv := SlotView{Col: col, Index: slot, Empty: true}
			d := s.slots.Get(model.SlotKey{Warehouse: warehouse, Col: col, Slot: slot})
			if !d.Blank() {
				sv.Empty = false
				sv.ProductNo = d.ProductNo
				sv.ProductName = d.ProductName
				sv.Qty = d.Qty
				sv.Unit = d.Unit
				sv.Memo = d.Memo
			}
			cv.Slots = append(cv.Slots, sv)
		}
		v.Columns = append(v.Columns, cv)
	}
	return v
}

func columnHeader(col int, alias string) string {
	if alias == "" {
		return fmt.Sprintf("Col %02d", col)
	}
	return fmt.Sprintf("Col %02d (%s)", col, alias)
}
