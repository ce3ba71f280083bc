package warehouse

import (
	"sync"

	"github.com/hhyeonhee/ULTRA/config"
	"github.com/hhyeonhee/ULTRA/model"
)

// DefaultWarehouse is synthesized whenever the registry would become empty.
const DefaultWarehouse = "Main"

// Session owns every piece of mutable registry state: the catalog index,
// zone directory, slot map, the ordered warehouse list and the current
// selection. All mutation is routed through its methods; adapters never
// write fields directly. The mutex serializes the HTTP adapter; the core
// itself is single-threaded, every mutation completes (including aggregate
// recomputation) before the call returns.
type Session struct {
	mu    sync.Mutex
	files config.CSVFiles

	products      []*model.Product
	categories    []string
	subcategories []string

	warehouses []string
	selected   string
	colCount   int

	zones *ZoneDirectory
	slots *SlotMap
}

// NewSession creates an empty session bound to the given CSV resources.
// Call Load before use.
func NewSession(files config.CSVFiles) *Session {
	return &Session{
		files: files,
		zones: NewZoneDirectory(),
		slots: NewSlotMap(),
	}
}

// Load reads all three resources from disk. On any failure the session's
// prior state is left untouched.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll()
}

// SelectWarehouse switches the active warehouse and recomputes aggregates
// for it.
func (s *Session) SelectWarehouse(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(name) < 0 {
		return ErrUnknownWarehouse
	}
	s.selectWarehouse(s.displayName(name))
	return nil
}

// Selected returns the active warehouse name.
func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// WarehouseInfo is one entry of the warehouse listing.
type WarehouseInfo struct {
	Name     string `json:"name"`
	Columns  int    `json:"columns"`
	Selected bool   `json:"selected"`
}

// Warehouses lists the known warehouses in registry order.
func (s *Session) Warehouses() []WarehouseInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]WarehouseInfo, 0, len(s.warehouses))
	for _, name := range s.warehouses {
		out = append(out, WarehouseInfo{
			Name:     name,
			Columns:  s.zones.ColumnCount(name),
			Selected: model.FoldName(name) == model.FoldName(s.selected),
		})
	}
	return out
}

// ColumnCount returns the active warehouse's column count.
func (s *Session) ColumnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colCount
}

// internal helpers; callers hold the lock

// selectWarehouse sets the selection and syncs the column count from the
// zone directory.
func (s *Session) selectWarehouse(name string) {
	s.selected = name
	s.colCount = s.zones.ColumnCount(name)
	s.recalcTotals()
}

// indexOf finds a warehouse by case-insensitive name, -1 if absent.
func (s *Session) indexOf(name string) int {
	fold := model.FoldName(name)
	for i, w := range s.warehouses {
		if model.FoldName(w) == fold {
			return i
		}
	}
	return -1
}

// displayName returns the list's cased form of a warehouse name.
func (s *Session) displayName(name string) string {
	if i := s.indexOf(name); i >= 0 {
		return s.warehouses[i]
	}
	return name
}

// ensureDefault synthesizes the default warehouse when the registry is empty.
func (s *Session) ensureDefault() {
	if len(s.warehouses) == 0 {
		s.warehouses = append(s.warehouses, DefaultWarehouse)
		s.zones.SetColumnCount(DefaultWarehouse, model.DefaultColumnCount)
	}
}

// recalcTotals recomputes per-product aggregates over the occupied slots of
// the selected warehouse only: TotalQty sums max(0, qty) of matching slots,
// ActiveUnit is the first non-empty slot unit in (col, slot) order, falling
// back to the catalog unit.
func (s *Session) recalcTotals() {
	qty := make(map[string]int)
	unit := make(map[string]string)
	for _, e := range s.slots.Query(s.selected) {
		if e.Data.Blank() || e.Data.ProductNo == "" {
			continue
		}
		no := model.FoldName(e.Data.ProductNo)
		q := e.Data.Qty
		if q < 0 {
			q = 0
		}
		qty[no] += q
		if _, ok := unit[no]; !ok && e.Data.Unit != "" {
			unit[no] = e.Data.Unit
		}
	}
	for _, p := range s.products {
		no := model.FoldName(p.Number)
		p.TotalQty = qty[no]
		if u, ok := unit[no]; ok {
			p.ActiveUnit = u
		} else {
			p.ActiveUnit = p.Unit
		}
	}
}
