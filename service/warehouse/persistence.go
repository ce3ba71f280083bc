package warehouse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hhyeonhee/ULTRA/model"
	"github.com/hhyeonhee/ULTRA/store"
)

// Header aliases accepted on read. The first spelling is canonical and what
// Save writes for new files.
var (
	catalogAliases = map[string][]string{
		"number":      {"number", "no", "productno", "code"},
		"name":        {"name", "productname"},
		"attribute":   {"attribute", "attr"},
		"category":    {"category", "cat"},
		"subcategory": {"subcategory", "subcat"},
		"unit":        {"unit"},
	}
	zoneAliases = map[string][]string{
		"warehouse": {"warehouse", "wh"},
		"columns":   {"columns", "colcount", "cols"},
		"col":       {"col", "colno"},
		"alias":     {"alias", "colname"},
	}
	statusAliases = map[string][]string{
		"warehouse":   {"warehouse", "wh"},
		"col":         {"col", "column"},
		"slot":        {"slot", "cell"},
		"productno":   {"productno", "number", "no"},
		"productname": {"productname", "name"},
		"qty":         {"qty", "quantity"},
		"unit":        {"unit"},
		"memo":        {"memo", "note"},
	}
)

var defaultCatalogHeader = []string{"number", "name", "attribute", "category", "subcategory", "unit"}

// Save writes all three resources, each as a full rewrite.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveStatus(); err != nil {
		return err
	}
	if err := s.saveZones(); err != nil {
		return err
	}
	return s.saveCatalog()
}

// Cancel discards every unsaved mutation by reloading all three resources
// from disk. The previously selected warehouse is re-selected if it still
// exists, else the first available one. A failed reload leaves the in-memory
// state untouched.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll()
}

// load

// loadAll stages all three resources and commits only when every load
// succeeded, so a partially-read resource can never corrupt the live
// registry.
func (s *Session) loadAll() error {
	products, err := loadCatalog(s.files.Products)
	if err != nil {
		return err
	}
	warehouses, zones, err := loadZones(s.files.Zones)
	if err != nil {
		return err
	}
	slots, err := loadStatus(s.files.Status)
	if err != nil {
		return err
	}

	prev := s.selected
	s.products = products
	s.warehouses = warehouses
	s.zones = zones
	s.slots = slots
	s.rebuildFilterOptions()
	s.ensureDefault()
	if i := s.indexOf(prev); prev != "" && i >= 0 {
		s.selectWarehouse(s.warehouses[i])
	} else {
		s.selectWarehouse(s.warehouses[0])
	}
	return nil
}

// loadCatalog reads the product list. Rows missing a number or a name are
// skipped; unknown columns ride along in the pass-through map.
func loadCatalog(path string) ([]*model.Product, error) {
	t, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	var products []*model.Product
	for _, row := range t.Rows {
		var p model.Product
		if err := store.DecodeRow(store.NormalizeKeys(row, catalogAliases), &p); err != nil {
			continue
		}
		if p.Number == "" || p.Name == "" {
			continue
		}
		products = append(products, &p)
	}
	return products, nil
}

type zoneRow struct {
	Warehouse string `mapstructure:"warehouse"`
	Columns   int    `mapstructure:"columns"`
	Col       int    `mapstructure:"col"`
	Alias     string `mapstructure:"alias"`
}

// loadZones reads the zone resource. Summary rows and alias rows share the
// file, told apart by which fields are populated. The first row naming a
// warehouse establishes its column count (default when blank or invalid).
func loadZones(path string) ([]string, *ZoneDirectory, error) {
	t, err := store.Load(path)
	if err != nil {
		return nil, nil, err
	}
	var warehouses []string
	zones := NewZoneDirectory()
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		var zr zoneRow
		if err := store.DecodeRow(store.NormalizeKeys(row, zoneAliases), &zr); err != nil {
			continue
		}
		if zr.Warehouse == "" {
			continue
		}
		fold := model.FoldName(zr.Warehouse)
		if !seen[fold] {
			seen[fold] = true
			warehouses = append(warehouses, zr.Warehouse)
			cols := zr.Columns
			if cols <= 0 {
				cols = model.DefaultColumnCount
			}
			zones.SetColumnCount(zr.Warehouse, cols)
		}
		if zr.Col > 0 && strings.TrimSpace(zr.Alias) != "" {
			zones.SetAlias(zr.Warehouse, zr.Col, zr.Alias)
		}
	}
	return warehouses, zones, nil
}

type statusRow struct {
	Warehouse string         `mapstructure:"warehouse"`
	Col       int            `mapstructure:"col"`
	Slot      int            `mapstructure:"slot"`
	Data      model.SlotData `mapstructure:",squash"`
}

// loadStatus reads the occupancy resource. Rows with a missing key part, an
// unparseable quantity or no product identity are skipped; single-row
// corruption never aborts the load.
func loadStatus(path string) (*SlotMap, error) {
	t, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	slots := NewSlotMap()
	for _, row := range t.Rows {
		var sr statusRow
		if err := store.DecodeRow(store.NormalizeKeys(row, statusAliases), &sr); err != nil {
			continue
		}
		if sr.Warehouse == "" || sr.Col <= 0 || sr.Slot <= 0 {
			continue
		}
		if sr.Data.Blank() {
			continue
		}
		d := sr.Data
		slots.Set(model.SlotKey{Warehouse: sr.Warehouse, Col: sr.Col, Slot: sr.Slot}, &d)
	}
	return slots, nil
}

// save

func (s *Session) saveStatus() error {
	header := []string{"warehouse", "col", "slot", "productno", "productname", "qty", "unit", "memo"}
	var records [][]string
	for _, e := range s.slots.All() {
		if e.Data.Blank() {
			continue
		}
		records = append(records, []string{
			e.Key.Warehouse,
			strconv.Itoa(e.Key.Col),
			strconv.Itoa(e.Key.Slot),
			e.Data.ProductNo,
			e.Data.ProductName,
			strconv.Itoa(e.Data.Qty),
			e.Data.Unit,
			e.Data.Memo,
		})
	}
	return store.Save(s.files.Status, header, records)
}

func (s *Session) saveZones() error {
	header := []string{"warehouse", "columns", "col", "alias"}
	var records [][]string
	for _, wh := range s.warehouses {
		cols := s.zones.ColumnCount(wh)
		records = append(records, []string{wh, strconv.Itoa(cols), "", ""})
		for c := 1; c <= cols; c++ {
			if alias := s.zones.Alias(wh, c); alias != "" {
				records = append(records, []string{wh, "", strconv.Itoa(c), alias})
			}
		}
	}
	return store.Save(s.files.Zones, header, records)
}

// saveCatalog rewrites the product list under the existing file's header so
// columns the registry never consumed survive the round trip.
func (s *Session) saveCatalog() error {
	header, err := existingHeader(s.files.Products)
	if err != nil {
		return err
	}
	if len(header) == 0 {
		header = defaultCatalogHeader
	}

	var records [][]string
	for _, p := range s.products {
		rec := make([]string, len(header))
		for i, h := range header {
			rec[i] = catalogValue(p, h)
		}
		records = append(records, rec)
	}
	return store.Save(s.files.Products, header, records)
}

func existingHeader(path string) ([]string, error) {
	t, err := store.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	return t.Header, nil
}

// catalogValue resolves one header cell for a product: known columns (under
// any accepted spelling) map onto the struct fields, everything else comes
// from the pass-through map.
func catalogValue(p *model.Product, header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	for canonical, alts := range catalogAliases {
		for _, a := range alts {
			if h != a {
				continue
			}
			switch canonical {
			case "number":
				return p.Number
			case "name":
				return p.Name
			case "attribute":
				return p.Attribute
			case "category":
				return p.Category
			case "subcategory":
				return p.SubCategory
			case "unit":
				return p.Unit
			}
		}
	}
	return p.Other[h]
}
