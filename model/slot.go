package model

import "strings"

const (
	// SlotsPerColumn is the fixed slot capacity of every column.
	SlotsPerColumn = 10
	// DefaultColumnCount is the column count for newly created warehouses.
	DefaultColumnCount = 4
)

// SlotKey identifies one storage position. Warehouse comparison is
// case-insensitive; Fold returns the canonical map key.
type SlotKey struct {
	Warehouse string
	Col       int
	Slot      int
}

func (k SlotKey) Fold() SlotKey {
	k.Warehouse = FoldName(k.Warehouse)
	return k
}

// SlotData is the occupancy record for a slot. Product name and unit are
// snapshots taken at assignment time, not live catalog references.
type SlotData struct {
	ProductNo   string `mapstructure:"productno" json:"product_no"`
	ProductName string `mapstructure:"productname" json:"product_name"`
	Qty         int    `mapstructure:"qty" json:"qty"`
	Unit        string `mapstructure:"unit" json:"unit"`
	Memo        string `mapstructure:"memo" json:"memo"`
}

// Blank reports whether the record carries no product identity at all.
// Blank records are treated as empty slots and never persisted.
func (d *SlotData) Blank() bool {
	return d == nil || (strings.TrimSpace(d.ProductNo) == "" && strings.TrimSpace(d.ProductName) == "")
}

// FoldName normalizes a warehouse name for case-insensitive comparison.
func FoldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
