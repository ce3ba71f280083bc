package warehouse

import (
	"sort"

	"github.com/hhyeonhee/ULTRA/model"
)

// slotEntry pairs the display-cased key with its record. Map lookups use
// the folded key; the display key is what persistence writes back out.
type slotEntry struct {
	Key  model.SlotKey
	Data *model.SlotData
}

// SlotMap is the authoritative (warehouse, col, slot) → record store.
// It enforces key uniqueness and nothing else; recomputation is the
// caller's job.
type SlotMap struct {
	entries map[model.SlotKey]slotEntry
}

func NewSlotMap() *SlotMap {
	return &SlotMap{entries: make(map[model.SlotKey]slotEntry)}
}

// Get returns the record for a key, or nil if the slot is empty.
func (m *SlotMap) Get(key model.SlotKey) *model.SlotData {
	if e, ok := m.entries[key.Fold()]; ok {
		return e.Data
	}
	return nil
}

// Set stores a record under key, overwriting any previous record.
func (m *SlotMap) Set(key model.SlotKey, data *model.SlotData) {
	m.entries[key.Fold()] = slotEntry{Key: key, Data: data}
}

// Remove deletes the record for a key. Removing an empty key is a no-op.
func (m *SlotMap) Remove(key model.SlotKey) {
	delete(m.entries, key.Fold())
}

// Len returns the number of occupied slots across all warehouses.
func (m *SlotMap) Len() int {
	return len(m.entries)
}

// Query returns the occupied slots of one warehouse ordered by (col, slot).
func (m *SlotMap) Query(warehouse string) []slotEntry {
	fold := model.FoldName(warehouse)
	var out []slotEntry
	for k, e := range m.entries {
		if k.Warehouse == fold {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.Col != out[j].Key.Col {
			return out[i].Key.Col < out[j].Key.Col
		}
		return out[i].Key.Slot < out[j].Key.Slot
	})
	return out
}

// All returns every entry in persistence order: (warehouse, col, slot).
func (m *SlotMap) All() []slotEntry {
	out := make([]slotEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := model.FoldName(out[i].Key.Warehouse), model.FoldName(out[j].Key.Warehouse)
		if wi != wj {
			return wi < wj
		}
		if out[i].Key.Col != out[j].Key.Col {
			return out[i].Key.Col < out[j].Key.Col
		}
		return out[i].Key.Slot < out[j].Key.Slot
	})
	return out
}

// Rekey relocates every record of one warehouse to another name: collect,
// remove, reinsert. Keys cannot be mutated in place.
func (m *SlotMap) Rekey(oldName, newName string) {
	moved := m.Query(oldName)
	for _, e := range moved {
		delete(m.entries, e.Key.Fold())
	}
	for _, e := range moved {
		key := model.SlotKey{Warehouse: newName, Col: e.Key.Col, Slot: e.Key.Slot}
		m.entries[key.Fold()] = slotEntry{Key: key, Data: e.Data}
	}
}

// DropWarehouse removes every record belonging to a warehouse.
func (m *SlotMap) DropWarehouse(name string) {
	for _, e := range m.Query(name) {
		delete(m.entries, e.Key.Fold())
	}
}
