package warehouse

import (
	"sort"

	"github.com/hhyeonhee/ULTRA/model"
)

// aliasKey identifies a column alias; warehouse is stored folded.
type aliasKey struct {
	Warehouse string
	Col       int
}

// ZoneDirectory holds per-warehouse column counts and optional column
// display aliases. Aliases may outlive the column range they point into:
// shrinking a warehouse keeps them, so growing back restores the labels.
type ZoneDirectory struct {
	cols    map[string]int
	aliases map[aliasKey]string
}

func NewZoneDirectory() *ZoneDirectory {
	return &ZoneDirectory{
		cols:    make(map[string]int),
		aliases: make(map[aliasKey]string),
	}
}

// ColumnCount returns the column count for a warehouse, defaulting when the
// warehouse has no zone entry.
func (z *ZoneDirectory) ColumnCount(warehouse string) int {
	if n, ok := z.cols[model.FoldName(warehouse)]; ok && n > 0 {
		return n
	}
	return model.DefaultColumnCount
}

// SetColumnCount stores the column count, clamped to at least one column.
func (z *ZoneDirectory) SetColumnCount(warehouse string, n int) {
	if n < 1 {
		n = 1
	}
	z.cols[model.FoldName(warehouse)] = n
}

// Alias returns the display alias for (warehouse, col), or "".
func (z *ZoneDirectory) Alias(warehouse string, col int) string {
	return z.aliases[aliasKey{Warehouse: model.FoldName(warehouse), Col: col}]
}

// SetAlias sets or, given an empty value, removes a column alias.
func (z *ZoneDirectory) SetAlias(warehouse string, col int, alias string) {
	k := aliasKey{Warehouse: model.FoldName(warehouse), Col: col}
	if alias == "" {
		delete(z.aliases, k)
		return
	}
	z.aliases[k] = alias
}

// aliasCols returns the alias column indices of a warehouse, ascending.
func (z *ZoneDirectory) aliasCols(warehouse string) []int {
	fold := model.FoldName(warehouse)
	var out []int
	for k := range z.aliases {
		if k.Warehouse == fold {
			out = append(out, k.Col)
		}
	}
	sort.Ints(out)
	return out
}

// Rename relocates the zone entry and every alias from old to new.
func (z *ZoneDirectory) Rename(oldName, newName string) {
	oldFold, newFold := model.FoldName(oldName), model.FoldName(newName)
	if n, ok := z.cols[oldFold]; ok {
		delete(z.cols, oldFold)
		if n < 1 {
			n = model.DefaultColumnCount
		}
		z.cols[newFold] = n
	}
	for _, col := range z.aliasCols(oldName) {
		k := aliasKey{Warehouse: oldFold, Col: col}
		z.aliases[aliasKey{Warehouse: newFold, Col: col}] = z.aliases[k]
		delete(z.aliases, k)
	}
}

// Drop removes the zone entry and every alias of a warehouse.
func (z *ZoneDirectory) Drop(warehouse string) {
	fold := model.FoldName(warehouse)
	delete(z.cols, fold)
	for _, col := range z.aliasCols(warehouse) {
		delete(z.aliases, aliasKey{Warehouse: fold, Col: col})
	}
}
