package warehouse

import (
	"sort"
	"strings"

	"github.com/hhyeonhee/ULTRA/model"
)

// findProduct resolves a catalog product by number, case-insensitively.
func (s *Session) findProduct(number string) *model.Product {
	fold := model.FoldName(number)
	if fold == "" {
		return nil
	}
	for _, p := range s.products {
		if model.FoldName(p.Number) == fold {
			return p
		}
	}
	return nil
}

// ProductFilter narrows the catalog listing. Search matches number, name or
// attribute as a case-insensitive substring; category and subcategory match
// exactly (case-insensitive). Empty fields match everything.
type ProductFilter struct {
	Search      string
	Category    string
	SubCategory string
}

func (f ProductFilter) matches(p *model.Product) bool {
	if t := strings.TrimSpace(f.Search); t != "" {
		t = strings.ToLower(t)
		hit := strings.Contains(strings.ToLower(p.Number), t) ||
			strings.Contains(strings.ToLower(p.Name), t) ||
			strings.Contains(strings.ToLower(p.Attribute), t)
		if !hit {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.SubCategory != "" && !strings.EqualFold(p.SubCategory, f.SubCategory) {
		return false
	}
	return true
}

// Products returns the filtered catalog in load order, with the
// selected-warehouse aggregates filled in. Copies, so callers cannot reach
// session state through the result.
func (s *Session) Products(filter ProductFilter) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Product
	for _, p := range s.products {
		if filter.matches(p) {
			out = append(out, *p)
		}
	}
	return out
}

// FilterOptions returns the distinct category and subcategory values of the
// catalog, sorted.
func (s *Session) FilterOptions() (categories, subcategories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.categories...), append([]string(nil), s.subcategories...)
}

// rebuildFilterOptions derives the category/subcategory option sets from the
// loaded catalog.
func (s *Session) rebuildFilterOptions() {
	cats := make(map[string]string)
	subs := make(map[string]string)
	for _, p := range s.products {
		if v := strings.TrimSpace(p.Category); v != "" {
			cats[strings.ToLower(v)] = v
		}
		if v := strings.TrimSpace(p.SubCategory); v != "" {
			subs[strings.ToLower(v)] = v
		}
	}
	s.categories = sortedValues(cats)
	s.subcategories = sortedValues(subs)
}

func sortedValues(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
