package catalog

import (
	"fmt"
	"sort"
	"strings"

	"Airside/internal/repo"
)

// ItemKey identifies a catalog item by category and name. It replaces the old
// "Category::Item" string keys, so names containing the delimiter can never
// collide.
type ItemKey struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

func (k ItemKey) String() string {
	return fmt.Sprintf("%s / %s", k.Category, k.Name)
}

type Item struct {
	Key       ItemKey `json:"key"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

// FromRepo converts stored rows into catalog items.
func FromRepo(rows []repo.CatalogItem) []Item {
	out := make([]Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, Item{
			Key:       ItemKey{Category: r.Category, Name: r.Name},
			Unit:      r.Unit,
			UnitPrice: r.UnitPrice,
		})
	}
	return out
}

// ToRepo converts catalog items into storable rows.
func ToRepo(items []Item) []repo.CatalogItem {
	out := make([]repo.CatalogItem, 0, len(items))
	for _, it := range items {
		out = append(out, repo.CatalogItem{
			Category:  it.Key.Category,
			Name:      it.Key.Name,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}

// Search filters items whose category or name contains the query,
// case-insensitive. An empty query returns everything.
func Search(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	var out []Item
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Key.Category), q) ||
			strings.Contains(strings.ToLower(it.Key.Name), q) {
			out = append(out, it)
		}
	}
	return out
}

// SortItems orders items by "name", "price" or (default) category then name.
// The sort is stable so equal keys keep their incoming order.
func SortItems(items []Item, by string) {
	switch by {
	case "name":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Key.Name < items[j].Key.Name
		})
	case "price":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].UnitPrice < items[j].UnitPrice
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Key.Category != items[j].Key.Category {
				return items[i].Key.Category < items[j].Key.Category
			}
			return items[i].Key.Name < items[j].Key.Name
		})
	}
}

// SelectionLine is one picked item with a quantity.
type SelectionLine struct {
	Key      ItemKey `json:"key"`
	Quantity int     `json:"quantity"`
}

// Selection is the technician's current material pick list. It is explicit
// state owned by the caller; nothing here is process-global.
type Selection []SelectionLine

// Add returns the selection with the quantity for key adjusted by delta.
// Lines that reach zero or below are removed.
func (s Selection) Add(key ItemKey, delta int) Selection {
	for i, line := range s {
		if line.Key == key {
			q := line.Quantity + delta
			if q <= 0 {
				return append(s[:i:i], s[i+1:]...)
			}
			out := append(Selection(nil), s...)
			out[i].Quantity = q
			return out
		}
	}
	if delta <= 0 {
		return s
	}
	return append(append(Selection(nil), s...), SelectionLine{Key: key, Quantity: delta})
}

// QuantityOf returns the selected quantity for key, zero when absent.
func (s Selection) QuantityOf(key ItemKey) int {
	for _, line := range s {
		if line.Key == key {
			return line.Quantity
		}
	}
	return 0
}

// Total prices the selection against the catalog. Unknown keys price at zero.
func (s Selection) Total(items []Item) float64 {
	prices := make(map[ItemKey]float64, len(items))
	for _, it := range items {
		prices[it.Key] = it.UnitPrice
	}
	total := 0.0
	for _, line := range s {
		total += prices[line.Key] * float64(line.Quantity)
	}
	return total
}
