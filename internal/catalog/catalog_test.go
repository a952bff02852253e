package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Airside/internal/repo"
)

func testItems() []Item {
	return []Item{
		{Key: ItemKey{"Fittings", "90 elbow 6in"}, Unit: "ea", UnitPrice: 4.5},
		{Key: ItemKey{"Fittings", "Wye 8in"}, Unit: "ea", UnitPrice: 12},
		{Key: ItemKey{"Refrigerant", "R410A 25lb"}, Unit: "jug", UnitPrice: 180},
		{Key: ItemKey{"Duct", "Flex 6in x 25ft"}, Unit: "box", UnitPrice: 38},
	}
}

func TestItemKey_NoDelimiterCollision(t *testing.T) {
	// the old "Category::Item" string keys collapsed these two
	a := ItemKey{Category: "A::B", Name: "C"}
	b := ItemKey{Category: "A", Name: "B::C"}
	assert.NotEqual(t, a, b)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	got := Search(testItems(), "fit")
	require.Len(t, got, 2)
	assert.Equal(t, "Fittings", got[0].Key.Category)

	got = Search(testItems(), "R410A")
	require.Len(t, got, 1)
	assert.Equal(t, "R410A 25lb", got[0].Key.Name)
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	assert.Len(t, Search(testItems(), "  "), 4)
}

func TestSortItems(t *testing.T) {
	items := testItems()
	SortItems(items, "price")
	assert.Equal(t, 4.5, items[0].UnitPrice)
	assert.Equal(t, 180.0, items[3].UnitPrice)

	SortItems(items, "")
	assert.Equal(t, "Duct", items[0].Key.Category)
}

func TestSelection_AddAndRemove(t *testing.T) {
	key := ItemKey{"Fittings", "Wye 8in"}
	var s Selection

	s = s.Add(key, 2)
	assert.Equal(t, 2, s.QuantityOf(key))

	s = s.Add(key, 3)
	assert.Equal(t, 5, s.QuantityOf(key))

	s = s.Add(key, -5)
	assert.Equal(t, 0, s.QuantityOf(key))
	assert.Empty(t, s)
}

func TestSelection_AddDoesNotMutateReceiver(t *testing.T) {
	key := ItemKey{"Fittings", "Wye 8in"}
	base := Selection{{Key: key, Quantity: 1}}
	_ = base.Add(key, 4)
	assert.Equal(t, 1, base.QuantityOf(key))
}

func TestSelection_Total(t *testing.T) {
	items := testItems()
	s := Selection{}.
		Add(ItemKey{"Fittings", "90 elbow 6in"}, 4).
		Add(ItemKey{"Duct", "Flex 6in x 25ft"}, 2)
	assert.InDelta(t, 4*4.5+2*38, s.Total(items), 1e-9)

	// unknown keys price at zero
	s = s.Add(ItemKey{"Misc", "Unknown"}, 10)
	assert.InDelta(t, 4*4.5+2*38, s.Total(items), 1e-9)
}

func TestRepoRoundTrip(t *testing.T) {
	rows := ToRepo(testItems())
	require.Len(t, rows, 4)
	assert.Equal(t, repo.CatalogItem{Category: "Fittings", Name: "90 elbow 6in", Unit: "ea", UnitPrice: 4.5}, rows[0])
	assert.Equal(t, testItems(), FromRepo(rows))
}
