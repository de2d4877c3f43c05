package cart

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func product(id, price string) catalog.Product {
	return catalog.Product{
		ID:     id,
		Name:   "Product " + id,
		Price:  decimal.RequireFromString(price),
		Images: []string{"/" + id + ".png"},
	}
}

func TestAddMergesQuantities(t *testing.T) {
	c := New()
	p1 := product("p1", "10.00")

	require.NoError(t, c.Add(p1, 1))
	require.NoError(t, c.Add(p1, 2))

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)
	require.Equal(t, 3, c.TotalItems())
	require.Equal(t, "30.00", items[0].LineTotal().StringFixed(2))
}

func TestAddNegativeDeltaRemovesAtZero(t *testing.T) {
	c := New()
	p1 := product("p1", "10.00")

	require.NoError(t, c.Add(p1, 1))
	require.NoError(t, c.Add(p1, -1))
	require.Empty(t, c.Items())
	require.Zero(t, c.TotalItems())

	require.NoError(t, c.Add(p1, 2))
	require.NoError(t, c.Add(p1, -5))
	require.Empty(t, c.Items())
}

func TestAddFreshItemClampsToOne(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(product("p1", "1"), 0))
	require.NoError(t, c.Add(product("p2", "1"), -3))

	items := c.Items()
	require.Len(t, items, 2)
	require.Equal(t, 1, items[0].Quantity)
	require.Equal(t, 1, items[1].Quantity)
}

func TestAddRejectsMissingID(t *testing.T) {
	c := New()
	require.ErrorIs(t, c.Add(catalog.Product{Name: "ghost"}, 1), ErrMissingProductID)
	require.ErrorIs(t, c.Add(catalog.Product{ID: "  "}, 1), ErrMissingProductID)
	require.Zero(t, c.Len())
}

func TestAddStoresTrimmedID(t *testing.T) {
	c := New()
	padded := product(" p1 ", "10.00")

	require.NoError(t, c.Add(padded, 1))
	require.NoError(t, c.Add(padded, 1))
	require.NoError(t, c.Add(product("p1", "10.00"), 1))

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, "p1", items[0].Product.ID)
	require.Equal(t, 3, items[0].Quantity)

	c.Remove(" p1")
	require.Empty(t, c.Items())
}

func TestAddEnforcesQuantityLimit(t *testing.T) {
	c := New()
	p1 := product("p1", "1.00")
	p2 := product("p2", "1.00")

	require.ErrorIs(t, c.Add(p1, math.MaxInt), ErrQuantityLimit)
	require.Empty(t, c.Items())

	require.NoError(t, c.Add(p1, MaxQuantity))
	require.ErrorIs(t, c.Add(p1, 1), ErrQuantityLimit)
	require.ErrorIs(t, c.Add(p1, math.MaxInt), ErrQuantityLimit)
	require.Equal(t, MaxQuantity, c.TotalItems())

	require.NoError(t, c.Add(p2, 5))
	require.Equal(t, MaxQuantity+5, c.TotalItems())

	require.NoError(t, c.Add(p1, math.MinInt))
	require.Equal(t, 5, c.TotalItems())
	require.Len(t, c.Items(), 1)
}

func TestTotalsAcrossProducts(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(product("p1", "10"), 2))
	require.NoError(t, c.Add(product("p2", "5"), 1))

	snap := c.Snapshot()
	require.Equal(t, 3, snap.TotalItems)
	require.Equal(t, "25.00", snap.TotalPrice.StringFixed(2))
	require.Equal(t, []string{"p1", "p2"}, []string{snap.Items[0].Product.ID, snap.Items[1].Product.ID})
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(product("p1", "10"), 2))
	require.NoError(t, c.Add(product("p2", "5"), 1))

	c.Remove("p1")
	once := c.Snapshot()
	c.Remove("p1")
	twice := c.Snapshot()

	require.Equal(t, once.TotalItems, twice.TotalItems)
	require.Len(t, twice.Items, 1)
	c.Remove("unknown")
	require.Equal(t, 1, c.TotalItems())
}

func TestClearEmptiesCart(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(product("p1", "10"), 4))
	c.Clear()
	require.Zero(t, c.TotalItems())
	require.Empty(t, c.Items())
	require.True(t, c.TotalPrice().IsZero())
}

func TestDrainReturnsSnapshotAndEmpties(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(product("p1", "2.50"), 2))

	snap := c.Drain()
	require.Equal(t, 2, snap.TotalItems)
	require.Equal(t, "5.00", snap.TotalPrice.StringFixed(2))
	require.Zero(t, c.Len())
}

func TestLineItemsAreCopies(t *testing.T) {
	c := New()
	p := product("p1", "10")
	require.NoError(t, c.Add(p, 1))

	p.Images[0] = "/mutated.png"
	items := c.Items()
	require.Equal(t, "/p1.png", items[0].Product.Images[0])

	items[0].Quantity = 99
	items[0].Product.Name = "changed"
	require.Equal(t, 1, c.TotalItems())
	require.Equal(t, "Product p1", c.Items()[0].Product.Name)
}

// TestRandomSequencesKeepInvariants replays random add/remove/clear sequences
// against a simple map model.
func TestRandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	catalogIDs := []string{"a", "b", "c", "d"}

	for run := 0; run < 200; run++ {
		c := New()
		model := map[string]int{}

		for step := 0; step < 50; step++ {
			id := catalogIDs[rng.Intn(len(catalogIDs))]
			switch op := rng.Intn(10); {
			case op < 6:
				delta := rng.Intn(7) - 3
				require.NoError(t, c.Add(product(id, "1.25"), delta))
				if qty, ok := model[id]; ok {
					if qty+delta <= 0 {
						delete(model, id)
					} else {
						model[id] = qty + delta
					}
				} else {
					model[id] = max(delta, 1)
				}
			case op < 9:
				c.Remove(id)
				delete(model, id)
			default:
				c.Clear()
				model = map[string]int{}
			}

			snap := c.Snapshot()
			want := 0
			for _, q := range model {
				want += q
			}
			require.Equal(t, want, snap.TotalItems)
			require.Equal(t, want, c.TotalItems())
			require.Len(t, snap.Items, len(model))
			seen := map[string]bool{}
			for _, li := range snap.Items {
				require.False(t, seen[li.Product.ID], "duplicate line item %s", li.Product.ID)
				seen[li.Product.ID] = true
				require.GreaterOrEqual(t, li.Quantity, 1)
				require.Equal(t, model[li.Product.ID], li.Quantity)
			}
			require.True(t, snap.TotalPrice.Equal(decimal.RequireFromString("1.25").Mul(decimal.NewFromInt(int64(want)))))
		}
	}
}

func TestConcurrentAddsAreSerialized(t *testing.T) {
	c := New()
	p := product("p1", "1")

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = c.Add(p, 1)
				_ = c.Snapshot()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 800, c.TotalItems())
	require.Equal(t, 1, c.Len())
}
