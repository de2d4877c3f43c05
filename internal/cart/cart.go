package cart

import (
	"errors"
	"strings"
	"sync"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// MaxQuantity caps the quantity of a single line item.
const MaxQuantity = 999

var (
	// ErrMissingProductID is returned when a product without an id is added.
	ErrMissingProductID = errors.New("product id is required")
	// ErrQuantityLimit is returned when an add would push a line item past MaxQuantity.
	ErrQuantityLimit = errors.New("quantity limit exceeded")
)

// LineItem is a catalog product copied into the cart with a quantity.
type LineItem struct {
	Product  catalog.Product
	Quantity int
}

// LineTotal returns price times quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Snapshot is a consistent view of a cart and its derived totals.
type Snapshot struct {
	Items      []LineItem
	TotalItems int
	TotalPrice decimal.Decimal
}

// Cart holds one shopper's line items. Every method is safe for concurrent
// use and each mutation is atomic with respect to readers.
//
// Invariants: at most one line item per product id, and every present line
// item has Quantity >= 1. Totals are derived on every read.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges delta into the line item for product. A product not yet in the
// cart is inserted with max(delta, 1). For an existing line item the quantity
// becomes existing+delta and the item is removed once that drops to zero or
// below. The product is stored under its trimmed id. An add that would leave
// a line item above MaxQuantity fails with ErrQuantityLimit and changes nothing.
func (c *Cart) Add(product catalog.Product, delta int) error {
	id := strings.TrimSpace(product.ID)
	if id == "" {
		return ErrMissingProductID
	}
	if delta > MaxQuantity {
		return ErrQuantityLimit
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(id); idx >= 0 {
		// existing is within [1, MaxQuantity] so the sum cannot overflow.
		next := c.items[idx].Quantity + max(delta, -MaxQuantity)
		if next > MaxQuantity {
			return ErrQuantityLimit
		}
		if next <= 0 {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return nil
		}
		c.items[idx].Quantity = next
		return nil
	}

	qty := delta
	if qty < 1 {
		qty = 1
	}
	stored := product.Clone()
	stored.ID = id
	c.items = append(c.items, LineItem{Product: stored, Quantity: qty})
	return nil
}

// Remove drops the line item for id. Unknown ids are ignored.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(strings.TrimSpace(id)); idx >= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// TotalItems sums the quantities of every line item.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalItems(c.items)
}

// TotalPrice sums price times quantity over every line item.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPrice(c.items)
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyItems()
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Snapshot returns items and totals read under a single lock.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Items:      c.copyItems(),
		TotalItems: totalItems(c.items),
		TotalPrice: totalPrice(c.items),
	}
}

// Drain returns a snapshot and empties the cart in one step.
func (c *Cart) Drain() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		Items:      c.copyItems(),
		TotalItems: totalItems(c.items),
		TotalPrice: totalPrice(c.items),
	}
	c.items = nil
	return snap
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].Product.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) copyItems() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, li := range c.items {
		out[i] = LineItem{Product: li.Product.Clone(), Quantity: li.Quantity}
	}
	return out
}

func totalItems(items []LineItem) int {
	total := 0
	for _, li := range items {
		total += li.Quantity
	}
	return total
}

func totalPrice(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.LineTotal())
	}
	return total
}
