package catalog

import (
	_ "embed"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed assets/catalog.yaml
var defaultCatalog []byte

// Store is the read-only product catalog, loaded once.
type Store struct {
	products []Product
	index    map[string]int
}

// LoadDefault loads the catalog compiled into the binary.
func LoadDefault() *Store {
	return Load(defaultCatalog)
}

// Load parses a YAML catalog document. It never fails: a malformed document
// yields an empty store and malformed records are skipped.
func Load(source []byte) *Store {
	store := &Store{index: map[string]int{}}

	var doc struct {
		Products []yaml.Node `yaml:"products"`
	}
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return store
	}

	for i := range doc.Products {
		var rec record
		if err := doc.Products[i].Decode(&rec); err != nil {
			continue
		}
		product, ok := rec.toProduct()
		if !ok {
			continue
		}
		if _, dup := store.index[product.ID]; dup {
			continue
		}
		store.index[product.ID] = len(store.products)
		store.products = append(store.products, product)
	}
	return store
}

// All returns every product in source order.
func (s *Store) All() []Product {
	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of products.
func (s *Store) Len() int {
	return len(s.products)
}

// FindByID looks a product up by its string id.
func (s *Store) FindByID(id string) (Product, bool) {
	idx, ok := s.index[strings.TrimSpace(id)]
	if !ok {
		return Product{}, false
	}
	return s.products[idx].Clone(), true
}

// Categories returns distinct categories in first-seen order.
func (s *Store) Categories() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range s.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// scalar accepts any YAML scalar as its raw text so that numeric ids and
// quoted prices decode the same way.
type scalar string

func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &yaml.TypeError{Errors: []string{"expected a scalar"}}
	}
	*s = scalar(strings.TrimSpace(node.Value))
	return nil
}

type record struct {
	ID           scalar   `yaml:"_id"`
	Name         scalar   `yaml:"name"`
	Price        scalar   `yaml:"price"`
	Images       []string `yaml:"image"`
	Category     scalar   `yaml:"category"`
	Subcategory  scalar   `yaml:"subCategory"`
	Description  *scalar  `yaml:"description"`
	Sizes        []string `yaml:"sizes"`
	Discount     *scalar  `yaml:"discount"`
	Rating       *scalar  `yaml:"rating"`
	IsNew        *scalar  `yaml:"isNew"`
	IsBestseller *scalar  `yaml:"isBestseller"`
	Bestseller   *scalar  `yaml:"bestseller"`
	IsTrending   *scalar  `yaml:"isTrending"`
	CreatedAt    *scalar  `yaml:"createdAt"`
	Date         *scalar  `yaml:"date"`
}

func (r record) toProduct() (Product, bool) {
	id := string(r.ID)
	name := string(r.Name)
	if id == "" || name == "" {
		return Product{}, false
	}
	price, err := decimal.NewFromString(string(r.Price))
	if err != nil || price.IsNegative() {
		return Product{}, false
	}

	p := Product{
		ID:           id,
		Name:         name,
		Price:        price,
		Images:       nonEmpty(r.Images),
		Category:     string(r.Category),
		Subcategory:  string(r.Subcategory),
		Sizes:        nonEmpty(r.Sizes),
		IsNew:        flag(r.IsNew),
		IsBestseller: flag(r.IsBestseller) || flag(r.Bestseller),
		IsTrending:   flag(r.IsTrending),
	}
	if r.Description != nil && *r.Description != "" {
		d := string(*r.Description)
		p.Description = &d
	}
	if r.Discount != nil {
		if v, err := decimal.NewFromString(string(*r.Discount)); err == nil {
			if pct, ok := NewPercent(v); ok {
				p.Discount = &pct
			}
		}
	}
	if r.Rating != nil {
		if v, err := strconv.ParseFloat(string(*r.Rating), 64); err == nil {
			if rating, ok := NewRating(v); ok {
				p.Rating = &rating
			}
		}
	}
	p.CreatedAt = parseCreatedAt(r.CreatedAt, r.Date)
	return p, true
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func flag(v *scalar) bool {
	if v == nil {
		return false
	}
	b, err := strconv.ParseBool(string(*v))
	return err == nil && b
}

// parseCreatedAt accepts an RFC 3339 timestamp or a Unix epoch in milliseconds.
func parseCreatedAt(createdAt, date *scalar) *time.Time {
	if createdAt != nil {
		if t, err := time.Parse(time.RFC3339, string(*createdAt)); err == nil {
			t = t.UTC()
			return &t
		}
	}
	if date != nil {
		if ms, err := strconv.ParseInt(string(*date), 10, 64); err == nil && ms > 0 {
			t := time.UnixMilli(ms).UTC()
			return &t
		}
	}
	return nil
}
