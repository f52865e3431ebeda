package domain

import (
	"iter"
	"strings"
)

// Catalog is the read-only list of purchasable products, loaded once at startup.
type Catalog struct {
	products []Product
	byName   map[string]int
}

// NewCatalog builds a catalog. Later duplicates of a name are dropped.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byName:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byName[p.Key()]; exists {
			continue
		}
		c.byName[p.Key()] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) Lookup(name string) (Product, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) All() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Filter matches query against product names, ignoring case. Whitespace is significant;
// only the empty query matches everything.
func (c *Catalog) Filter(query string) iter.Seq[Product] {
	needle := strings.ToLower(query)
	return func(yield func(Product) bool) {
		for _, p := range c.products {
			if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// DefaultCatalog returns the storefront's canonical product list.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Product{
		NewProduct("Lip Glow Oil", "Dior", "Nourishing glossy oil", "$38", "product1",
			"Cherry Oil, Glycerin, Tocopherol", "Apply directly on lips for glossy shine"),
		NewProduct("Tinted Moisturizer", "Laura Mercier", "Natural skin tint with SPF", "$48", "product2",
			"Titanium Dioxide, Vitamin E", "Blend with fingertips on clean skin"),
		NewProduct("Lip Kit", "Kylie Cosmetics", "Matte lipstick & liner", "$29", "product3",
			"Dimethicone, Iron Oxides", "Outline lips with liner, fill with lipstick"),
		NewProduct("Concealer", "NARS", "Radiant creamy coverage", "$32", "product4",
			"Water, Mica, Glycerin", "Dab under eyes and blend gently"),
		NewProduct("Lip Sleeping Mask", "Laneige", "Hydrating overnight lip mask", "$24", "product5",
			"Berry Mix Complex™, Shea Butter", "Apply before bed on clean lips"),
		NewProduct("Glow Recipe Watermelon Glow", "Glow Recipe", "Dewy serum for glowing skin", "$39", "product6",
			"Watermelon Extract, Hyaluronic Acid", "Pat gently onto skin after toner"),
		NewProduct("Rare Beauty Blush", "Rare Beauty", "Soft pinch liquid blush", "$23", "product7",
			"Mica, Dimethicone", "Apply 1-2 dots and blend"),
		NewProduct("Charlotte Tilbury Airbrush Flawless", "Charlotte Tilbury", "Full-coverage matte foundation", "$49", "product8",
			"Silica, Glycerin, Vitamin C", "Apply evenly using brush or sponge"),
		NewProduct("Anastasia Brow Wiz", "Anastasia Beverly Hills", "Precise brow pencil", "$25", "product9",
			"Iron Oxides, Beeswax", "Fill in sparse brow areas"),
		NewProduct("Sol de Janeiro Brazilian Bum Bum Cream", "Sol de Janeiro", "Fast-absorbing body cream", "$48", "product10",
			"Guaraná, Cupuaçu Butter, Coconut Oil", "Massage into skin in circular motions"),
	})
}
