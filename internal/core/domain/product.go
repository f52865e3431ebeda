package domain

import "strings"

// Product is an immutable catalog entry. Name is the catalog key.
type Product struct {
	Name        string
	Brand       string
	Description string
	Price       Amount
	Image       string
	Ingredients string
	Usage       string
}

func NewProduct(name, brand, description, displayPrice, image, ingredients, usage string) Product {
	return Product{
		Name:        name,
		Brand:       brand,
		Description: description,
		Price:       ParsePriceOrZero(displayPrice),
		Image:       image,
		Ingredients: ingredients,
		Usage:       usage,
	}
}

func (p Product) Key() string {
	return p.Name
}

func (p Product) SameAs(other Product) bool {
	return p.Name == other.Name
}

// Category derives a coarse category from the product name, used for the cart badge.
// Keywords are checked in order and the first match wins.
func (p Product) Category() string {
	name := strings.ToLower(p.Name)
	for _, c := range productCategories {
		if strings.Contains(name, c.keyword) {
			return c.label
		}
	}
	return "beauty"
}

var productCategories = []struct {
	keyword string
	label   string
}{
	{"lip", "lips"},
	{"skin", "skincare"},
	{"face", "face"},
	{"eye", "eyes"},
	{"blush", "cheeks"},
	{"foundation", "face"},
	{"concealer", "face"},
	{"mascara", "eyes"},
	{"moisturizer", "skincare"},
	{"serum", "skincare"},
	{"cream", "body"},
	{"oil", "skincare"},
	{"mask", "skincare"},
	{"tint", "lips"},
	{"gloss", "lips"},
	{"kit", "sets"},
}
