// Package catalog generates the session's synthetic product list and filters
// it for display. The catalog simulates a "live sync" from external
// marketplaces: it is rebuilt from the pools below on every startup and is
// never persisted.
package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"net/url"
	"strings"

	"github.com/globalmarket/backend/internal/models"
	"github.com/globalmarket/backend/internal/money"
)

// DefaultSize is the number of products generated per session.
const DefaultSize = 50

// Sources are the marketplace names products claim to come from. The sync
// simulator walks the same list when printing its connection log lines.
var Sources = []string{
	"Amazon", "eBay", "Alibaba", "Walmart", "Best Buy",
	"Target", "AliExpress", "Etsy", "Newegg", "Overstock",
}

// Categories are the product category pool, also used to populate the
// storefront's category filter.
var Categories = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports",
	"Books", "Toys", "Beauty", "Automotive",
}

var productNames = []string{
	"Wireless Bluetooth Headphones", "Smart Watch Series 5", "4K Ultra HD TV", "Laptop Computer", "Smartphone Pro",
	"Running Shoes", "Designer T-Shirt", "Winter Jacket", "Casual Sneakers", "Formal Dress",
	"Coffee Maker", "Air Fryer", "Vacuum Cleaner", "Smart Home Speaker", "LED Desk Lamp",
	"Yoga Mat", "Dumbbell Set", "Tennis Racket", "Basketball", "Football",
	"Bestseller Novel", "Cookbook Collection", "Science Textbook", "Art History Book", "Business Guide",
	"Building Blocks Set", "Remote Control Car", "Board Game", "Puzzle Collection", "Action Figure",
	"Skincare Set", "Makeup Kit", "Hair Dryer", "Electric Toothbrush", "Perfume Collection",
	"Car Phone Mount", "LED Headlights", "Car Cover", "Floor Mats", "Emergency Kit",
}

// Generator produces synthetic products by uniform sampling from the pools
// above. The random source is injected so tests can seed it.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns count products with sequential ids starting at 1. Name,
// source and category are drawn independently, so duplicates across products
// are expected and allowed.
func (g *Generator) Generate(count int) []models.Product {
	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		name := productNames[g.rng.Intn(len(productNames))]
		source := Sources[g.rng.Intn(len(Sources))]
		category := Categories[g.rng.Intn(len(Categories))]

		products = append(products, models.Product{
			ID:       i + 1,
			Name:     name,
			Price:    money.RoundCents(g.rng.Float64()*500 + 10),
			Source:   source,
			Category: category,
			Description: fmt.Sprintf(
				"Premium %s from %s. High-quality %s product with excellent customer reviews and fast shipping available.",
				name, source, strings.ToLower(category)),
			Image:   "https://via.placeholder.com/300x200?text=" + url.QueryEscape(name),
			Rating:  math.Round((g.rng.Float64()*2+3)*10) / 10,
			Reviews: g.rng.Intn(500) + 10,
		})
	}
	return products
}
