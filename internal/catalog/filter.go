package catalog

import (
	"strings"

	"github.com/globalmarket/backend/internal/models"
)

// Filter returns the products matching all supplied criteria, preserving
// catalog order. The search term is a case-insensitive substring match
// against name, category or source; an empty term matches everything.
// Category and source are exact matches and pass through when empty.
// Filter is pure: identical inputs always yield identical output.
func Filter(products []models.Product, searchTerm, category, source string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if source != "" && p.Source != source {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesTerm(p models.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.Source), term)
}
