package services

import (
	"encoding/json"
	"net/http"

	"github.com/globalmarket/backend/internal/catalog"
)

// MarketplaceService serves the static marketplace metadata the storefront
// uses to populate its search filter controls.
type MarketplaceService struct{}

func NewMarketplaceService() *MarketplaceService {
	return &MarketplaceService{}
}

// GetMarketplaces lists the known sources and categories
// @Summary List marketplaces
// @Description Marketplace sources and product categories for the filter dropdowns
// @Tags marketplaces
// @Produce json
// @Success 200 {object} object{sources=[]string,categories=[]string}
// @Router /marketplaces [get]
func (ms *MarketplaceService) GetMarketplaces(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	json.NewEncoder(w).Encode(map[string]any{
		"sources":    catalog.Sources,
		"categories": catalog.Categories,
	})
}
