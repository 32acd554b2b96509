// Package handlers adapts the session core to the HTTP display surface.
// Handlers read form values from the request, call the state machine, and
// respond with full view models that replace the corresponding region on
// the page. Mutating responses embed the transient notification.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/globalmarket/backend/internal/catalog"
	"github.com/globalmarket/backend/internal/render"
	"github.com/globalmarket/backend/internal/services"
)

// StorefrontHandler serves the customer view: catalog browsing, the cart
// and checkout.
type StorefrontHandler struct {
	session   *services.SessionService
	validator *services.ValidationHelper
}

func NewStorefrontHandler(session *services.SessionService) *StorefrontHandler {
	return &StorefrontHandler{
		session:   session,
		validator: services.NewValidationHelper(),
	}
}

// ListProducts renders the product grid
// @Summary List catalog products
// @Description Catalog grid filtered by search term, category and source
// @Tags storefront
// @Produce json
// @Param search query string false "Case-insensitive substring match on name, category or source"
// @Param category query string false "Exact category"
// @Param source query string false "Exact source"
// @Success 200 {object} render.CatalogView
// @Router /products [get]
func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	all := h.session.Catalog()
	filtered := catalog.Filter(all, q.Get("search"), q.Get("category"), q.Get("source"))

	respondJSON(w, http.StatusOK, render.BuildCatalogView(all, filtered))
}

// GetCart renders the cart panel
// @Summary Get the cart
// @Tags storefront
// @Produce json
// @Success 200 {object} render.CartView
// @Router /cart [get]
func (h *StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, render.BuildCartView(h.session.Cart()))
}

// AddToCart puts a product in the cart
// @Summary Add a product to the cart
// @Description Adds the product, incrementing quantity when already present
// @Tags storefront
// @Accept json
// @Produce json
// @Param request body object{productId=int} true "Product id from the rendered catalog"
// @Success 200 {object} object{success=bool,cart=render.CartView}
// @Failure 400 {object} services.ErrorResponse
// @Router /cart/items [post]
func (h *StorefrontHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"productId" validate:"required,gt=0"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	// unknown ids fail silently: they can only come from a stale page
	_, notification, ok := h.session.AddToCart(r.Context(), req.ProductID)

	resp := map[string]any{
		"success": true,
		"cart":    render.BuildCartView(h.session.Cart()),
	}
	if ok {
		resp["notification"] = notification
	}
	respondJSON(w, http.StatusOK, resp)
}

// Checkout processes payment for the cart
// @Summary Checkout
// @Description Credits the referral commission to the wallet and empties the cart
// @Tags storefront
// @Produce json
// @Success 200 {object} object{success=bool,transaction=models.Transaction,cart=render.CartView}
// @Failure 400 {object} services.ErrorResponse
// @Router /checkout [post]
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	tx, notification, err := h.session.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
		services.SendErrorResponse(w, "Checkout failed", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"transaction":  tx,
		"cart":         render.BuildCartView(h.session.Cart()),
		"notification": notification,
	})
}

// decodeBody applies the shared request body hygiene: size cap, unknown
// field rejection, and exactly one JSON object. It writes the error
// response itself and reports whether decoding succeeded.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
