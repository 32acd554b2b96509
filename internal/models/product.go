package models

// Product is a synthetic catalog entry. Products are generated once per
// session, never mutated and never persisted.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Source      string  `json:"source"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// CartItem is a product plus the quantity the customer has added. The cart
// is keyed by product id: adding an existing product increments Quantity
// instead of inserting a second entry.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is price times quantity for this cart line.
func (c CartItem) LineTotal() float64 {
	return c.Price * float64(c.Quantity)
}
