package domain

// CartLine is one "add to cart" action. Lines are not pre-aggregated;
// repeated adds of the same plant produce repeated lines.
type CartLine struct {
	PlantID   string  `json:"plantId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

// AggregatedCartEntry is the derived grouped view of the cart: one entry
// per distinct plant id, in first-seen order.
type AggregatedCartEntry struct {
	PlantID   string  `json:"plantId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// AddToCartRequest is the payload for adding a line to the cart
type AddToCartRequest struct {
	PlantID   string  `json:"plantId" binding:"required"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}
