package dto

// CreateSweetRequest carries the fields for a new catalog item. Quantity is
// optional and defaults to zero stock.
type CreateSweetRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity *int    `json:"quantity"`
}

// UpdateSweetRequest is a partial update: only non-nil fields are applied.
type UpdateSweetRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

type StockRequest struct {
	Quantity int `json:"quantity"`
}

// SearchFilters are AND-composed; zero values mean "not set" for the string
// filters, nil for the price bounds.
type SearchFilters struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}
