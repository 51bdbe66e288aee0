package service

import "miniattic-api/internal/model"

// ValidateLineItems descarta las líneas con cantidad <= 0.
// Un carrito vacío y uno con todo en cero dan el mismo ErrEmptyOrder.
func ValidateLineItems(items []model.LineItem) ([]model.LineItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	out := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		if it.Amount > 0 {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyOrder
	}
	return out, nil
}
