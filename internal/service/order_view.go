package service

import (
	"encoding/json"

	"miniattic-api/internal/dto"
)

// Project arma la vista según el rol: el admin ve cuenta y total, el cliente no.
func Project(e EnrichedOrder, role Role) dto.OrderView {
	lines := make([]dto.OrderLineView, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, dto.OrderLineView{
			Item:        l.Item,
			Amount:      l.Amount,
			Name:        l.Name,
			Src:         l.Src,
			Price:       json.Number(l.UnitPrice.String()),
			Unavailable: l.Unavailable,
		})
	}

	if role == RoleAdmin {
		return dto.AdminOrderView{
			OrderID:    e.Order.Item,
			AccountID:  e.Order.Account,
			Products:   lines,
			Payment:    e.Order.Payment,
			OrderTotal: json.Number(e.Total.String()),
			Remark:     e.Order.Remark,
			Status:     e.Order.Status,
		}
	}

	return dto.CustomerOrderView{
		OrderID:  e.Order.Item,
		Products: lines,
		Payment:  e.Order.Payment,
		Remark:   e.Order.Remark,
		Status:   e.Order.Status,
	}
}
