package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"miniattic-api/internal/dto"
	"miniattic-api/internal/model"
)

func enrichedFixture() EnrichedOrder {
	snap := NewCatalogSnapshot(testCatalog(), "/images/", zap.NewNop())
	return Enrich(model.Order{
		Item:     "o1",
		Account:  "alice@example.com",
		Products: []model.LineItem{{Item: "p1", Amount: 2}, {Item: "p2", Amount: 1}},
		Payment:  model.OrderPayment{Item: "cod", Name: "Cash", Price: 20},
		Remark:   "ring twice",
	}, snap)
}

func keysOf(t *testing.T, v any) map[string]json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestProjectCustomerHidesAccountAndTotal(t *testing.T) {
	for _, role := range []Role{RoleCustomer, RoleEditor, RoleNone} {
		t.Run(role.String(), func(t *testing.T) {
			view := Project(enrichedFixture(), role)
			_, ok := view.(dto.CustomerOrderView)
			require.True(t, ok)

			m := keysOf(t, view)
			assert.NotContains(t, m, "accountId")
			assert.NotContains(t, m, "orderTotal")
			assert.Contains(t, m, "orderId")
			assert.Contains(t, m, "products")
		})
	}
}

func TestProjectAdmin(t *testing.T) {
	view := Project(enrichedFixture(), RoleAdmin)
	admin, ok := view.(dto.AdminOrderView)
	require.True(t, ok)

	assert.Equal(t, "alice@example.com", admin.AccountID)
	assert.Equal(t, json.Number("270"), admin.OrderTotal)

	m := keysOf(t, view)
	assert.JSONEq(t, `270`, string(m["orderTotal"]))
	assert.JSONEq(t, `"alice@example.com"`, string(m["accountId"]))
}

func TestProjectLineFields(t *testing.T) {
	view := Project(enrichedFixture(), RoleCustomer).(dto.CustomerOrderView)

	require.Len(t, view.Products, 2)
	assert.Equal(t, dto.OrderLineView{
		Item:   "p1",
		Amount: 2,
		Name:   "Tea",
		Src:    "/images/tea.png",
		Price:  json.Number("100"),
	}, view.Products[0])

	line := keysOf(t, view.Products[0])
	assert.NotContains(t, line, "unavailable")
}
