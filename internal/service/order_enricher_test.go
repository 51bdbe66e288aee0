package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"miniattic-api/internal/model"
)

func testCatalog() []model.Product {
	return []model.Product{
		{Item: "p1", Name: "Tea", Img: "tea.png", Price: "100"},
		{Item: "p2", Name: "Cup", Img: "https://cdn.example.com/cup.png", Price: "50"},
	}
}

func TestEnrichTotal(t *testing.T) {
	snap := NewCatalogSnapshot(testCatalog(), "/images/", zap.NewNop())
	o := model.Order{
		Item:     "o1",
		Account:  "alice@example.com",
		Products: []model.LineItem{{Item: "p1", Amount: 2}, {Item: "p2", Amount: 1}},
		Payment:  model.OrderPayment{Item: "cod", Price: 20},
	}

	e := Enrich(o, snap)

	assert.True(t, e.Total.Equal(decimal.NewFromInt(270)), "total = %s", e.Total)
	require.Len(t, e.Lines, 2)
	assert.Equal(t, "Tea", e.Lines[0].Name)
	assert.Equal(t, "/images/tea.png", e.Lines[0].Src)
	assert.True(t, e.Lines[0].LineTotal.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "https://cdn.example.com/cup.png", e.Lines[1].Src)
	assert.Empty(t, e.MissingProducts())
}

func TestEnrichDecimalPrices(t *testing.T) {
	snap := NewCatalogSnapshot([]model.Product{{Item: "p1", Price: "0.1"}}, "", zap.NewNop())
	o := model.Order{
		Products: []model.LineItem{{Item: "p1", Amount: 3}},
		Payment:  model.OrderPayment{Price: 0.2},
	}

	e := Enrich(o, snap)

	assert.Equal(t, "0.5", e.Total.String())
}

func TestEnrichMissingProduct(t *testing.T) {
	snap := NewCatalogSnapshot(testCatalog(), "/images/", zap.NewNop())
	o := model.Order{
		Products: []model.LineItem{{Item: "gone", Amount: 4}, {Item: "p2", Amount: 2}},
		Payment:  model.OrderPayment{Price: 0},
	}

	e := Enrich(o, snap)

	require.Len(t, e.Lines, 2)
	assert.True(t, e.Lines[0].Unavailable)
	assert.Equal(t, 4, e.Lines[0].Amount)
	assert.True(t, e.Lines[0].UnitPrice.IsZero())
	assert.True(t, e.Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, []string{"gone"}, e.MissingProducts())
}

func TestCatalogSnapshotBadPrice(t *testing.T) {
	snap := NewCatalogSnapshot([]model.Product{
		{Item: "p1", Price: "abc"},
		{Item: "p2", Price: ""},
	}, "", zap.NewNop())

	assert.True(t, snap["p1"].Price.IsZero())
	assert.True(t, snap["p2"].Price.IsZero())
}
