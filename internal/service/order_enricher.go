package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"miniattic-api/internal/model"
)

// CatalogEntry es lo que el join necesita de un producto.
type CatalogEntry struct {
	Item  string
	Name  string
	Src   string
	Price decimal.Decimal
}

// CatalogSnapshot se carga una vez por request, no una vez por línea.
type CatalogSnapshot map[string]CatalogEntry

// NewCatalogSnapshot indexa los productos por item. Un precio que no parsea cuenta como 0.
func NewCatalogSnapshot(products []model.Product, imageBase string, logger *zap.Logger) CatalogSnapshot {
	snap := make(CatalogSnapshot, len(products))
	for _, p := range products {
		price, err := parsePrice(p.Price)
		if err != nil {
			logger.Warn("product price not numeric", zap.String("product", p.Item), zap.String("price", p.Price))
			price = decimal.Zero
		}
		snap[p.Item] = CatalogEntry{
			Item:  p.Item,
			Name:  p.Name,
			Src:   ImageURL(imageBase, p.Img),
			Price: price,
		}
	}
	return snap
}

type EnrichedLine struct {
	Item      string
	Amount    int
	Name      string
	Src       string
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	// Producto borrado después de la compra
	Unavailable bool
}

type EnrichedOrder struct {
	Order model.Order
	Lines []EnrichedLine
	Total decimal.Decimal
}

// Enrich resuelve cada línea contra el catálogo actual y calcula
// total = Σ(precio*cantidad) + costo del medio de pago.
// Las líneas cuyo producto ya no existe quedan como marcador con precio 0.
func Enrich(o model.Order, snap CatalogSnapshot) EnrichedOrder {
	lines := make([]EnrichedLine, 0, len(o.Products))
	total := decimal.Zero

	for _, li := range o.Products {
		entry, ok := snap[li.Item]
		if !ok {
			lines = append(lines, EnrichedLine{
				Item:        li.Item,
				Amount:      li.Amount,
				UnitPrice:   decimal.Zero,
				LineTotal:   decimal.Zero,
				Unavailable: true,
			})
			continue
		}

		lineTotal := entry.Price.Mul(decimal.NewFromInt(int64(li.Amount)))
		total = total.Add(lineTotal)
		lines = append(lines, EnrichedLine{
			Item:      li.Item,
			Amount:    li.Amount,
			Name:      entry.Name,
			Src:       entry.Src,
			UnitPrice: entry.Price,
			LineTotal: lineTotal,
		})
	}

	total = total.Add(decimal.NewFromFloat(o.Payment.Price))

	return EnrichedOrder{Order: o, Lines: lines, Total: total}
}

// MissingProducts lista los items sin entrada en el catálogo.
func (e EnrichedOrder) MissingProducts() []string {
	var out []string
	for _, l := range e.Lines {
		if l.Unavailable {
			out = append(out, l.Item)
		}
	}
	return out
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
