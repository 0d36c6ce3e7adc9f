package sales

import "github.com/shopspring/decimal"

// productSums accumulates a decimal per product, remembering the order in
// which products were first seen.
type productSums struct {
	order []string
	index map[string]int
	sums  []decimal.Decimal
}

func newProductSums() *productSums {
	return &productSums{index: make(map[string]int)}
}

func (g *productSums) add(product string, v decimal.Decimal) {
	i, ok := g.index[product]
	if !ok {
		i = len(g.order)
		g.index[product] = i
		g.order = append(g.order, product)
		g.sums = append(g.sums, decimal.Zero)
	}
	g.sums[i] = g.sums[i].Add(v)
}

func (g *productSums) len() int { return len(g.order) }

// quantity parses the Quantity cell of r.
func quantity(r Record) (decimal.Decimal, error) {
	d, ok := ToNumeric(r.Quantity)
	if !ok {
		return decimal.Decimal{}, &CellError{Line: r.Line, Column: ColQuantity, Value: r.Quantity}
	}
	return d, nil
}

// pricePerUnit parses the Price_per_unit cell of r.
func pricePerUnit(r Record) (decimal.Decimal, error) {
	d, ok := ToNumeric(r.PricePerUnit)
	if !ok {
		return decimal.Decimal{}, &CellError{Line: r.Line, Column: ColPricePerUnit, Value: r.PricePerUnit}
	}
	return d, nil
}
