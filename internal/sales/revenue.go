package sales

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the size of the revenue ranking used by CalculateRevenue.
const DefaultTopN = 3

// CalculateRevenue returns the top DefaultTopN products by revenue.
func (t *Table) CalculateRevenue() ([]ProductRevenue, error) {
	return t.TopRevenue(DefaultTopN)
}

// TopRevenue derives Revenue = Quantity × Price_per_unit on every record,
// sums it per product and returns the n largest, highest first. Products
// with equal revenue keep the order in which they first appear.
//
// The derived revenue stays on the table; calling again recomputes the same
// values rather than accumulating.
func (t *Table) TopRevenue(n int) ([]ProductRevenue, error) {
	if !t.Loaded() {
		return nil, ErrUnavailable
	}

	if err := t.computeRevenue(); err != nil {
		return nil, fmt.Errorf("compute revenue: %w", err)
	}

	sums := newProductSums()
	for _, r := range t.records {
		sums.add(r.Product, r.revenue)
	}

	ranked := make([]ProductRevenue, sums.len())
	for i, product := range sums.order {
		ranked[i] = ProductRevenue{Product: product, Revenue: sums.sums[i]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// computeRevenue writes the Revenue column. Nothing is written unless every
// record converts.
func (t *Table) computeRevenue() error {
	revenues := make([]decimal.Decimal, len(t.records))
	for i, r := range t.records {
		qty, err := quantity(r)
		if err != nil {
			return err
		}
		price, err := pricePerUnit(r)
		if err != nil {
			return err
		}
		revenues[i] = qty.Mul(price)
	}

	for i := range t.records {
		t.records[i].revenue = revenues[i]
		t.records[i].hasRevenue = true
	}
	t.revenueComputed = true
	return nil
}
