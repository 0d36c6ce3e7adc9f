package sales

import "fmt"

// MaxMinSales returns the products with the largest and smallest total
// quantity. When several products share an extreme, the one that appears
// first in the file wins. A table with a single product returns it twice.
func (t *Table) MaxMinSales() (SellerPair, error) {
	if !t.Loaded() {
		return SellerPair{}, ErrUnavailable
	}
	if len(t.records) == 0 {
		return SellerPair{}, ErrNoRecords
	}

	sums := newProductSums()
	for _, r := range t.records {
		qty, err := quantity(r)
		if err != nil {
			return SellerPair{}, fmt.Errorf("total quantity: %w", err)
		}
		sums.add(r.Product, qty)
	}

	maxIdx, minIdx := 0, 0
	for i := 1; i < sums.len(); i++ {
		if sums.sums[i].GreaterThan(sums.sums[maxIdx]) {
			maxIdx = i
		}
		if sums.sums[i].LessThan(sums.sums[minIdx]) {
			minIdx = i
		}
	}

	return SellerPair{
		Best:          sums.order[maxIdx],
		BestQuantity:  sums.sums[maxIdx],
		Worst:         sums.order[minIdx],
		WorstQuantity: sums.sums[minIdx],
	}, nil
}
