// file: service/aggregate.go

package service

import (
	"product-insights-api/model"

	"github.com/shopspring/decimal"
)

// Price bucket labels, in histogram order.
const (
	BucketUnder50  = "Under $50"
	Bucket50To100  = "$50 - $100"
	Bucket101To200 = "$101 - $200"
	Bucket201To500 = "$201 - $500"
	BucketOver500  = "Over $500"
)

var bucketLabels = []string{BucketUnder50, Bucket50To100, Bucket101To200, Bucket201To500, BucketOver500}

// Statistics sums the price of sold transactions and counts sold and unsold ones.
func Statistics(txs []model.Transaction) model.Statistics {
	total := decimal.Zero
	var stats model.Statistics
	for _, tx := range txs {
		if tx.Sold {
			total = total.Add(decimal.NewFromFloat(tx.Price))
			stats.TotalSoldItems++
		} else {
			stats.TotalNotSoldItems++
		}
	}
	stats.TotalSaleAmount = total.InexactFloat64()
	return stats
}

// bucketIndex places a price in exactly one bucket. Anything that fails the
// lower comparisons, NaN included, lands in the last bucket.
func bucketIndex(price float64) int {
	switch {
	case price < 50:
		return 0
	case price >= 50 && price <= 100:
		return 1
	case price > 100 && price <= 200:
		return 2
	case price > 200 && price <= 500:
		return 3
	default:
		return 4
	}
}

// PriceHistogram counts transactions per price bucket. Counts sum to len(txs).
func PriceHistogram(txs []model.Transaction) model.PriceRanges {
	ranges := make(model.PriceRanges, len(bucketLabels))
	for i, label := range bucketLabels {
		ranges[i].Label = label
	}
	for _, tx := range txs {
		ranges[bucketIndex(tx.Price)].Count++
	}
	return ranges
}
