// file: service/aggregate_test.go

package service

import (
	"math"
	"product-insights-api/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatistics(t *testing.T) {
	t.Run("march scenario", func(t *testing.T) {
		data := []model.Transaction{
			tx(1, "a", "", 30, true, "2024-03-05"),
			tx(2, "b", "", 75, false, "2024-03-10"),
		}
		stats := Statistics(data)
		assert.Equal(t, model.Statistics{TotalSaleAmount: 30, TotalSoldItems: 1, TotalNotSoldItems: 1}, stats)
	})

	t.Run("sums sold items only and counts add up", func(t *testing.T) {
		data := fixture()
		stats := Statistics(data)

		assert.Equal(t, 1102.65, stats.TotalSaleAmount)
		assert.Equal(t, 4, stats.TotalSoldItems)
		assert.Equal(t, 2, stats.TotalNotSoldItems)
		assert.Equal(t, len(data), stats.TotalSoldItems+stats.TotalNotSoldItems)
	})

	t.Run("decimal summation avoids float drift", func(t *testing.T) {
		data := []model.Transaction{
			tx(1, "a", "", 0.1, true, ""),
			tx(2, "b", "", 0.2, true, ""),
		}
		assert.Equal(t, 0.3, Statistics(data).TotalSaleAmount)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, model.Statistics{}, Statistics(nil))
	})
}

func TestPriceHistogram(t *testing.T) {
	t.Run("march scenario", func(t *testing.T) {
		data := []model.Transaction{
			tx(1, "a", "", 30, true, "2024-03-05"),
			tx(2, "b", "", 75, false, "2024-03-10"),
		}
		got := PriceHistogram(data)
		assert.Equal(t, model.PriceRanges{
			{Label: BucketUnder50, Count: 1},
			{Label: Bucket50To100, Count: 1},
			{Label: Bucket101To200, Count: 0},
			{Label: Bucket201To500, Count: 0},
			{Label: BucketOver500, Count: 0},
		}, got)
	})

	t.Run("bucket edges", func(t *testing.T) {
		cases := map[float64]string{
			0:      BucketUnder50,
			49.99:  BucketUnder50,
			50:     Bucket50To100,
			100:    Bucket50To100,
			100.01: Bucket101To200,
			200:    Bucket101To200,
			200.5:  Bucket201To500,
			500:    Bucket201To500,
			500.01: BucketOver500,
			-5:     BucketUnder50,
		}
		for price, want := range cases {
			got := PriceHistogram([]model.Transaction{{Price: price}})
			assert.Equal(t, 1, got.Count(want), "price %v", price)
			assert.Equal(t, 1, got.Total(), "price %v", price)
		}
	})

	t.Run("buckets partition the input", func(t *testing.T) {
		data := append(fixture(), model.Transaction{Price: math.NaN()})
		got := PriceHistogram(data)
		assert.Equal(t, len(data), got.Total())
		assert.Len(t, got, 5)
	})
}
