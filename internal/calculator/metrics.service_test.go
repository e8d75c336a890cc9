package calculator

import (
	"testing"
	"time"

	"profitcalc/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCalculateAnalytics(t *testing.T) {
	t.Run("no records", func(t *testing.T) {
		out, err := CalculateAnalytics(nil)
		require.NoError(t, err)
		require.Equal(t, 0, out.Count)
		require.Nil(t, out.MeanBreakEvenMonth)
		require.Nil(t, out.LatestCalculation)
	})

	t.Run("single record", func(t *testing.T) {
		date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		out, err := CalculateAnalytics([]model.ProfitCalculation{
			{
				CalculatedRoi:   decimal.RequireFromString("-15.94"),
				ProjectedProfit: decimal.RequireFromString("-1594.26"),
				CalculationDate: date,
			},
		})
		require.NoError(t, err)
		require.Equal(t, 1, out.Count)
		require.InDelta(t, -15.94, out.P90Roi, 1e-9)
		require.Equal(t, 0.0, out.BreakEvenRate)
		require.Nil(t, out.MeanBreakEvenMonth)
		require.Equal(t, date, *out.LatestCalculation)
	})

	t.Run("many records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		records := []model.ProfitCalculation{}
		for i := 1; i <= 10; i++ {
			breakEven := int32(0)
			if i%2 == 0 {
				breakEven = int32(i / 2)
			}
			records = append(records, model.ProfitCalculation{
				CalculatedRoi:   decimal.NewFromInt(int64(i)),
				ProjectedProfit: decimal.NewFromInt(int64(i * 100)),
				BreakEvenMonth:  breakEven,
				CalculationDate: start.AddDate(0, 0, i),
			})
		}

		out, err := CalculateAnalytics(records)
		require.NoError(t, err)
		require.Equal(t, 10, out.Count)
		require.InDelta(t, 5.5, out.MeanRoi, 1e-9)
		require.InDelta(t, 5.5, out.MedianRoi, 1e-9)
		require.InDelta(t, 9, out.P90Roi, 1e-9)
		require.InDelta(t, 550, out.MeanProjectedProfit, 1e-9)
		require.InDelta(t, 0.5, out.BreakEvenRate, 1e-9)
		// months 1..5
		require.InDelta(t, 3, *out.MeanBreakEvenMonth, 1e-9)
		require.Equal(t, start.AddDate(0, 0, 10), *out.LatestCalculation)
	})
}

func TestAnalyticsAccumulator(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []model.ProfitCalculation{}
	for i := 1; i <= 7; i++ {
		records = append(records, model.ProfitCalculation{
			CalculatedRoi:   decimal.NewFromInt(int64(i * 3)),
			ProjectedProfit: decimal.NewFromInt(int64(i * 10)),
			BreakEvenMonth:  int32(i % 4),
			CalculationDate: start.Add(time.Duration(i) * time.Hour),
		})
	}

	acc := &AnalyticsAccumulator{}
	acc.Add(records[:3]...)
	acc.Add(records[3:]...)
	paged, err := acc.Result()
	require.NoError(t, err)

	whole, err := CalculateAnalytics(records)
	require.NoError(t, err)

	require.Equal(t, whole, paged)
	require.Equal(t, 7, paged.Count)
}
