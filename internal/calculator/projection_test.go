package calculator

import (
	"testing"

	"profitcalc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func inputs(investment, revenue, costs, growth float64) domain.FinancialInputs {
	return domain.FinancialInputs{
		InitialInvestment: decimal.NewFromFloat(investment),
		MonthlyRevenue:    decimal.NewFromFloat(revenue),
		MonthlyCosts:      decimal.NewFromFloat(costs),
		GrowthRatePercent: decimal.NewFromFloat(growth),
	}
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func TestComputeProjection(t *testing.T) {
	t.Run("growing revenue without break even", func(t *testing.T) {
		out := ComputeProjection(inputs(10000, 3000, 2000, 5))

		type row struct {
			revenue, profit, cumulative, net string
		}
		expected := []row{
			{"3000.00", "1000.00", "1000.00", "-9000.00"},
			{"3150.00", "1150.00", "2150.00", "-7850.00"},
			{"3307.50", "1307.50", "3457.50", "-6542.50"},
			{"3472.88", "1472.88", "4930.38", "-5069.63"},
			{"3646.52", "1646.52", "6576.89", "-3423.11"},
			{"3828.84", "1828.84", "8405.74", "-1594.26"},
		}
		require.Len(t, out.Projections, len(expected))
		for i, e := range expected {
			p := out.Projections[i]
			require.Equal(t, i+1, p.Month)
			require.Equal(t, e.revenue, fixed(p.Revenue), "revenue month %d", p.Month)
			require.Equal(t, "2000.00", fixed(p.Costs))
			require.Equal(t, e.profit, fixed(p.Profit), "profit month %d", p.Month)
			require.Equal(t, e.cumulative, fixed(p.CumulativeProfit), "cumulative month %d", p.Month)
			require.Equal(t, e.net, fixed(p.NetProfit), "net month %d", p.Month)
		}

		require.Nil(t, out.BreakEvenMonth)
		require.Equal(t, domain.NoBreakEvenLabel, out.BreakEvenLabel())
		require.Equal(t, "-1594.26", fixed(out.TotalProfit))
		require.Equal(t, "-15.94", fixed(out.Roi))
		require.Equal(t, "20405.74", fixed(out.Aggregates.TotalRevenue6m))
		require.Equal(t, "12000.00", fixed(out.Aggregates.TotalCosts6m))
		require.True(t, out.Aggregates.GrowthRatePercent.Equal(decimal.NewFromInt(5)))
		require.True(t, out.Aggregates.InitialInvestment.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("breaks even in first positive month", func(t *testing.T) {
		out := ComputeProjection(inputs(5000, 4000, 1500, 0))

		// net: -2500, 0, 2500, ...; zero does not count
		require.NotNil(t, out.BreakEvenMonth)
		require.Equal(t, 3, *out.BreakEvenMonth)
		require.Equal(t, "3", out.BreakEvenLabel())
		require.Equal(t, int32(3), out.PersistedBreakEvenMonth())
		require.Equal(t, "0.00", fixed(out.Projections[1].NetProfit))
		require.Equal(t, "10000.00", fixed(out.TotalProfit))
		require.Equal(t, "200.00", fixed(out.Roi))
	})

	t.Run("breaks even in month one", func(t *testing.T) {
		out := ComputeProjection(inputs(100, 1000, 500, 10))

		require.NotNil(t, out.BreakEvenMonth)
		require.Equal(t, 1, *out.BreakEvenMonth)
	})

	t.Run("zero investment and zero profit", func(t *testing.T) {
		out := ComputeProjection(inputs(0, 1000, 1000, 0))

		for _, p := range out.Projections {
			require.Equal(t, "0.00", fixed(p.Profit))
			require.Equal(t, "0.00", fixed(p.NetProfit))
		}
		require.Nil(t, out.BreakEvenMonth)
		require.Equal(t, int32(0), out.PersistedBreakEvenMonth())
		require.True(t, out.Roi.IsZero())
	})

	t.Run("zero investment roi is zero even when profitable", func(t *testing.T) {
		out := ComputeProjection(inputs(0, 5000, 1000, 12.5))

		require.True(t, out.Roi.IsZero())
		require.True(t, out.TotalProfit.IsPositive())
		require.Equal(t, 1, *out.BreakEvenMonth)
	})

	t.Run("growth of -100 zeroes revenue after month one", func(t *testing.T) {
		out := ComputeProjection(inputs(1000, 500, 100, -100))

		require.Equal(t, "500.00", fixed(out.Projections[0].Revenue))
		for _, p := range out.Projections[1:] {
			require.True(t, p.Revenue.IsZero(), "month %d revenue %s", p.Month, p.Revenue)
			require.Equal(t, "-100.00", fixed(p.Profit))
		}
		require.Equal(t, "500.00", fixed(out.Aggregates.TotalRevenue6m))
	})

	t.Run("growth below -100 alternates sign without clamping", func(t *testing.T) {
		out := ComputeProjection(inputs(0, 100, 0, -150))

		// multiplier is (-0.5)^(month-1)
		expected := []string{"100.00", "-50.00", "25.00", "-12.50", "6.25", "-3.13"}
		for i, e := range expected {
			require.Equal(t, e, fixed(out.Projections[i].Revenue))
		}
		require.Equal(t, "65.63", fixed(out.Aggregates.TotalRevenue6m))
	})

	t.Run("fractional rates stay exact", func(t *testing.T) {
		out := ComputeProjection(inputs(0, 1000, 0, 0.1))

		// 1000 * 1.001^5 = 1005.010010005001
		require.Equal(t, "1005.01", fixed(out.Projections[5].Revenue))
	})
}

func TestComputeProjection_properties(t *testing.T) {
	cases := []domain.FinancialInputs{
		inputs(10000, 3000, 2000, 5),
		inputs(0, 1000, 1000, 0),
		inputs(250000, 12000, 9000.75, 3.3),
		inputs(1, 0, 0, 0),
		inputs(0, 500, 0, -100),
		inputs(75000, 8000, 15000, 25),
		inputs(333.33, 111.11, 22.22, -7.77),
	}

	for _, in := range cases {
		out := ComputeProjection(in)

		t.Run("deterministic", func(t *testing.T) {
			require.Equal(t, out, ComputeProjection(in))
		})

		t.Run("horizon", func(t *testing.T) {
			require.Len(t, out.Projections, domain.ProjectionMonths)
			require.True(t, out.IsComplete())
			for i, p := range out.Projections {
				require.Equal(t, i+1, p.Month)
			}
		})

		t.Run("cumulative identity", func(t *testing.T) {
			tolerance := decimal.NewFromFloat(0.01)
			for i := 1; i < len(out.Projections); i++ {
				prev, cur := out.Projections[i-1], out.Projections[i]
				diff := prev.CumulativeProfit.Add(cur.Profit).Sub(cur.CumulativeProfit).Abs()
				require.True(t, diff.LessThanOrEqual(tolerance), "month %d off by %s", cur.Month, diff)
			}
		})

		t.Run("break even is first strictly positive month", func(t *testing.T) {
			if out.BreakEvenMonth == nil {
				for _, p := range out.Projections {
					require.False(t, p.NetProfit.IsPositive())
				}
				return
			}
			be := *out.BreakEvenMonth
			require.True(t, out.Projections[be-1].NetProfit.IsPositive())
			for _, p := range out.Projections[:be-1] {
				require.False(t, p.NetProfit.IsPositive())
			}
		})

		t.Run("costs are flat", func(t *testing.T) {
			for _, p := range out.Projections {
				require.Equal(t, fixed(in.MonthlyCosts), fixed(p.Costs))
			}
		})
	}
}

func TestComputeProjection_noGrowth(t *testing.T) {
	out := ComputeProjection(inputs(1200, 2500.5, 1000.25, 0))

	for _, p := range out.Projections {
		require.Equal(t, "2500.50", fixed(p.Revenue))
		require.Equal(t, "1500.25", fixed(p.Profit))
	}
	require.Equal(t, "15003.00", fixed(out.Aggregates.TotalRevenue6m))
	require.Equal(t, "6001.50", fixed(out.Aggregates.TotalCosts6m))
}
