package calculator

import (
	"profitcalc/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeProjection projects monthly revenue, profit and net position over
// the fixed six month horizon. Revenue compounds by the growth rate starting
// in month 2; costs stay flat. Running totals are kept unrounded and only
// rounded to cents when a month is recorded, so rounding never compounds.
//
// It never fails. Inputs are trusted to be validated already, and values
// outside the usual range (eg growth below -100%) still compute.
func ComputeProjection(in domain.FinancialInputs) domain.ProjectionSummary {
	growthFactor := decimal.NewFromInt(1).Add(in.GrowthRatePercent.Shift(-2))
	multiplier := decimal.NewFromInt(1)

	cumulativeProfit := decimal.Zero
	totalRevenue := decimal.Zero
	var breakEvenMonth *int

	projections := make([]domain.PeriodProjection, 0, domain.ProjectionMonths)
	for month := 1; month <= domain.ProjectionMonths; month++ {
		if month > 1 {
			multiplier = multiplier.Mul(growthFactor)
		}

		revenue := in.MonthlyRevenue.Mul(multiplier)
		profit := revenue.Sub(in.MonthlyCosts)
		cumulativeProfit = cumulativeProfit.Add(profit)
		totalRevenue = totalRevenue.Add(revenue)
		netProfit := cumulativeProfit.Sub(in.InitialInvestment)

		// break even needs net profit strictly above zero
		if breakEvenMonth == nil && netProfit.IsPositive() {
			m := month
			breakEvenMonth = &m
		}

		projections = append(projections, domain.PeriodProjection{
			Month:            month,
			Revenue:          round2(revenue),
			Costs:            round2(in.MonthlyCosts),
			Profit:           round2(profit),
			CumulativeProfit: round2(cumulativeProfit),
			NetProfit:        round2(netProfit),
		})
	}

	totalProfit := cumulativeProfit.Sub(in.InitialInvestment)

	roi := decimal.Zero
	if in.InitialInvestment.IsPositive() {
		roi = round2(totalProfit.Div(in.InitialInvestment).Mul(hundred))
	}

	return domain.ProjectionSummary{
		Roi:            roi,
		TotalProfit:    round2(totalProfit),
		BreakEvenMonth: breakEvenMonth,
		Projections:    projections,
		Aggregates: domain.ProjectionAggregates{
			TotalRevenue6m:    round2(totalRevenue),
			TotalCosts6m:      round2(in.MonthlyCosts.Mul(decimal.NewFromInt(domain.ProjectionMonths))),
			GrowthRatePercent: in.GrowthRatePercent,
			InitialInvestment: in.InitialInvestment,
		},
	}
}
