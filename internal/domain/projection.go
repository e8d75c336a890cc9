package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ProjectionMonths is the fixed horizon of every projection
const ProjectionMonths = 6

// FinancialInputs are the validated numbers a projection is computed from.
// Amounts are expected to be non-negative; GrowthRatePercent is the
// month-over-month change applied to revenue and may be any sign.
type FinancialInputs struct {
	InitialInvestment decimal.Decimal `json:"initialInvestment"`
	MonthlyRevenue    decimal.Decimal `json:"monthlyRevenue"`
	MonthlyCosts      decimal.Decimal `json:"monthlyCosts"`
	GrowthRatePercent decimal.Decimal `json:"growthRatePercent"`
}

// PeriodProjection is a single month of a projection. Every amount
// is rounded to cents when recorded.
type PeriodProjection struct {
	Month            int             `json:"month"`
	Revenue          decimal.Decimal `json:"revenue"`
	Costs            decimal.Decimal `json:"costs"`
	Profit           decimal.Decimal `json:"profit"`
	CumulativeProfit decimal.Decimal `json:"cumulativeProfit"`
	NetProfit        decimal.Decimal `json:"netProfit"`
}

type ProjectionAggregates struct {
	TotalRevenue6m    decimal.Decimal `json:"totalRevenue6m"`
	TotalCosts6m      decimal.Decimal `json:"totalCosts6m"`
	GrowthRatePercent decimal.Decimal `json:"growthRatePercent"`
	InitialInvestment decimal.Decimal `json:"initialInvestment"`
}

// ProjectionSummary is the full output of a projection. BreakEvenMonth
// is nil when net profit never turns positive within the horizon.
type ProjectionSummary struct {
	Roi            decimal.Decimal      `json:"roi"`
	TotalProfit    decimal.Decimal      `json:"totalProfit"`
	BreakEvenMonth *int                 `json:"breakEvenMonth"`
	Projections    []PeriodProjection   `json:"projections"`
	Aggregates     ProjectionAggregates `json:"aggregates"`
}

const NoBreakEvenLabel = "Not within 6 months"

func (s ProjectionSummary) HasBreakEven() bool {
	return s.BreakEvenMonth != nil
}

// BreakEvenLabel is the display value for the break-even month
func (s ProjectionSummary) BreakEvenLabel() string {
	if s.BreakEvenMonth == nil {
		return NoBreakEvenLabel
	}
	return strconv.Itoa(*s.BreakEvenMonth)
}

// PersistedBreakEvenMonth maps a missing break-even to 0, which is
// how it is archived.
func (s ProjectionSummary) PersistedBreakEvenMonth() int32 {
	if s.BreakEvenMonth == nil {
		return 0
	}
	return int32(*s.BreakEvenMonth)
}

// IsComplete reports whether the summary carries every month of the
// horizon, in order. Exports refuse anything else.
func (s ProjectionSummary) IsComplete() bool {
	if len(s.Projections) != ProjectionMonths {
		return false
	}
	for i, p := range s.Projections {
		if p.Month != i+1 {
			return false
		}
	}
	return true
}
