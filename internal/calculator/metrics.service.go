package calculator

import (
	"fmt"
	"time"

	"profitcalc/internal/db/models/postgres/public/model"
	"profitcalc/internal/domain"

	"github.com/montanaflynn/stats"
)

// AnalyticsAccumulator folds archived calculations into analytics one page
// at a time. Only the roi of each record is kept; percentiles need them all.
type AnalyticsAccumulator struct {
	rois              []float64
	profitSum         float64
	breakEvenCount    int
	breakEvenMonthSum float64
	latest            time.Time
}

func (a *AnalyticsAccumulator) Add(records ...model.ProfitCalculation) {
	for _, r := range records {
		a.rois = append(a.rois, r.CalculatedRoi.InexactFloat64())
		a.profitSum += r.ProjectedProfit.InexactFloat64()
		// 0 means the projection never broke even
		if r.BreakEvenMonth > 0 {
			a.breakEvenCount++
			a.breakEvenMonthSum += float64(r.BreakEvenMonth)
		}
		if r.CalculationDate.After(a.latest) {
			a.latest = r.CalculationDate
		}
	}
}

func (a *AnalyticsAccumulator) Result() (*domain.CalculationAnalytics, error) {
	count := len(a.rois)
	out := &domain.CalculationAnalytics{
		Count: count,
	}
	if count == 0 {
		return out, nil
	}

	var err error
	out.MeanRoi, err = stats.Mean(a.rois)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean roi: %w", err)
	}
	out.MedianRoi, err = stats.Median(a.rois)
	if err != nil {
		return nil, fmt.Errorf("failed to compute median roi: %w", err)
	}
	out.P90Roi, err = stats.PercentileNearestRank(a.rois, 90)
	if err != nil {
		return nil, fmt.Errorf("failed to compute p90 roi: %w", err)
	}
	out.MeanProjectedProfit = a.profitSum / float64(count)

	out.BreakEvenRate = float64(a.breakEvenCount) / float64(count)
	if a.breakEvenCount > 0 {
		mean := a.breakEvenMonthSum / float64(a.breakEvenCount)
		out.MeanBreakEvenMonth = &mean
	}

	if !a.latest.IsZero() {
		latest := a.latest
		out.LatestCalculation = &latest
	}

	return out, nil
}

// CalculateAnalytics aggregates a set of archived calculations
func CalculateAnalytics(records []model.ProfitCalculation) (*domain.CalculationAnalytics, error) {
	acc := &AnalyticsAccumulator{}
	acc.Add(records...)
	return acc.Result()
}
