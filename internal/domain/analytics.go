package domain

import "time"

// CalculationAnalytics summarizes archived calculations for the admin
// dashboard. Ratios are fractions, not percentages.
type CalculationAnalytics struct {
	Count               int        `json:"count"`
	MeanRoi             float64    `json:"meanRoi"`
	MedianRoi           float64    `json:"medianRoi"`
	P90Roi              float64    `json:"p90Roi"`
	MeanProjectedProfit float64    `json:"meanProjectedProfit"`
	BreakEvenRate       float64    `json:"breakEvenRate"`
	MeanBreakEvenMonth  *float64   `json:"meanBreakEvenMonth"`
	LatestCalculation   *time.Time `json:"latestCalculation"`
}
