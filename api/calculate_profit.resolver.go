package api

import (
	"errors"
	"fmt"

	"profitcalc/internal/domain"
	"profitcalc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	validationErrorMessage = "Please correct the highlighted fields."
	saveErrorMessage       = "Something went wrong while saving your calculation. Please try again."
)

type projectionRow struct {
	Month            int     `json:"month"`
	Revenue          float64 `json:"revenue"`
	Costs            float64 `json:"costs"`
	Profit           float64 `json:"profit"`
	CumulativeProfit float64 `json:"cumulativeProfit"`
	NetProfit        float64 `json:"netProfit"`
}

type projectionSummaryBlock struct {
	InitialInvestment float64 `json:"initialInvestment"`
	TotalRevenue6m    float64 `json:"totalRevenue6m"`
	TotalCosts6m      float64 `json:"totalCosts6m"`
	GrowthRate        float64 `json:"growthRate"`
}

// chartData is laid out as parallel series for the frontend chart
type chartData struct {
	Labels           []string  `json:"labels"`
	Revenue          []float64 `json:"revenue"`
	Costs            []float64 `json:"costs"`
	NetProfit        []float64 `json:"netProfit"`
	CumulativeProfit []float64 `json:"cumulativeProfit"`
}

type calculateProfitResponse struct {
	CalculationID  uuid.UUID              `json:"calculationID"`
	Roi            float64                `json:"roi"`
	TotalProfit    float64                `json:"totalProfit"`
	BreakEvenMonth *int                   `json:"breakEvenMonth"`
	BreakEvenLabel string                 `json:"breakEvenLabel"`
	Projections    []projectionRow        `json:"projections"`
	Summary        projectionSummaryBlock `json:"summary"`
	Chart          chartData              `json:"chart"`
	ExportToken    string                 `json:"exportToken"`
}

func (m ApiHandler) calculateProfit(c *gin.Context) {
	var requestBody service.CalculationSubmission
	if err := c.ShouldBind(&requestBody); err != nil {
		returnErrorJsonCode(errors.New("invalid request body"), c, 400)
		return
	}

	result, err := m.CalculationService.Calculate(c.Request.Context(), requestBody, c.ClientIP())
	if err != nil {
		verr := &service.ValidationError{}
		if errors.As(err, &verr) {
			c.AbortWithStatusJSON(400, gin.H{
				"error":  validationErrorMessage,
				"fields": verr.Fields,
			})
			return
		}
		returnErrorJson(err, c, saveErrorMessage)
		return
	}

	token, err := m.ExportTokens.Issue(result.CalculationID, result.Contact, result.Summary)
	if err != nil {
		returnErrorJson(err, c, internalErrorMessage)
		return
	}

	out := newCalculateProfitResponse(result.CalculationID, result.Summary)
	out.ExportToken = token

	c.JSON(200, out)
}

func newCalculateProfitResponse(calculationID uuid.UUID, summary domain.ProjectionSummary) calculateProfitResponse {
	out := calculateProfitResponse{
		CalculationID:  calculationID,
		Roi:            summary.Roi.InexactFloat64(),
		TotalProfit:    summary.TotalProfit.InexactFloat64(),
		BreakEvenMonth: summary.BreakEvenMonth,
		BreakEvenLabel: summary.BreakEvenLabel(),
		Projections:    make([]projectionRow, 0, len(summary.Projections)),
		Summary: projectionSummaryBlock{
			InitialInvestment: summary.Aggregates.InitialInvestment.InexactFloat64(),
			TotalRevenue6m:    summary.Aggregates.TotalRevenue6m.InexactFloat64(),
			TotalCosts6m:      summary.Aggregates.TotalCosts6m.InexactFloat64(),
			GrowthRate:        summary.Aggregates.GrowthRatePercent.InexactFloat64(),
		},
	}

	for _, p := range summary.Projections {
		row := projectionRow{
			Month:            p.Month,
			Revenue:          p.Revenue.InexactFloat64(),
			Costs:            p.Costs.InexactFloat64(),
			Profit:           p.Profit.InexactFloat64(),
			CumulativeProfit: p.CumulativeProfit.InexactFloat64(),
			NetProfit:        p.NetProfit.InexactFloat64(),
		}
		out.Projections = append(out.Projections, row)

		out.Chart.Labels = append(out.Chart.Labels, fmt.Sprintf("Month %d", p.Month))
		out.Chart.Revenue = append(out.Chart.Revenue, row.Revenue)
		out.Chart.Costs = append(out.Chart.Costs, row.Costs)
		out.Chart.NetProfit = append(out.Chart.NetProfit, row.NetProfit)
		out.Chart.CumulativeProfit = append(out.Chart.CumulativeProfit, row.CumulativeProfit)
	}

	return out
}
