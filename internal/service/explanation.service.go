package service

import (
	"context"
	"fmt"
	"strings"

	"profitcalc/internal/domain"
	"profitcalc/internal/logger"
	"profitcalc/internal/repository"
)

type ExplanationService interface {
	// Explain describes a projection in a few sentences of plain english.
	// It only fails when there is nothing to explain.
	Explain(ctx context.Context, summary *domain.ProjectionSummary) (string, error)
}

type explanationServiceHandler struct {
	// nil when no api key is configured
	GptRepository repository.GptRepository
}

func NewExplanationService(gptRepository repository.GptRepository) ExplanationService {
	return explanationServiceHandler{
		GptRepository: gptRepository,
	}
}

func (h explanationServiceHandler) Explain(ctx context.Context, summary *domain.ProjectionSummary) (string, error) {
	if summary == nil || !summary.IsComplete() {
		return "", ErrNoCalculationData
	}

	if h.GptRepository == nil {
		return fallbackExplanation(*summary), nil
	}

	out, err := h.GptRepository.Complete(ctx, explanationPrompt(*summary))
	if err != nil || out == "" {
		logger.FromContext(ctx).Warnw("falling back to templated explanation", "error", err)
		return fallbackExplanation(*summary), nil
	}

	return out, nil
}

func explanationPrompt(summary domain.ProjectionSummary) string {
	lines := []string{
		"You are helping a small business owner read a six month profit projection.",
		"Explain the result in at most four sentences, in plain english, without inventing numbers.",
		fmt.Sprintf("Initial investment: %s", FormatMoney(summary.Aggregates.InitialInvestment)),
		fmt.Sprintf("Monthly growth rate: %s%%", summary.Aggregates.GrowthRatePercent.String()),
		fmt.Sprintf("Total revenue over 6 months: %s", FormatMoney(summary.Aggregates.TotalRevenue6m)),
		fmt.Sprintf("Total costs over 6 months: %s", FormatMoney(summary.Aggregates.TotalCosts6m)),
		fmt.Sprintf("Net profit after recovering the investment: %s", FormatMoney(summary.TotalProfit)),
		fmt.Sprintf("ROI: %s%%", summary.Roi.StringFixed(2)),
		fmt.Sprintf("Break-even month: %s", summary.BreakEvenLabel()),
		"Month by month net position:",
	}
	for _, p := range summary.Projections {
		lines = append(lines, fmt.Sprintf("  month %d: revenue %s, net %s", p.Month, FormatMoney(p.Revenue), FormatMoney(p.NetProfit)))
	}
	return strings.Join(lines, "\n")
}

func fallbackExplanation(summary domain.ProjectionSummary) string {
	growth := summary.Aggregates.GrowthRatePercent
	var trend string
	switch {
	case growth.IsPositive():
		trend = fmt.Sprintf("Revenue grows %s%% each month", growth.String())
	case growth.IsNegative():
		trend = fmt.Sprintf("Revenue shrinks %s%% each month", growth.Neg().String())
	default:
		trend = "Revenue stays flat"
	}

	var breakEven string
	if summary.HasBreakEven() {
		breakEven = fmt.Sprintf("The initial investment is recovered in month %s.", summary.BreakEvenLabel())
	} else {
		breakEven = "The initial investment is not recovered within 6 months."
	}

	return fmt.Sprintf(
		"%s, bringing in %s over six months against %s of costs. After the %s initial investment the projected net position is %s, an ROI of %s%%. %s",
		trend,
		FormatMoney(summary.Aggregates.TotalRevenue6m),
		FormatMoney(summary.Aggregates.TotalCosts6m),
		FormatMoney(summary.Aggregates.InitialInvestment),
		FormatMoney(summary.TotalProfit),
		summary.Roi.StringFixed(2),
		breakEven,
	)
}
