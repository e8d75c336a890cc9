package service

import (
	"context"
	"fmt"
	"time"

	"profitcalc/internal/calculator"
	"profitcalc/internal/db/models/postgres/public/model"
	"profitcalc/internal/domain"
	"profitcalc/internal/logger"
	"profitcalc/internal/repository"

	"github.com/google/uuid"
)

type CalculationResult struct {
	CalculationID uuid.UUID
	Contact       Contact
	Summary       domain.ProjectionSummary
}

type CalculationService interface {
	// Calculate validates the submission, projects it and archives the
	// record. Nothing is returned unless the record was stored.
	Calculate(ctx context.Context, in CalculationSubmission, userIP string) (*CalculationResult, error)
	ListCalculations(ctx context.Context, filter repository.CalculationListFilter) ([]model.ProfitCalculation, error)
	Analytics(ctx context.Context, since *time.Time) (*domain.CalculationAnalytics, error)
}

type calculationServiceHandler struct {
	CalculationRepository repository.CalculationRepository
	now                   func() time.Time
}

func NewCalculationService(calculationRepository repository.CalculationRepository) CalculationService {
	return calculationServiceHandler{
		CalculationRepository: calculationRepository,
		now:                   time.Now,
	}
}

func (h calculationServiceHandler) Calculate(ctx context.Context, in CalculationSubmission, userIP string) (*CalculationResult, error) {
	validated, err := ValidateSubmission(in)
	if err != nil {
		return nil, err
	}

	summary := calculator.ComputeProjection(validated.Inputs)

	record := model.ProfitCalculation{
		CalculationID:     uuid.New(),
		UserName:          validated.Contact.UserName,
		UserEmail:         validated.Contact.UserEmail,
		CompanyName:       validated.Contact.CompanyName,
		InitialInvestment: validated.Inputs.InitialInvestment,
		MonthlyRevenue:    validated.Inputs.MonthlyRevenue,
		MonthlyCosts:      validated.Inputs.MonthlyCosts,
		GrowthRate:        validated.Inputs.GrowthRatePercent,
		CalculatedRoi:     summary.Roi,
		ProjectedProfit:   summary.TotalProfit,
		BreakEvenMonth:    summary.PersistedBreakEvenMonth(),
		CalculationDate:   h.now().UTC(),
		UserIP:            userIP,
	}

	stored, err := h.CalculationRepository.Add(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to store calculation: %w", err)
	}

	logger.FromContext(ctx).Infow(
		"stored calculation",
		"calculationID", stored.CalculationID,
		"roi", summary.Roi.String(),
		"breakEvenMonth", summary.BreakEvenLabel(),
	)

	return &CalculationResult{
		CalculationID: stored.CalculationID,
		Contact:       validated.Contact,
		Summary:       summary,
	}, nil
}

func (h calculationServiceHandler) ListCalculations(ctx context.Context, filter repository.CalculationListFilter) ([]model.ProfitCalculation, error) {
	out, err := h.CalculationRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	return out, nil
}

// analyticsPageSize bounds each read while paging through the archive
const analyticsPageSize = 500

// Analytics walks the archive newest first with a keyset cursor. The scan
// is capped at its start time so rows stored meanwhile are neither
// counted nor able to shift later pages.
func (h calculationServiceHandler) Analytics(ctx context.Context, since *time.Time) (*domain.CalculationAnalytics, error) {
	until := h.now().UTC()
	filter := repository.CalculationListFilter{
		Limit: analyticsPageSize,
		Since: since,
		Until: &until,
	}

	acc := &calculator.AnalyticsAccumulator{}
	for {
		page, err := h.CalculationRepository.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list calculations for analytics: %w", err)
		}
		acc.Add(page...)
		if len(page) < analyticsPageSize {
			break
		}

		last := page[len(page)-1]
		filter.After = &repository.CalculationCursor{
			CalculationDate: last.CalculationDate,
			CalculationID:   last.CalculationID,
		}
	}

	out, err := acc.Result()
	if err != nil {
		return nil, fmt.Errorf("failed to calculate analytics: %w", err)
	}

	return out, nil
}
