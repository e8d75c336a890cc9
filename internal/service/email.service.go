package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"profitcalc/internal/domain"
	"profitcalc/internal/repository"
)

// EmailService is responsible for the business logic around emails.
// It handles subject and body generation but does NOT compute the
// projection - that is passed in already computed.
type EmailService interface {
	// SendReport emails the html report to the user who ran the projection
	SendReport(ctx context.Context, to string, name string, summary *domain.ProjectionSummary) error

	// GenerateReportEmail returns the subject and html body of the report
	// email. SendReport uses it; it is exposed for previews.
	GenerateReportEmail(name string, summary *domain.ProjectionSummary) (string, string, error)
}

type emailServiceHandler struct {
	EmailRepository repository.EmailRepository
	ReportService   ReportService
}

func NewEmailService(
	emailRepository repository.EmailRepository,
	reportService ReportService,
) EmailService {
	return &emailServiceHandler{
		EmailRepository: emailRepository,
		ReportService:   reportService,
	}
}

func (h *emailServiceHandler) SendReport(ctx context.Context, to string, name string, summary *domain.ProjectionSummary) error {
	if strings.TrimSpace(to) == "" {
		return errors.New("missing recipient")
	}

	subject, body, err := h.GenerateReportEmail(name, summary)
	if err != nil {
		return err
	}

	err = h.EmailRepository.SendEmail(ctx, to, subject, body)
	if err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}

	return nil
}

func (h *emailServiceHandler) GenerateReportEmail(name string, summary *domain.ProjectionSummary) (string, string, error) {
	body, err := h.ReportService.RenderHTML(summary, name)
	if err != nil {
		return "", "", err
	}

	subject := fmt.Sprintf(
		"Your Profit Prediction: %s%% ROI, break-even %s",
		summary.Roi.StringFixed(2),
		breakEvenPhrase(*summary),
	)

	return subject, string(body), nil
}

func breakEvenPhrase(summary domain.ProjectionSummary) string {
	if !summary.HasBreakEven() {
		return strings.ToLower(domain.NoBreakEvenLabel)
	}
	return "in month " + summary.BreakEvenLabel()
}
