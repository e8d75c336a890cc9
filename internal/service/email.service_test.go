package service

import (
	"context"
	"errors"
	"testing"

	"profitcalc/internal/calculator"
	"profitcalc/internal/domain"
	mock_repository "profitcalc/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_emailServiceHandler_SendReport(t *testing.T) {
	t.Run("sends rendered report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		handler := NewEmailService(emailRepository, NewReportService())

		summary := scenarioSummary()
		emailRepository.EXPECT().
			SendEmail(
				gomock.Any(),
				"jane@example.com",
				"Your Profit Prediction: -15.94% ROI, break-even not within 6 months",
				gomock.Any(),
			).
			DoAndReturn(func(_ context.Context, _, _ string, body string) error {
				require.Contains(t, body, "Prepared for Jane")
				require.Contains(t, body, "-$1,594.26")
				return nil
			})

		err := handler.SendReport(context.Background(), "jane@example.com", "Jane", &summary)
		require.NoError(t, err)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		handler := NewEmailService(emailRepository, NewReportService())

		sendErr := errors.New("throttled")
		emailRepository.EXPECT().
			SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(sendErr)

		summary := scenarioSummary()
		err := handler.SendReport(context.Background(), "jane@example.com", "Jane", &summary)
		require.ErrorIs(t, err, sendErr)
	})

	t.Run("nothing to send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		handler := NewEmailService(emailRepository, NewReportService())

		err := handler.SendReport(context.Background(), "jane@example.com", "Jane", nil)
		require.ErrorIs(t, err, ErrNoCalculationData)

		summary := scenarioSummary()
		err = handler.SendReport(context.Background(), " ", "Jane", &summary)
		require.Error(t, err)
	})
}

func Test_emailServiceHandler_GenerateReportEmail(t *testing.T) {
	handler := NewEmailService(nil, NewReportService())

	summary := calculator.ComputeProjection(domain.FinancialInputs{
		InitialInvestment: decimal.NewFromInt(5000),
		MonthlyRevenue:    decimal.NewFromInt(4000),
		MonthlyCosts:      decimal.NewFromInt(1500),
		GrowthRatePercent: decimal.Zero,
	})

	subject, body, err := handler.GenerateReportEmail("", &summary)
	require.NoError(t, err)
	require.Equal(t, "Your Profit Prediction: 200.00% ROI, break-even in month 3", subject)
	require.Contains(t, body, "Profit Prediction Report")
}
