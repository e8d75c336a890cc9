package service

import (
	"context"
	"errors"
	"testing"

	mock_repository "profitcalc/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_explanationServiceHandler_Explain(t *testing.T) {
	expectedFallback := "Revenue grows 5% each month, bringing in $20,405.74 over six months against $12,000.00 of costs. " +
		"After the $10,000.00 initial investment the projected net position is -$1,594.26, an ROI of -15.94%. " +
		"The initial investment is not recovered within 6 months."

	t.Run("without gpt", func(t *testing.T) {
		handler := NewExplanationService(nil)
		summary := scenarioSummary()

		out, err := handler.Explain(context.Background(), &summary)
		require.NoError(t, err)
		require.Equal(t, expectedFallback, out)
	})

	t.Run("uses gpt answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		handler := NewExplanationService(gptRepository)
		summary := scenarioSummary()

		gptRepository.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string) (string, error) {
				require.Contains(t, prompt, "Break-even month: Not within 6 months")
				require.Contains(t, prompt, "month 6: revenue $3,828.84, net -$1,594.26")
				return "You will not break even.", nil
			})

		out, err := handler.Explain(context.Background(), &summary)
		require.NoError(t, err)
		require.Equal(t, "You will not break even.", out)
	})

	t.Run("falls back on gpt failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		handler := NewExplanationService(gptRepository)
		summary := scenarioSummary()

		gptRepository.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("", errors.New("rate limited"))

		out, err := handler.Explain(context.Background(), &summary)
		require.NoError(t, err)
		require.Equal(t, expectedFallback, out)
	})

	t.Run("nothing to explain", func(t *testing.T) {
		_, err := NewExplanationService(nil).Explain(context.Background(), nil)
		require.ErrorIs(t, err, ErrNoCalculationData)
	})
}
