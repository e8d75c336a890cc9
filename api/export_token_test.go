package api

import (
	"testing"
	"time"

	"profitcalc/internal/calculator"
	"profitcalc/internal/domain"
	"profitcalc/internal/service"

	"github.com/golang-jwt/jwt"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type tokenFixture struct {
	id      uuid.UUID
	contact service.Contact
	summary domain.ProjectionSummary
}

func scenarioSummaryForTest() tokenFixture {
	return tokenFixture{
		id: uuid.New(),
		contact: service.Contact{
			UserName:  "Jane Doe",
			UserEmail: "jane@example.com",
		},
		summary: calculator.ComputeProjection(domain.FinancialInputs{
			InitialInvestment: decimal.NewFromInt(5000),
			MonthlyRevenue:    decimal.NewFromInt(4000),
			MonthlyCosts:      decimal.NewFromInt(1500),
			GrowthRatePercent: decimal.RequireFromString("2.5"),
		}),
	}
}

func TestExportTokenIssuer(t *testing.T) {
	issuer := NewExportTokenIssuer("secret", 30*time.Minute)

	t.Run("round trip", func(t *testing.T) {
		f := scenarioSummaryForTest()
		token, err := issuer.Issue(f.id, f.contact, f.summary)
		require.NoError(t, err)

		claims, err := issuer.Parse(token)
		require.NoError(t, err)
		require.Equal(t, f.id.String(), claims.Id)
		require.Equal(t, "Jane Doe", claims.UserName)
		require.Equal(t, "jane@example.com", claims.UserEmail)

		diff := cmp.Diff(f.summary, claims.Summary, cmp.Comparer(func(a, b decimal.Decimal) bool {
			return a.Equal(b)
		}))
		require.Empty(t, diff)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := issuer.Parse("  ")
		require.ErrorIs(t, err, service.ErrNoCalculationData)
	})

	t.Run("expired", func(t *testing.T) {
		old := issuer
		old.now = func() time.Time { return time.Now().Add(-31 * time.Minute) }

		f := scenarioSummaryForTest()
		token, err := old.Issue(f.id, f.contact, f.summary)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		require.ErrorIs(t, err, ErrExpiredCalculation)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewExportTokenIssuer("other", 30*time.Minute)
		f := scenarioSummaryForTest()
		token, err := other.Issue(f.id, f.contact, f.summary)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		require.ErrorIs(t, err, ErrInvalidCalculation)
	})

	t.Run("expired and forged is invalid", func(t *testing.T) {
		other := NewExportTokenIssuer("other", 30*time.Minute)
		other.now = func() time.Time { return time.Now().Add(-time.Hour) }
		f := scenarioSummaryForTest()
		token, err := other.Issue(f.id, f.contact, f.summary)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		require.ErrorIs(t, err, ErrInvalidCalculation)
	})

	t.Run("unsigned", func(t *testing.T) {
		f := scenarioSummaryForTest()
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, exportClaims{
			StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
			Summary:        f.summary,
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		require.ErrorIs(t, err, ErrInvalidCalculation)
	})

	t.Run("incomplete summary", func(t *testing.T) {
		f := scenarioSummaryForTest()
		f.summary.Projections = f.summary.Projections[:3]
		token, err := issuer.Issue(f.id, f.contact, f.summary)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		require.ErrorIs(t, err, service.ErrNoCalculationData)
	})
}
