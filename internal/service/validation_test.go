package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateSubmission(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		out, err := ValidateSubmission(validSubmission())
		require.NoError(t, err)

		require.Equal(t, Contact{
			UserName:    "Jane Doe",
			UserEmail:   "jane@example.com",
			CompanyName: "Acme",
		}, out.Contact)
		require.Equal(t, "10000", out.Inputs.InitialInvestment.String())
		require.Equal(t, "3000", out.Inputs.MonthlyRevenue.String())
		require.Equal(t, "2000", out.Inputs.MonthlyCosts.String())
		require.Equal(t, "5", out.Inputs.GrowthRatePercent.String())
	})

	t.Run("company is optional", func(t *testing.T) {
		in := validSubmission()
		in.CompanyName = ""
		_, err := ValidateSubmission(in)
		require.NoError(t, err)
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		in := validSubmission()
		in.GrowthRate = "-100"
		in.InitialInvestment = "0"
		_, err := ValidateSubmission(in)
		require.NoError(t, err)

		in.GrowthRate = "1000"
		_, err = ValidateSubmission(in)
		require.NoError(t, err)
	})

	t.Run("collects every field error", func(t *testing.T) {
		in := CalculationSubmission{
			UserName:          "",
			UserEmail:         "not an email",
			CompanyName:       strings.Repeat("x", 101),
			InitialInvestment: "-1",
			MonthlyRevenue:    "abc",
			MonthlyCosts:      "",
			GrowthRate:        "-100.5",
		}

		_, err := ValidateSubmission(in)
		verr := &ValidationError{}
		require.ErrorAs(t, err, &verr)
		require.Equal(t, map[string]string{
			"userName":          "name is required",
			"userEmail":         "please enter a valid email address",
			"companyName":       "company name must be at most 100 characters",
			"initialInvestment": "value cannot be negative",
			"monthlyRevenue":    "value must be a number",
			"monthlyCosts":      "value is required",
			"growthRate":        "growth rate must be at least -100%",
		}, verr.Fields)
		require.True(t, strings.HasPrefix(err.Error(), "invalid submission - companyName: "))
	})

	t.Run("rejects huge amounts and growth", func(t *testing.T) {
		in := validSubmission()
		in.MonthlyRevenue = "10000000000000"
		in.GrowthRate = "1000.01"

		_, err := ValidateSubmission(in)
		verr := &ValidationError{}
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "value is too large", verr.Fields["monthlyRevenue"])
		require.Equal(t, "growth rate must be at most 1000%", verr.Fields["growthRate"])
	})

	t.Run("rejects exponent form outside the input range", func(t *testing.T) {
		in := validSubmission()
		in.InitialInvestment = "1e-1000000"
		in.MonthlyRevenue = "1e20"
		in.MonthlyCosts = "1E-2000000000"
		in.GrowthRate = "1e-2000000"

		start := time.Now()
		_, err := ValidateSubmission(in)
		require.Less(t, time.Since(start), time.Second)

		verr := &ValidationError{}
		require.ErrorAs(t, err, &verr)
		require.Equal(t, map[string]string{
			"initialInvestment": "value has too many decimal places",
			"monthlyRevenue":    "value is too large",
			"monthlyCosts":      "value has too many decimal places",
			"growthRate":        "value has too many decimal places",
		}, verr.Fields)
	})

	t.Run("rejects overlong numbers", func(t *testing.T) {
		in := validSubmission()
		in.MonthlyRevenue = FormValue("1" + strings.Repeat("0", 40))

		_, err := ValidateSubmission(in)
		verr := &ValidationError{}
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "value is too long", verr.Fields["monthlyRevenue"])
	})

	t.Run("small exponents are rounded to cents", func(t *testing.T) {
		in := validSubmission()
		in.GrowthRate = "1E-5"
		in.MonthlyRevenue = "3e3"
		in.MonthlyCosts = "1999.995"

		out, err := ValidateSubmission(in)
		require.NoError(t, err)
		require.True(t, out.Inputs.GrowthRatePercent.IsZero())
		require.Equal(t, "3000", out.Inputs.MonthlyRevenue.String())
		require.Equal(t, "2000", out.Inputs.MonthlyCosts.String())
		require.GreaterOrEqual(t, out.Inputs.MonthlyCosts.Exponent(), int32(-inputScale))
	})

	t.Run("email checks", func(t *testing.T) {
		for _, email := range []string{"a@b", "a b@c.d", "@c.d", "a@@c.d"} {
			in := validSubmission()
			in.UserEmail = email
			_, err := ValidateSubmission(in)
			require.Error(t, err, email)
		}
	})
}

func TestValidateInputs(t *testing.T) {
	out, err := ValidateInputs(CalculationSubmission{
		InitialInvestment: "1000",
		MonthlyRevenue:    "500.25",
		MonthlyCosts:      "0",
		GrowthRate:        "-3",
	})
	require.NoError(t, err)
	require.Equal(t, "500.25", out.MonthlyRevenue.String())
	require.Equal(t, "-3", out.GrowthRatePercent.String())

	_, err = ValidateInputs(CalculationSubmission{GrowthRate: "x"})
	verr := &ValidationError{}
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 4)
	require.Equal(t, "value must be a number", verr.Fields["growthRate"])
}

func TestFormValue_UnmarshalJSON(t *testing.T) {
	body := `{"initialInvestment": 10000.5, "monthlyRevenue": "3000", "monthlyCosts": null, "growthRate": -2}`

	in := CalculationSubmission{}
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	require.Equal(t, FormValue("10000.5"), in.InitialInvestment)
	require.Equal(t, FormValue("3000"), in.MonthlyRevenue)
	require.Equal(t, FormValue(""), in.MonthlyCosts)
	require.Equal(t, FormValue("-2"), in.GrowthRate)
}
