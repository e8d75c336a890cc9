package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"profitcalc/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength   = 100
	maxEmailLength  = 100
	minGrowthRate   = -100
	maxGrowthRate   = 1000
	maxAmountDigits = 13

	// bounds on the raw text, checked before any decimal arithmetic
	maxNumberLength = 32
	minExponent     = -10
	maxExponent     = maxAmountDigits

	// inputs are kept to cents, the precision they are archived with
	inputScale = 2
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormValue is a numeric form field as typed by the user. It accepts a
// JSON number, a JSON string or null, and keeps the raw text.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(b)
	return nil
}

// CalculationSubmission is the raw calculator form, bound from either a
// JSON body or a urlencoded form post.
type CalculationSubmission struct {
	UserName          string    `json:"userName" form:"user_name"`
	UserEmail         string    `json:"userEmail" form:"user_email"`
	CompanyName       string    `json:"companyName" form:"company_name"`
	InitialInvestment FormValue `json:"initialInvestment" form:"initial_investment"`
	MonthlyRevenue    FormValue `json:"monthlyRevenue" form:"monthly_revenue"`
	MonthlyCosts      FormValue `json:"monthlyCosts" form:"monthly_costs"`
	GrowthRate        FormValue `json:"growthRate" form:"growth_rate"`
}

type Contact struct {
	UserName    string
	UserEmail   string
	CompanyName string
}

type ValidatedSubmission struct {
	Contact Contact
	Inputs  domain.FinancialInputs
}

// ValidationError collects every invalid field of a submission
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid submission - " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// ValidateSubmission sanitizes the form and converts it into engine inputs.
// It never stops at the first problem; all field errors come back together.
func ValidateSubmission(in CalculationSubmission) (*ValidatedSubmission, error) {
	verr := &ValidationError{}

	contact := Contact{
		UserName:    strings.TrimSpace(in.UserName),
		UserEmail:   strings.ToLower(strings.TrimSpace(in.UserEmail)),
		CompanyName: strings.TrimSpace(in.CompanyName),
	}

	if contact.UserName == "" {
		verr.add("userName", "name is required")
	} else if len(contact.UserName) > maxNameLength {
		verr.add("userName", fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}

	if contact.UserEmail == "" {
		verr.add("userEmail", "email is required")
	} else if len(contact.UserEmail) > maxEmailLength {
		verr.add("userEmail", fmt.Sprintf("email must be at most %d characters", maxEmailLength))
	} else if !emailRegex.MatchString(contact.UserEmail) {
		verr.add("userEmail", "please enter a valid email address")
	}

	if len(contact.CompanyName) > maxNameLength {
		verr.add("companyName", fmt.Sprintf("company name must be at most %d characters", maxNameLength))
	}

	inputs := parseInputs(verr, in)

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	return &ValidatedSubmission{
		Contact: contact,
		Inputs:  inputs,
	}, nil
}

// ValidateInputs checks only the numeric fields of a submission, for
// callers that have no contact details
func ValidateInputs(in CalculationSubmission) (*domain.FinancialInputs, error) {
	verr := &ValidationError{}
	inputs := parseInputs(verr, in)
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return &inputs, nil
}

func parseInputs(verr *ValidationError, in CalculationSubmission) domain.FinancialInputs {
	investment := parseAmount(verr, "initialInvestment", in.InitialInvestment)
	revenue := parseAmount(verr, "monthlyRevenue", in.MonthlyRevenue)
	costs := parseAmount(verr, "monthlyCosts", in.MonthlyCosts)

	growth, ok := parseNumber(verr, "growthRate", in.GrowthRate)
	if ok {
		if growth.LessThan(decimal.NewFromInt(minGrowthRate)) {
			verr.add("growthRate", fmt.Sprintf("growth rate must be at least %d%%", minGrowthRate))
		} else if growth.GreaterThan(decimal.NewFromInt(maxGrowthRate)) {
			verr.add("growthRate", fmt.Sprintf("growth rate must be at most %d%%", maxGrowthRate))
		}
	}

	return domain.FinancialInputs{
		InitialInvestment: investment,
		MonthlyRevenue:    revenue,
		MonthlyCosts:      costs,
		GrowthRatePercent: growth,
	}
}

func parseNumber(verr *ValidationError, field string, raw FormValue) (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		verr.add(field, "value is required")
		return decimal.Zero, false
	}
	if len(s) > maxNumberLength {
		verr.add(field, "value is too long")
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		verr.add(field, "value must be a number")
		return decimal.Zero, false
	}
	// exponent form such as 1e-2000000 would make every later operation
	// rescale to millions of digits
	if d.Exponent() < minExponent {
		verr.add(field, "value has too many decimal places")
		return decimal.Zero, false
	}
	if d.Exponent() > maxExponent {
		verr.add(field, "value is too large")
		return decimal.Zero, false
	}
	return d.Round(inputScale), true
}

func parseAmount(verr *ValidationError, field string, raw FormValue) decimal.Decimal {
	d, ok := parseNumber(verr, field, raw)
	if !ok {
		return decimal.Zero
	}
	if d.IsNegative() {
		verr.add(field, "value cannot be negative")
		return decimal.Zero
	}
	// inputs are stored as numeric(15,2)
	if d.GreaterThanOrEqual(decimal.New(1, maxAmountDigits)) {
		verr.add(field, "value is too large")
		return decimal.Zero
	}
	return d
}
