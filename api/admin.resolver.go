package api

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"time"

	"profitcalc/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	adminKeyHeader   = "X-Admin-Key"
	maxAdminPageSize = 500
)

func (m ApiHandler) adminAuthMiddleware(c *gin.Context) {
	key := c.GetHeader(adminKeyHeader)
	if m.AdminApiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.AdminApiKey)) != 1 {
		returnErrorJsonCode(errors.New("unauthorized"), c, 401)
		return
	}
}

type adminCalculation struct {
	CalculationID     uuid.UUID `json:"calculationID"`
	UserName          string    `json:"userName"`
	UserEmail         string    `json:"userEmail"`
	CompanyName       string    `json:"companyName"`
	InitialInvestment string    `json:"initialInvestment"`
	MonthlyRevenue    string    `json:"monthlyRevenue"`
	MonthlyCosts      string    `json:"monthlyCosts"`
	GrowthRate        string    `json:"growthRate"`
	CalculatedRoi     string    `json:"calculatedRoi"`
	ProjectedProfit   string    `json:"projectedProfit"`
	// 0 when the projection never broke even
	BreakEvenMonth  int32     `json:"breakEvenMonth"`
	CalculationDate time.Time `json:"calculationDate"`
	UserIP          string    `json:"userIP"`
}

type listCalculationsResponse struct {
	Calculations []adminCalculation `json:"calculations"`
	Limit        int                `json:"limit"`
	Offset       int                `json:"offset"`
}

func parseListFilter(c *gin.Context) (*repository.CalculationListFilter, error) {
	filter := repository.CalculationListFilter{
		Limit: 50,
	}

	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 || limit > maxAdminPageSize {
			return nil, fmt.Errorf("limit must be between 1 and %d", maxAdminPageSize)
		}
		filter.Limit = limit
	}
	if s := c.Query("offset"); s != "" {
		offset, err := strconv.Atoi(s)
		if err != nil || offset < 0 {
			return nil, errors.New("offset must be a non-negative integer")
		}
		filter.Offset = offset
	}
	if s := c.Query("since"); s != "" {
		since, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, errors.New("since must be an RFC3339 timestamp")
		}
		filter.Since = &since
	}

	return &filter, nil
}

func (m ApiHandler) listCalculations(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	records, err := m.CalculationService.ListCalculations(c.Request.Context(), *filter)
	if err != nil {
		returnErrorJson(err, c, internalErrorMessage)
		return
	}

	out := listCalculationsResponse{
		Calculations: make([]adminCalculation, 0, len(records)),
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	}
	for _, r := range records {
		out.Calculations = append(out.Calculations, adminCalculation{
			CalculationID:     r.CalculationID,
			UserName:          r.UserName,
			UserEmail:         r.UserEmail,
			CompanyName:       r.CompanyName,
			InitialInvestment: r.InitialInvestment.StringFixed(2),
			MonthlyRevenue:    r.MonthlyRevenue.StringFixed(2),
			MonthlyCosts:      r.MonthlyCosts.StringFixed(2),
			GrowthRate:        r.GrowthRate.StringFixed(2),
			CalculatedRoi:     r.CalculatedRoi.StringFixed(2),
			ProjectedProfit:   r.ProjectedProfit.StringFixed(2),
			BreakEvenMonth:    r.BreakEvenMonth,
			CalculationDate:   r.CalculationDate.UTC(),
			UserIP:            r.UserIP,
		})
	}

	c.JSON(200, out)
}

func (m ApiHandler) analytics(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.CalculationService.Analytics(c.Request.Context(), filter.Since)
	if err != nil {
		returnErrorJson(err, c, internalErrorMessage)
		return
	}

	c.JSON(200, out)
}
