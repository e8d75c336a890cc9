package api

import (
	"errors"
	"fmt"

	"profitcalc/internal/logger"
	"profitcalc/internal/service"

	"github.com/gin-gonic/gin"
)

type exportReportRequest struct {
	Format      string `json:"format" form:"format"`
	ExportToken string `json:"exportToken" form:"export_token"`
}

func (m ApiHandler) exportReport(c *gin.Context) {
	var requestBody exportReportRequest
	if err := c.ShouldBind(&requestBody); err != nil {
		returnErrorJsonCode(errors.New("invalid request body"), c, 400)
		return
	}

	format, err := service.ParseExportFormat(requestBody.Format)
	if err != nil {
		returnErrorJsonCode(errors.New("Unsupported export format. Choose pdf or csv."), c, 400)
		return
	}

	claims, ok := m.parseExportToken(c, requestBody.ExportToken)
	if !ok {
		return
	}

	report, err := m.ReportService.Render(format, &claims.Summary, claims.UserName)
	if errors.Is(err, service.ErrNoCalculationData) {
		returnErrorJsonCode(service.ErrNoCalculationData, c, 400)
		return
	} else if err != nil {
		returnErrorJson(err, c, internalErrorMessage)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename))
	c.Data(200, report.ContentType, report.Body)
}

// parseExportToken answers 400 with the matching user message when the
// token is missing, expired or tampered with
func (m ApiHandler) parseExportToken(c *gin.Context, token string) (*exportClaims, bool) {
	claims, err := m.ExportTokens.Parse(token)
	if err == nil {
		return claims, true
	}

	for _, known := range []error{service.ErrNoCalculationData, ErrExpiredCalculation, ErrInvalidCalculation} {
		if errors.Is(err, known) {
			logger.FromContext(c.Request.Context()).Infow("export token rejected", "error", err)
			returnErrorJsonCode(known, c, 400)
			return nil, false
		}
	}

	logger.FromContext(c.Request.Context()).Warnw("unexpected export token error", "error", err)
	returnErrorJsonCode(ErrInvalidCalculation, c, 400)
	return nil, false
}
