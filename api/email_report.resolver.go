package api

import (
	"errors"
	"fmt"

	"profitcalc/internal/service"

	"github.com/gin-gonic/gin"
)

type exportTokenRequest struct {
	ExportToken string `json:"exportToken" form:"export_token"`
}

func (m ApiHandler) emailReport(c *gin.Context) {
	if m.EmailService == nil {
		returnErrorJsonCode(errors.New("Email delivery is not available right now."), c, 503)
		return
	}

	var requestBody exportTokenRequest
	if err := c.ShouldBind(&requestBody); err != nil {
		returnErrorJsonCode(errors.New("invalid request body"), c, 400)
		return
	}

	claims, ok := m.parseExportToken(c, requestBody.ExportToken)
	if !ok {
		return
	}

	err := m.EmailService.SendReport(c.Request.Context(), claims.UserEmail, claims.UserName, &claims.Summary)
	if errors.Is(err, service.ErrNoCalculationData) {
		returnErrorJsonCode(service.ErrNoCalculationData, c, 400)
		return
	} else if err != nil {
		returnErrorJson(err, c, "We could not send your report. Please try again.")
		return
	}

	c.JSON(200, gin.H{
		"message": fmt.Sprintf("Report sent to %s", claims.UserEmail),
	})
}
