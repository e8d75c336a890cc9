package api

import (
	"errors"

	"profitcalc/internal/service"

	"github.com/gin-gonic/gin"
)

type explainResponse struct {
	Explanation string `json:"explanation"`
}

func (m ApiHandler) explain(c *gin.Context) {
	var requestBody exportTokenRequest
	if err := c.ShouldBind(&requestBody); err != nil {
		returnErrorJsonCode(errors.New("invalid request body"), c, 400)
		return
	}

	claims, ok := m.parseExportToken(c, requestBody.ExportToken)
	if !ok {
		return
	}

	explanation, err := m.ExplanationService.Explain(c.Request.Context(), &claims.Summary)
	if errors.Is(err, service.ErrNoCalculationData) {
		returnErrorJsonCode(service.ErrNoCalculationData, c, 400)
		return
	} else if err != nil {
		returnErrorJson(err, c, internalErrorMessage)
		return
	}

	c.JSON(200, explainResponse{
		Explanation: explanation,
	})
}
