package controllers

import (
	"net/http"

	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// GetSummary handles GET requests for the reader and open loan counters
func (c *ReportController) GetSummary(ctx *gin.Context) {
	summary, err := c.service.Summary(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// ExportLoans handles GET requests for the printable loan report
func (c *ReportController) ExportLoans(ctx *gin.Context) {
	data, err := c.service.ExportLoanReport(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="emprestimos.xlsx"`)
	ctx.Data(http.StatusOK, xlsxContentType, data)
}
