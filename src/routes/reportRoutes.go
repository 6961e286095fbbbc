package routes

import (
	"github.com/biblioteca/biblioteca-backend/src/controllers"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(router *gin.Engine, service *services.ReportService, auth gin.HandlerFunc) {
	controller := controllers.NewReportController(service)

	reportGroup := router.Group("/reports")
	reportGroup.Use(auth)
	{
		reportGroup.GET("/summary", controller.GetSummary)
		reportGroup.GET("/loans.xlsx", controller.ExportLoans)
	}
}
