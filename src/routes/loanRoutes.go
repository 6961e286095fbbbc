package routes

import (
	"github.com/biblioteca/biblioteca-backend/src/controllers"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupLoanRoutes(router *gin.Engine, service *services.LoanService, auth gin.HandlerFunc) {
	controller := controllers.NewLoanController(service)

	loanGroup := router.Group("/loans")
	loanGroup.Use(auth)
	{
		loanGroup.GET("", controller.GetAllLoans)
		loanGroup.GET("/:id", controller.GetLoanByID)
		loanGroup.POST("", controller.CreateLoan)
		loanGroup.PUT("/:id", controller.UpdateLoan)
	}
}
