package routes

import (
	"github.com/biblioteca/biblioteca-backend/src/controllers"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBookRoutes(router *gin.Engine, service *services.BookService, auth gin.HandlerFunc) {
	controller := controllers.NewBookController(service)

	// Protected routes
	bookGroup := router.Group("/books")
	bookGroup.Use(auth)
	{
		// CRUD
		bookGroup.GET("", controller.GetAllBooks)
		bookGroup.GET("/:id", controller.GetBookByID)
		bookGroup.POST("", controller.CreateBook)
		bookGroup.PUT("/:id", controller.UpdateBook)
		bookGroup.DELETE("/:id", controller.DeleteBook)

		// Upload
		bookGroup.POST("/import", controller.ImportBooks)
	}
}
