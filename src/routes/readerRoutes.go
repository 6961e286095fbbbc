package routes

import (
	"github.com/biblioteca/biblioteca-backend/src/controllers"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReaderRoutes(router *gin.Engine, service *services.ReaderService, auth gin.HandlerFunc) {
	controller := controllers.NewReaderController(service)

	readerGroup := router.Group("/readers")
	readerGroup.Use(auth)
	{
		readerGroup.GET("", controller.GetAllReaders)
		readerGroup.GET("/:id", controller.GetReaderByID)
		readerGroup.POST("", controller.CreateReader)
		readerGroup.PUT("/:id", controller.UpdateReader)
		readerGroup.DELETE("/:id", controller.DeleteReader)
	}
}
