package routes

import (
	"github.com/biblioteca/biblioteca-backend/src/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupHealthRoutes(router *gin.Engine, db *gorm.DB) {
	controller := controllers.NewHealthController(db)

	router.GET("/health", controller.Health)
}
