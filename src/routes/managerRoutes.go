package routes

import (
	"github.com/biblioteca/biblioteca-backend/src/controllers"
	"github.com/biblioteca/biblioteca-backend/src/middleware"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupManagerRoutes(router *gin.Engine, service *services.ManagerService, limiter *middleware.IPRateLimiter) {
	controller := controllers.NewManagerController(service)

	// Public routes
	router.POST("/login", middleware.RateLimitMiddleware(limiter), controller.Login)
}
