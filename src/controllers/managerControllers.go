package controllers

import (
	"log"
	"net/http"

	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

type ManagerController struct {
	service *services.ManagerService
}

func NewManagerController(service *services.ManagerService) *ManagerController {
	return &ManagerController{service: service}
}

// Login handles POST requests to authenticate the manager and returns a session token
func (c *ManagerController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	token, err := c.service.Authenticate(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("[WARN] failed login for %q from %s", req.Email, ctx.ClientIP())
		respondError(ctx, err, nil)
		return
	}

	ctx.JSON(http.StatusOK, models.LoginResponse{Token: token})
}
