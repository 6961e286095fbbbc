package controllers

import (
	"net/http"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

type ReaderController struct {
	service *services.ReaderService
}

func NewReaderController(service *services.ReaderService) *ReaderController {
	return &ReaderController{service: service}
}

// GetAllReaders handles GET requests to list the registered readers
func (c *ReaderController) GetAllReaders(ctx *gin.Context) {
	readers, err := c.service.ListReaders(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.JSON(http.StatusOK, readers)
}

// GetReaderByID handles GET requests to retrieve a reader by its ID
func (c *ReaderController) GetReaderByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	reader, err := c.service.GetReader(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.JSON(http.StatusOK, reader)
}

// CreateReader handles POST requests to register a reader
func (c *ReaderController) CreateReader(ctx *gin.Context) {
	var input dtos.ReaderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err, input)
		return
	}

	reader, err := c.service.CreateReader(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, input)
		return
	}
	ctx.JSON(http.StatusCreated, reader)
}

// UpdateReader handles PUT requests to edit a reader
func (c *ReaderController) UpdateReader(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var input dtos.ReaderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err, input)
		return
	}

	reader, err := c.service.UpdateReader(ctx.Request.Context(), id, input)
	if err != nil {
		respondError(ctx, err, input)
		return
	}
	ctx.JSON(http.StatusOK, reader)
}

// DeleteReader handles DELETE requests to remove a reader from the registry
func (c *ReaderController) DeleteReader(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.RemoveReader(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Reader removed successfully"})
}
