package controllers

import (
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const tryAgainMessage = "Something went wrong, please try again"

func init() {
	// Binding errors report the json name of the field, as the client sent it.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondError maps a service error to its status code. Values are echoed back on
// validation failures so the form can be shown again.
func respondError(ctx *gin.Context, err error, values interface{}) {
	var validationErr *services.ValidationError
	var duplicateErr *services.DuplicateKeyError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field, "values": values})
	case errors.As(err, &duplicateErr):
		ctx.JSON(http.StatusConflict, gin.H{"error": duplicateErr.Error(), "field": duplicateErr.Field})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrOutOfStock), errors.Is(err, services.ErrInvalidReversal):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidDate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "values": values})
	case errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("[ERROR] %s %s: %v", ctx.Request.Method, ctx.FullPath(), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": tryAgainMessage})
	}
}

// respondBindError answers a body that could not be bound to the request type.
func respondBindError(ctx *gin.Context, err error, values interface{}) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  fe.Field() + " failed on " + fe.Tag(),
			"field":  fe.Field(),
			"values": values,
		})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return uuid.Nil, false
	}
	return id, true
}
