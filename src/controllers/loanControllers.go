package controllers

import (
	"net/http"
	"time"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

type LoanController struct {
	service *services.LoanService
}

func NewLoanController(service *services.LoanService) *LoanController {
	return &LoanController{service: service}
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(dtos.DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, &services.ValidationError{Field: "expectedReturnDate", Reason: "date must use YYYY-MM-DD"}
	}
	return t, nil
}

// GetAllLoans handles GET requests to retrieve all loan records
func (c *LoanController) GetAllLoans(ctx *gin.Context) {
	loans, err := c.service.ListLoans(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.JSON(http.StatusOK, loans)
}

// GetLoanByID handles GET requests to retrieve a loan by its ID
func (c *LoanController) GetLoanByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	loan, err := c.service.GetLoan(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.JSON(http.StatusOK, loan)
}

// CreateLoan handles POST requests to lend a book to a reader
func (c *LoanController) CreateLoan(ctx *gin.Context) {
	var req dtos.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err, req)
		return
	}

	expectedReturn, err := parseDate(req.ExpectedReturnDate)
	if err != nil {
		respondError(ctx, err, req)
		return
	}

	loan, err := c.service.CreateLoan(ctx.Request.Context(), req.BookID, req.ReaderID, expectedReturn)
	if err != nil {
		respondError(ctx, err, req)
		return
	}
	ctx.JSON(http.StatusCreated, loan)
}

// UpdateLoan handles PUT requests to change the expected return date or status of a loan
func (c *LoanController) UpdateLoan(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dtos.UpdateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err, req)
		return
	}

	expectedReturn, err := parseDate(req.ExpectedReturnDate)
	if err != nil {
		respondError(ctx, err, req)
		return
	}

	loan, err := c.service.UpdateLoan(ctx.Request.Context(), id, expectedReturn, req.Status)
	if err != nil {
		respondError(ctx, err, req)
		return
	}
	ctx.JSON(http.StatusOK, loan)
}
