package controllers

import (
	"net/http"
	"strconv"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	service *services.BookService
}

func NewBookController(service *services.BookService) *BookController {
	return &BookController{service: service}
}

// GetAllBooks handles GET requests to list the catalog; ?active=true hides removed books
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	activeOnly := false
	if raw := ctx.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active parameter"})
			return
		}
		activeOnly = parsed
	}

	books, err := c.service.ListBooks(ctx.Request.Context(), activeOnly)
	if err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.JSON(http.StatusOK, books)
}

// GetBookByID handles GET requests to retrieve a book by its ID
func (c *BookController) GetBookByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	book, err := c.service.GetBook(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// CreateBook handles POST requests to add a book to the catalog
func (c *BookController) CreateBook(ctx *gin.Context) {
	var input dtos.BookInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err, input)
		return
	}

	book, err := c.service.CreateBook(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, input)
		return
	}
	ctx.JSON(http.StatusCreated, book)
}

// UpdateBook handles PUT requests to edit a book
func (c *BookController) UpdateBook(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var input dtos.BookInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBindError(ctx, err, input)
		return
	}

	book, err := c.service.UpdateBook(ctx.Request.Context(), id, input)
	if err != nil {
		respondError(ctx, err, input)
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE requests; the book is removed from the catalog but
// its loans keep pointing at it
func (c *BookController) DeleteBook(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.RemoveBook(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, nil)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Book removed successfully"})
}

// ImportBooks handles multipart uploads of an XLSX catalog in the "file" field
func (c *BookController) ImportBooks(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing 'file' upload"})
		return
	}
	src, err := fh.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to open 'file' upload"})
		return
	}
	defer src.Close()

	result, err := c.service.ImportBooksFromExcel(ctx.Request.Context(), src)
	if err != nil {
		body := gin.H{"error": err.Error()}
		if result != nil {
			body["imported"] = result.Imported
			body["errors"] = result.Errors
		}
		ctx.JSON(http.StatusBadRequest, body)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
