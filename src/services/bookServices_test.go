package services_test

import (
	"bytes"
	"testing"

	"github.com/biblioteca/biblioteca-backend/src/dtos"
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func Test_BookService_CRUD(t *testing.T) {
	env := setupTestEnvironment(t)

	created, err := env.books.CreateBook(env.ctx, dtos.BookInput{Title: " 1984 ", Author: "George Orwell", Genre: "Distopia", Copies: 5})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "1984", created.Title)
	assert.Equal(t, models.BookActive, created.Status)

	updated, err := env.books.UpdateBook(env.ctx, created.ID, dtos.BookInput{Title: "1984", Author: "George Orwell", Genre: "Ficção", Copies: 2})
	require.NoError(t, err)
	assert.Equal(t, "Ficção", updated.Genre)
	assert.Equal(t, 2, env.copiesOf(t, created.ID))

	_, err = env.books.UpdateBook(env.ctx, uuid.New(), dtos.BookInput{Title: "x", Author: "y"})
	assert.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, env.books.RemoveBook(env.ctx, created.ID))
	assert.ErrorIs(t, env.books.RemoveBook(env.ctx, uuid.New()), services.ErrNotFound)

	stored, err := env.books.GetBook(env.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookRemoved, stored.Status)
}

func Test_BookService_Validation(t *testing.T) {
	env := setupTestEnvironment(t)

	for field, input := range map[string]dtos.BookInput{
		"title":  {Author: "Autor", Copies: 1},
		"author": {Title: "Livro", Copies: 1},
		"copies": {Title: "Livro", Author: "Autor", Copies: -1},
	} {
		_, err := env.books.CreateBook(env.ctx, input)
		var validationErr *services.ValidationError
		require.ErrorAs(t, err, &validationErr, field)
		assert.Equal(t, field, validationErr.Field)
	}

	book := env.createBook(t, "1984", 1)
	_, err := env.books.UpdateBook(env.ctx, book.ID, dtos.BookInput{Title: "1984", Author: "Orwell", Copies: -3})
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 1, env.copiesOf(t, book.ID))
}

func Test_BookService_ListBooks(t *testing.T) {
	env := setupTestEnvironment(t)
	env.createBook(t, "O Senhor dos Anéis", 3)
	removed := env.createBook(t, "Dom Casmurro", 0)
	env.createBook(t, "1984", 5)
	require.NoError(t, env.books.RemoveBook(env.ctx, removed.ID))

	all, err := env.books.ListBooks(env.ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "1984", all[0].Title)

	active, err := env.books.ListBooks(env.ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, b := range active {
		assert.Equal(t, models.BookActive, b.Status)
	}
}

func Test_BookService_ImportBooksFromExcel(t *testing.T) {
	// setup
	env := setupTestEnvironment(t)
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Título", "Autor", "Gênero", "Exemplares"},
		{"O Senhor dos Anéis", "J.R.R. Tolkien", "Fantasia", 3},
		{},
		{"1984", "George Orwell", "Distopia", "cinco"},
		{"", "Sem Título", "Romance", 1},
		{"Dom Casmurro", "Machado de Assis", "Romance"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	// act
	result, err := env.books.ImportBooksFromExcel(env.ctx, bytes.NewReader(buf.Bytes()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Len(t, result.Errors, 2)

	books, err := env.books.ListBooks(env.ctx, true)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Dom Casmurro", books[0].Title)
	assert.Equal(t, 0, books[0].CopiesAvailable)
	assert.Equal(t, 3, books[1].CopiesAvailable)
}

func Test_BookService_ImportBooksFromExcel_InvalidFile(t *testing.T) {
	env := setupTestEnvironment(t)

	_, err := env.books.ImportBooksFromExcel(env.ctx, bytes.NewReader([]byte("not a spreadsheet")))

	assert.Error(t, err)
}

func Test_BookService_ImportBooksFromExcel_HeaderWithoutCopies(t *testing.T) {
	// setup
	env := setupTestEnvironment(t)
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Título", "Autor", "Gênero"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"1984", "George Orwell", "Distopia", 5}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	// act
	result, err := env.books.ImportBooksFromExcel(env.ctx, bytes.NewReader(buf.Bytes()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Empty(t, result.Errors)

	books, err := env.books.ListBooks(env.ctx, false)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "1984", books[0].Title)
}
