package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/biblioteca/biblioteca-backend/src/db"
	"github.com/biblioteca/biblioteca-backend/src/middleware"
	"github.com/biblioteca/biblioteca-backend/src/models"
	"github.com/biblioteca/biblioteca-backend/src/reports"
	"github.com/biblioteca/biblioteca-backend/src/routes"
	"github.com/biblioteca/biblioteca-backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	managerEmail    = "gestor@biblioteca.com"
	managerPassword = "admin123"
)

var secret = []byte("controller-test-secret")

type apiEnv struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func setupAPI(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(gdb))

	clock := services.NewClock(time.UTC)
	ledger := services.NewInventoryLedger()
	reportService := services.NewReportService(gdb, reports.NewXLSXExporter(40))
	managers := services.NewManagerService(gdb, secret, time.Hour)
	_, err = managers.EnsureManager(context.Background(), managerEmail, managerPassword)
	require.NoError(t, err)

	router := gin.New()
	auth := middleware.AuthMiddleware(secret)
	routes.SetupHealthRoutes(router, gdb)
	routes.SetupManagerRoutes(router, managers, middleware.NewIPRateLimiter(rate.Inf, 1))
	routes.SetupBookRoutes(router, services.NewBookService(gdb), auth)
	routes.SetupReaderRoutes(router, services.NewReaderService(gdb, clock, false), auth)
	routes.SetupLoanRoutes(router, services.NewLoanService(gdb, ledger, reportService, clock), auth)
	routes.SetupReportRoutes(router, reportService, auth)

	env := &apiEnv{t: t, router: router}
	w := env.request(http.MethodPost, "/login", gin.H{"email": managerEmail, "password": managerPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login models.LoginResponse
	env.decode(w, &login)
	env.token = login.Token
	return env
}

func (e *apiEnv) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	return e.serve(req)
}

func (e *apiEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *apiEnv) decode(w *httptest.ResponseRecorder, v interface{}) {
	e.t.Helper()
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (e *apiEnv) createBook(title string, copies int) models.BookModel {
	e.t.Helper()
	w := e.request(http.MethodPost, "/books", gin.H{"title": title, "author": "Autor", "genre": "Romance", "copies": copies})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	var book models.BookModel
	e.decode(w, &book)
	return book
}

func (e *apiEnv) createReader(name, nationalID, email string) models.ReaderModel {
	e.t.Helper()
	w := e.request(http.MethodPost, "/readers", readerBody(name, nationalID, email))
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	var reader models.ReaderModel
	e.decode(w, &reader)
	return reader
}

func readerBody(name, nationalID, email string) gin.H {
	return gin.H{
		"name":       name,
		"nationalId": nationalID,
		"birthDate":  "1990-01-01",
		"phone":      "(11) 91234-5678",
		"email":      email,
		"postalCode": "12345-678",
		"address":    "Rua das Flores, 123",
	}
}

func daysFromToday(n int) string {
	return time.Now().UTC().AddDate(0, 0, n).Format("2006-01-02")
}
