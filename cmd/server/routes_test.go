package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vendor-desk.backend/internal/domain/entities"
	"vendor-desk.backend/internal/domain/repositories"
	"vendor-desk.backend/internal/interfaces/http/handlers"
	"vendor-desk.backend/internal/usecases"
)

type nullStore struct{}

func (nullStore) Load(context.Context) ([]entities.Vendor, repositories.LoadResult) {
	return nil, repositories.LoadResultEmpty
}

func (nullStore) Save(context.Context, []entities.Vendor) error { return nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := nullStore{}

	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		vendorHandler:   handlers.NewVendorHandler(usecases.NewVendorUsecase(store)),
		transferHandler: handlers.NewTransferHandler(usecases.NewTransferUsecase(store)),
		reportHandler:   handlers.NewReportHandler(usecases.NewReportUsecase(store)),
	})
	return r
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisteredRoutes(t *testing.T) {
	r := newTestRouter()

	expected := map[string]string{
		"GET /api/v1/vendors":                "list",
		"POST /api/v1/vendors":               "add",
		"DELETE /api/v1/vendors":             "clear",
		"POST /api/v1/vendors/bulk-delete":   "bulk delete",
		"POST /api/v1/vendors/import":        "import",
		"GET /api/v1/vendors/export":         "export csv",
		"GET /api/v1/vendors/export/xlsx":    "export xlsx",
		"GET /api/v1/vendors/:id":            "get",
		"PUT /api/v1/vendors/:id":            "update",
		"DELETE /api/v1/vendors/:id":         "delete",
		"GET /api/v1/vendors/:id/contract":   "contract",
		"GET /api/v1/reports/vendors":        "report",
		"GET /api/v1/reports/vendors/export": "report csv",
	}

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for key := range expected {
		assert.True(t, registered[key], "missing route %s", key)
	}
}

func TestListVendorsThroughRouter(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/vendors", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}
