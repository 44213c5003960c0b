package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"vendor-desk.backend/internal/domain/entities"
	"vendor-desk.backend/internal/domain/repositories"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memStore is an in-memory VendorStore for handler tests.
type memStore struct {
	vendors []entities.Vendor
	saveErr error
}

func (s *memStore) Load(context.Context) ([]entities.Vendor, repositories.LoadResult) {
	if len(s.vendors) == 0 {
		return nil, repositories.LoadResultEmpty
	}
	out := make([]entities.Vendor, len(s.vendors))
	copy(out, s.vendors)
	return out, repositories.LoadResultOK
}

func (s *memStore) Save(_ context.Context, vendors []entities.Vendor) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.vendors = make([]entities.Vendor, len(vendors))
	copy(s.vendors, vendors)
	return nil
}

func perform(t *testing.T, r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
