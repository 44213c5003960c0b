package usecases_test

import (
	"context"

	"vendor-desk.backend/internal/domain/entities"
	"vendor-desk.backend/internal/domain/repositories"
)

// fakeStore is an in-memory VendorStore. It records save calls so tests
// can assert the single-save-per-import contract, and can be primed to
// fail writes or report a corrupt payload.
type fakeStore struct {
	vendors []entities.Vendor
	result  repositories.LoadResult
	saveErr error
	saves   int
}

func newFakeStore(vendors ...entities.Vendor) *fakeStore {
	result := repositories.LoadResultOK
	if len(vendors) == 0 {
		result = repositories.LoadResultEmpty
	}
	return &fakeStore{vendors: vendors, result: result}
}

func (s *fakeStore) Load(_ context.Context) ([]entities.Vendor, repositories.LoadResult) {
	out := make([]entities.Vendor, len(s.vendors))
	copy(out, s.vendors)
	return out, s.result
}

func (s *fakeStore) Save(_ context.Context, vendors []entities.Vendor) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.vendors = make([]entities.Vendor, len(vendors))
	copy(s.vendors, vendors)
	s.result = repositories.LoadResultOK
	return nil
}
