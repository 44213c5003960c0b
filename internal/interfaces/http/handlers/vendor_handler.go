package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"vendor-desk.backend/internal/domain/entities"
	domainerrors "vendor-desk.backend/internal/domain/errors"
	"vendor-desk.backend/internal/interfaces/http/response"
	"vendor-desk.backend/internal/usecases"
)

// VendorHandler handles vendor directory endpoints
type VendorHandler struct {
	vendorUsecase *usecases.VendorUsecase
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorUsecase *usecases.VendorUsecase) *VendorHandler {
	return &VendorHandler{vendorUsecase: vendorUsecase}
}

// ListVendors lists the directory with filters, sorting and contract state
// GET /api/v1/vendors
func (h *VendorHandler) ListVendors(c *gin.Context) {
	filter := entities.VendorFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		SortBy:   c.Query("sortBy"),
	}
	if n, err := strconv.Atoi(c.Query("minRating")); err == nil {
		filter.MinRating = n
	}
	if f, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		filter.MinPrice = f
	}
	if f, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		filter.MaxPrice = f
	}

	vendors := h.vendorUsecase.ListVendors(c.Request.Context(), filter)
	response.Success(c, http.StatusOK, gin.H{"vendors": vendors, "count": len(vendors)})
}

// GetVendor gets a vendor by id
// GET /api/v1/vendors/:id
func (h *VendorHandler) GetVendor(c *gin.Context) {
	vendor, err := h.vendorUsecase.GetVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Vendor not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, vendor)
}

// AddVendor validates and adds (or merges) a vendor
// POST /api/v1/vendors
func (h *VendorHandler) AddVendor(c *gin.Context) {
	var input entities.VendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorUsecase.AddVendor(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, vendor)
}

// UpdateVendor validates and fully replaces a vendor record
// PUT /api/v1/vendors/:id
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	var input entities.VendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorUsecase.UpdateVendor(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Vendor not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, vendor)
}

// DeleteVendor removes a vendor by id
// DELETE /api/v1/vendors/:id
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	h.vendorUsecase.DeleteVendorByID(c.Request.Context(), c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// BulkDeleteVendors removes every vendor whose id is listed
// POST /api/v1/vendors/bulk-delete
func (h *VendorHandler) BulkDeleteVendors(c *gin.Context) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	removed := h.vendorUsecase.BulkDelete(c.Request.Context(), body.IDs)
	response.Success(c, http.StatusOK, gin.H{"removed": removed})
}

// ClearVendors empties the directory
// DELETE /api/v1/vendors
func (h *VendorHandler) ClearVendors(c *gin.Context) {
	h.vendorUsecase.ClearVendors(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

// GetContractStatus classifies a vendor's contract against today
// GET /api/v1/vendors/:id/contract
func (h *VendorHandler) GetContractStatus(c *gin.Context) {
	expiry, err := h.vendorUsecase.ContractStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Vendor not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, expiry)
}
