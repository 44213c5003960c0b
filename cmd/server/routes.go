package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"vendor-desk.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	vendorHandler   *handlers.VendorHandler
	transferHandler *handlers.TransferHandler
	reportHandler   *handlers.ReportHandler
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		vendors := v1.Group("/vendors")
		{
			vendors.GET("", d.vendorHandler.ListVendors)
			vendors.POST("", d.vendorHandler.AddVendor)
			vendors.DELETE("", d.vendorHandler.ClearVendors)
			vendors.POST("/bulk-delete", d.vendorHandler.BulkDeleteVendors)

			// Bulk transfer before the :id wildcard
			vendors.POST("/import", d.transferHandler.ImportCSV)
			vendors.GET("/export", d.transferHandler.ExportCSV)
			vendors.GET("/export/xlsx", d.transferHandler.ExportXLSX)

			vendors.GET("/:id", d.vendorHandler.GetVendor)
			vendors.PUT("/:id", d.vendorHandler.UpdateVendor)
			vendors.DELETE("/:id", d.vendorHandler.DeleteVendor)
			vendors.GET("/:id/contract", d.vendorHandler.GetContractStatus)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/vendors", d.reportHandler.GetReport)
			reports.GET("/vendors/export", d.reportHandler.ExportReportCSV)
		}
	}
}
