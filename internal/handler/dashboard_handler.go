package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hungerguard/internal/port"
	"hungerguard/internal/service"
)

// DashboardHandler handles dataset and dashboard endpoints.
type DashboardHandler struct {
	datasets         port.DatasetProvider
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(datasets port.DatasetProvider, dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{datasets: datasets, dashboardService: dashboardService}
}

// SystemStatus handles GET /system_status
// @Summary Get network-wide system status
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.SystemStatus
// @Router /system_status [get]
func (h *DashboardHandler) SystemStatus(c *gin.Context) {
	status, err := h.dashboardService.SystemStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// Inventory handles GET /inventory
// @Summary List current surplus inventory
// @Tags datasets
// @Produce json
// @Success 200 {array} domain.InventoryItem
// @Router /inventory [get]
func (h *DashboardHandler) Inventory(c *gin.Context) {
	items, err := h.datasets.Inventory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Demand handles GET /demand
// @Summary List community demand signals
// @Tags datasets
// @Produce json
// @Success 200 {array} domain.DemandSignal
// @Router /demand [get]
func (h *DashboardHandler) Demand(c *gin.Context) {
	demands, err := h.datasets.DemandSignals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, demands)
}

// Logistics handles GET /logistics
// @Summary List logistics fleet
// @Tags datasets
// @Produce json
// @Success 200 {array} domain.Vehicle
// @Router /logistics [get]
func (h *DashboardHandler) Logistics(c *gin.Context) {
	vehicles, err := h.datasets.Logistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// Storage handles GET /storage
// @Summary List storage facilities
// @Tags datasets
// @Produce json
// @Success 200 {array} domain.StorageFacility
// @Router /storage [get]
func (h *DashboardHandler) Storage(c *gin.Context) {
	facilities, err := h.datasets.StorageFacilities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, facilities)
}

// Farmers handles GET /farmers
// @Summary List registered farmers
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]domain.Farmer
// @Router /farmers [get]
func (h *DashboardHandler) Farmers(c *gin.Context) {
	farmers, err := h.datasets.Farmers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, farmers)
}

// Stats handles GET /dashboard/stats
// @Summary Get aggregate dashboard statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// InventoryFlow handles GET /dashboard/inventory-flow
// @Summary Get weekly inventory flow series
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.InventoryFlow
// @Router /dashboard/inventory-flow [get]
func (h *DashboardHandler) InventoryFlow(c *gin.Context) {
	flow, err := h.dashboardService.InventoryFlow(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flow)
}

// NetworkStatus handles GET /dashboard/network-status
// @Summary Get distribution network status breakdown
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.NetworkStatus
// @Router /dashboard/network-status [get]
func (h *DashboardHandler) NetworkStatus(c *gin.Context) {
	status, err := h.dashboardService.NetworkStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// WasteReduction handles GET /dashboard/waste-reduction
// @Summary Get monthly waste reduction series
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.WasteReduction
// @Router /dashboard/waste-reduction [get]
func (h *DashboardHandler) WasteReduction(c *gin.Context) {
	reduction, err := h.dashboardService.WasteReduction(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reduction)
}
