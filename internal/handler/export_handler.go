package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hungerguard/internal/port"
	"hungerguard/internal/xlsxexport"
)

// ExportHandler handles dataset export endpoints.
type ExportHandler struct {
	datasets port.DatasetProvider
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(datasets port.DatasetProvider) *ExportHandler {
	return &ExportHandler{datasets: datasets}
}

// Export handles GET /dashboard/export
// @Summary Export all reference datasets as an Excel workbook
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Multi-sheet XLSX workbook"
// @Router /dashboard/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	f, err := xlsxexport.BuildWorkbook(c.Request.Context(), h.datasets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("closing export workbook: %v", cerr)
		}
	}()

	filename := fmt.Sprintf("hungerguard-datasets-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := f.WriteTo(c.Writer); err != nil {
		log.Printf("writing export workbook: %v", err)
	}
}
