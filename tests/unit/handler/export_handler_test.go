package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hungerguard/internal/dataset"
	"hungerguard/internal/handler"
)

func TestExportHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handler.NewExportHandler(dataset.NewMemoryProvider())

	r := gin.New()
	r.GET("/dashboard/export", h.Export)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/dashboard/export", http.NoBody)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Inventory", "Demand", "Logistics", "Storage", "Farmers"}, f.GetSheetList())
}
