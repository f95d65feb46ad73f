package handlers

import (
	"archive/zip"
	"bytes"
	"net/http"
	"testing"

	"newsapp-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportExportZipUnknownTypes(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doGet(t, router, "/api/Reports/export-zip?types=bogus")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No valid report 'types' specified")
}

func TestReportExportZipDefaultsToAllTypes(t *testing.T) {
	router, db := newTestRouter(t)
	require.NoError(t, db.Create(&models.Tag{Name: "go"}).Error)

	w := doGet(t, router, "/api/Reports/export-zip")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/zip")

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	assert.Len(t, zr.File, 6)
}

func TestReportExportZipSubset(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doGet(t, router, "/api/Reports/export-zip?types=tags,%20users")
	require.Equal(t, http.StatusOK, w.Code)

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	assert.Len(t, zr.File, 2)
}

func TestReportExportSingleType(t *testing.T) {
	router, db := newTestRouter(t)
	require.NoError(t, db.Create(&models.Category{Name: "Tech"}).Error)

	w := doGet(t, router, "/api/Reports/export?type=categories")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Id,Name,Description")
	assert.Contains(t, w.Body.String(), "Tech")

	w = doGet(t, router, "/api/Reports/export?type=nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported 'type'")

	// absent type is its own error, distinct from an unknown one
	w = doGet(t, router, "/api/Reports/export")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required 'type' parameter.")
}

func TestReportExportRejectsInvertedRange(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doGet(t, router, "/api/Reports/export-zip?createdFrom=2025-02-01&createdTo=2025-01-01")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'from' must not be after 'to'.")
}

func TestReportExportExcel(t *testing.T) {
	router, db := newTestRouter(t)
	require.NoError(t, db.Create(&models.Tag{Name: "go"}).Error)

	w := doGet(t, router, "/api/Reports/export-excel?types=tags")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}
