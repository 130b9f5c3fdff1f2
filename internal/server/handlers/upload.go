package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/osmanekinci26/cashguardtr/internal/analysis"
	"github.com/osmanekinci26/cashguardtr/internal/model"
	"github.com/osmanekinci26/cashguardtr/internal/parser"
	"github.com/osmanekinci26/cashguardtr/internal/store"
)

// Upload accepts a workbook, parses and analyzes it, and persists the result.
// POST /api/companies/:id/upload (multipart, field "file")
func (h *Handler) Upload(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	company, err := h.store.GetCompany(companyID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing upload file"})
		return
	}

	uploadID := uuid.NewString()
	storedPath := filepath.Join(h.uploadsDir, uploadID+".xlsx")
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	if err := h.store.CreateUpload(uploadID, companyID, file.Filename, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	fin, err := h.engine.Parse(storedPath)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if !errors.Is(err, parser.ErrUnrecognizedWorkbook) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error(), "uploadId": uploadID})
		return
	}

	result := analysis.Analyze(fin, model.ParseSector(company.Sector))
	resultJSON, err := json.Marshal(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	analysisID := uuid.NewString()
	if err := h.store.CreateAnalysis(analysisID, companyID, uploadID, string(resultJSON)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysisId": analysisID,
		"uploadId":   uploadID,
		"result":     result,
	})
}

// GetAnalysis returns one persisted analysis with its result decoded.
// GET /api/analyses/:id
func (h *Handler) GetAnalysis(c *gin.Context) {
	a, ok := h.loadAnalysis(c)
	if !ok {
		return
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(a.ResultJSON), &result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored result is corrupt"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        a.ID,
		"companyId": a.CompanyID,
		"uploadId":  a.UploadID,
		"createdAt": a.CreatedAt,
		"result":    result,
	})
}

// GetMappingLog returns the row-level mapping diagnostics of an analysis.
// GET /api/analyses/:id/mapping
func (h *Handler) GetMappingLog(c *gin.Context) {
	a, ok := h.loadAnalysis(c)
	if !ok {
		return
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(a.ResultJSON), &result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored result is corrupt"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mappingLog":     result.MappingLog,
		"unmappedLabels": result.UnmappedLabels,
	})
}

func (h *Handler) loadAnalysis(c *gin.Context) (*store.Analysis, bool) {
	a, err := h.store.GetAnalysis(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return a, true
}
