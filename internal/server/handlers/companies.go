package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/osmanekinci26/cashguardtr/internal/model"
	"github.com/osmanekinci26/cashguardtr/internal/store"
)

// Health reports service liveness.
// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateCompanyRequest is the company creation payload.
type CreateCompanyRequest struct {
	Name   string `json:"name" binding:"required"`
	Sector string `json:"sector"`
}

// CreateCompany registers a company.
// POST /api/companies
func (h *Handler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	sector := model.ParseSector(req.Sector)
	id, err := h.store.CreateCompany(req.Name, string(sector))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	company, err := h.store.GetCompany(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, company)
}

// ListCompanies returns all companies.
// GET /api/companies
func (h *Handler) ListCompanies(c *gin.Context) {
	companies, err := h.store.ListCompanies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if companies == nil {
		companies = []store.Company{}
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany returns one company.
// GET /api/companies/:id
func (h *Handler) GetCompany(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	company, err := h.store.GetCompany(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, company)
}

// ListAnalyses returns a company's analysis history.
// GET /api/companies/:id/analyses
func (h *Handler) ListAnalyses(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	analyses, err := h.store.ListAnalyses(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if analyses == nil {
		analyses = []store.Analysis{}
	}
	c.JSON(http.StatusOK, analyses)
}
