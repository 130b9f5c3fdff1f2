// Package handlers implements the HTTP API.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/osmanekinci26/cashguardtr/internal/parser"
	"github.com/osmanekinci26/cashguardtr/internal/store"
)

// Handler carries the API dependencies.
type Handler struct {
	store      *store.Store
	engine     *parser.Engine
	uploadsDir string
}

// NewHandler creates the API handler.
func NewHandler(st *store.Store, uploadsDir string) *Handler {
	return &Handler{
		store:      st,
		engine:     parser.NewEngine(),
		uploadsDir: uploadsDir,
	}
}

// RegisterRoutes registers all API routes on the group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)

	router.POST("/companies", h.CreateCompany)
	router.GET("/companies", h.ListCompanies)
	router.GET("/companies/:id", h.GetCompany)
	router.GET("/companies/:id/analyses", h.ListAnalyses)

	router.POST("/companies/:id/upload", h.Upload)

	router.GET("/analyses/:id", h.GetAnalysis)
	router.GET("/analyses/:id/mapping", h.GetMappingLog)
}
