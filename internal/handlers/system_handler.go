package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/document"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/observability"
)

const (
	diagnosticCollections = 10
	diagnosticErrLen      = 50
	diagnosticTimeout     = 5 * time.Second
)

type SystemHandler struct {
	store document.Store
	cfg   *config.Config
}

func NewSystemHandler(store document.Store, cfg *config.Config) *SystemHandler {
	return &SystemHandler{store: store, cfg: cfg}
}

type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Barbershop backend running"})
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Schema lists the collections for external document viewers.
func (h *SystemHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": models.Collections})
}

// Diagnostics never fails: every store problem is folded into the response.
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	resp := DiagnosticResponse{
		Backend:          "Running",
		Database:         "Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store != nil {
		resp.Database = "Available"
		resp.ConnectionStatus = "Connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), diagnosticTimeout)
		defer cancel()

		names, err := h.store.CollectionNames(ctx)
		if err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Msg("diagnostic collection listing failed")
			resp.Database = "Connected but Error: " + truncate(err.Error(), diagnosticErrLen)
		} else {
			if len(names) > diagnosticCollections {
				names = names[:diagnosticCollections]
			}
			resp.Collections = append(resp.Collections, names...)
			resp.Database = "Connected & Working"
		}
	} else {
		resp.Database = "Available but not initialized"
	}

	resp.DatabaseURL = setOrNot(h.cfg != nil && h.cfg.DBUrl != "")
	resp.DatabaseName = setOrNot(h.cfg != nil && h.cfg.DBName != "")

	c.JSON(http.StatusOK, resp)
}

func setOrNot(ok bool) string {
	if ok {
		return "Set"
	}
	return "Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
