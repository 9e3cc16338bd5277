package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/domain/document"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/observability"
)

// ContentHandler serves the public, read-only shop content.
type ContentHandler struct {
	store document.Store
}

func NewContentHandler(store document.Store) *ContentHandler {
	return &ContentHandler{store: store}
}

func (h *ContentHandler) ListBarbers(c *gin.Context) {
	listCollection(c, h.store, models.CollectionBarber, "failed_to_list_barbers")
}

func (h *ContentHandler) ListServices(c *gin.Context) {
	listCollection(c, h.store, models.CollectionService, "failed_to_list_services")
}

func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	listCollection(c, h.store, models.CollectionTestimonial, "failed_to_list_testimonials")
}

// GetShop returns the first stored shop document as stored, or the unsaved
// defaults when none exists yet.
func (h *ContentHandler) GetShop(c *gin.Context) {
	shop, ok, err := document.FirstDocument(c.Request.Context(), h.store, models.CollectionShopInfo)
	if err != nil {
		storeFailure(c, err, "failed_to_get_shop", "Error loading shop info.")
		return
	}
	if !ok {
		httpresp.OK(c, models.DefaultShopInfo())
		return
	}
	httpresp.OK(c, shop)
}

// Documents are returned as stored; fields written by other tools survive.
func listCollection(c *gin.Context, store document.Store, collection, code string) {
	docs, err := document.ListDocuments(c.Request.Context(), store, collection, 0)
	if err != nil {
		storeFailure(c, err, code, "Error listing "+collection+" documents.")
		return
	}
	httpresp.List(c, docs)
}

func storeFailure(c *gin.Context, err error, code, message string) {
	_ = c.Error(err)

	if errors.Is(err, document.ErrNotConfigured) {
		httperr.NotConfigured(c)
		return
	}

	observability.LoggerFromContext(c.Request.Context()).Error().Err(err).Str("error_code", code).Msg("store operation failed")
	httperr.Internal(c, code, message)
}
