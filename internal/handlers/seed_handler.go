package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/observability"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/seed"
)

type seedUseCase interface {
	Execute(ctx context.Context) (map[string]int, error)
}

type SeedHandler struct {
	seed seedUseCase
}

func NewSeedHandler(uc seedUseCase) *SeedHandler {
	return &SeedHandler{seed: uc}
}

func (h *SeedHandler) Seed(c *gin.Context) {
	inserted, err := h.seed.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)

		if httperr.IsBusiness(err, httperr.CodeDatabaseNotConfigured) {
			httperr.NotConfigured(c)
			return
		}

		observability.LoggerFromContext(c.Request.Context()).Error().Err(err).Msg("seed failed")
		httperr.Internal(c, seed.CodeSeedFailed, "Error seeding content.")
		return
	}

	observability.LoggerFromContext(c.Request.Context()).Info().
		Interface("inserted", inserted).
		Msg("seed completed")

	httpresp.OK(c, gin.H{"status": "ok"})
}
