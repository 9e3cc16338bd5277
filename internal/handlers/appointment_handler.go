package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/observability"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type createAppointmentUseCase interface {
	Execute(ctx context.Context, in models.AppointmentInput) (string, error)
}

type AppointmentHandler struct {
	create createAppointmentUseCase
}

func NewAppointmentHandler(create createAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{create: create}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req models.AppointmentInput
	if err := validators.DecodeAndValidate(c.Request.Body, &req); err != nil {
		mapCreateErrors(c, err)
		return
	}

	id, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"id":     id,
		"status": "created",
	})
}

func mapCreateErrors(c *gin.Context, err error) {
	_ = c.Error(err)

	if ve, ok := validators.AsValidationError(err); ok {
		httperr.Unprocessable(c, ve)
		return
	}

	if httperr.IsBusiness(err, httperr.CodeDatabaseNotConfigured) {
		httperr.NotConfigured(c)
		return
	}

	observability.LoggerFromContext(c.Request.Context()).Error().Err(err).Msg("appointment create failed")
	httperr.Internal(c, appointment.CodeCreateFailed, "Error creating appointment.")
}
