package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/document"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

const CodeCreateFailed = "failed_to_create_appointment"

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store document.Store
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	store document.Store,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		store: store,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates in, stores it and returns the new appointment id. A
// payload that fails validation never reaches the store.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in models.AppointmentInput,
) (string, error) {

	if err := validators.Validate(in); err != nil {
		return "", err
	}

	if uc.store == nil {
		return "", httperr.ErrBusiness(httperr.CodeDatabaseNotConfigured)
	}

	record := in.Record(string(domain.InitialStatus()))

	id, err := uc.store.CreateDocument(ctx, models.CollectionAppointment, record)
	if err != nil {
		return "", httperr.WrapBusiness(CodeCreateFailed, err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   "appointment_created",
		Entity:   models.CollectionAppointment,
		EntityID: id,
		Metadata: map[string]any{
			"date":   record.Date,
			"time":   record.Time,
			"status": record.Status,
		},
	})

	return id, nil
}
