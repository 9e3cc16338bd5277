package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-api/internal/domain/document"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/observability"
)

type Logger struct {
	store document.Store
	now   func() time.Time
}

func New(store document.Store) *Logger {
	return &Logger{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	if l.store == nil {
		return document.ErrNotConfigured
	}

	entry := models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  ev.Metadata,
		RequestID: observability.RequestIDFromContext(ctx),
		CreatedAt: l.now(),
	}

	_, err := l.store.CreateDocument(ctx, models.CollectionAuditLog, entry)
	return err
}
