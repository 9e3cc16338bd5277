package models

import "time"

type AuditLog struct {
	ID DocID `bson:"_id,omitempty" json:"_id,omitempty"`

	Action   string         `bson:"action" json:"action"`
	Entity   string         `bson:"entity" json:"entity"`
	EntityID string         `bson:"entity_id,omitempty" json:"entity_id,omitempty"`
	Metadata map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`

	RequestID string    `bson:"request_id,omitempty" json:"request_id,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
