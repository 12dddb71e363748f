package dto

import (
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

// AuditLogDTO exposes the stored metadata as a JSON value instead of text.
type AuditLogDTO struct {
	ID        uint            `json:"id"`
	UserID    *string         `json:"user_id"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entity_id"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewAuditLogDTO(l models.AuditLog) AuditLogDTO {
	out := AuditLogDTO{
		ID:        l.ID,
		UserID:    l.UserID,
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		CreatedAt: l.CreatedAt,
	}
	if l.Metadata != "" && json.Valid([]byte(l.Metadata)) {
		out.Metadata = json.RawMessage(l.Metadata)
	}
	return out
}

func NewAuditLogDTOs(logs []models.AuditLog) []AuditLogDTO {
	out := make([]AuditLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, NewAuditLogDTO(l))
	}
	return out
}
