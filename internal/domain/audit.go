package domain

import "time"

// AuditRecord logs a mutation of the survey catalog.
type AuditRecord struct {
	ID         string         `json:"id"`
	ActorID    int64          `json:"actor_id"`
	EntityType EntityType     `json:"entity_type"`
	EntityID   string         `json:"entity_id,omitempty"`
	Action     AuditAction    `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
