package domain

import (
	"encoding/json"
	"time"
)

// AuditAction names a recorded action. Entity CRUD actions are composed as
// e.g. "CREATE_TRANSACTION" via EntityAction.
type AuditAction string

const (
	AuditLogin     AuditAction = "LOGIN"
	AuditDataReset AuditAction = "DATA_RESET"
)

// EntityAction composes an audit action name from a verb and entity type.
func EntityAction(verb string, entityType string) AuditAction {
	return AuditAction(verb + "_" + entityType)
}

// AuditLog is an append-only record of a user action. Rows are never updated
// or deleted from the application's perspective.
type AuditLog struct {
	AuditLogID string          `json:"auditLogID"`
	Action     AuditAction     `json:"action"`
	UserID     string          `json:"userID,omitempty"` // empty when the actor was deleted
	EntityType string          `json:"entityType,omitempty"`
	EntityID   string          `json:"entityID,omitempty"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
