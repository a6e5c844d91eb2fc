package dto

import (
	"encoding/json"
	"time"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
)

// ListAuditLogsParams defines query parameters for listing audit entries.
type ListAuditLogsParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// AuditLogResponse defines the data returned for an audit entry.
type AuditLogResponse struct {
	AuditLogID string          `json:"auditLogID"`
	Action     string          `json:"action"`
	UserID     string          `json:"userID,omitempty"`
	EntityType string          `json:"entityType,omitempty"`
	EntityID   string          `json:"entityID,omitempty"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ListAuditLogsResponse wraps the list of audit entries.
type ListAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"auditLogs"`
}

// ToAuditLogResponse converts a domain.AuditLog to its DTO.
func ToAuditLogResponse(a *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditLogID: a.AuditLogID,
		Action:     string(a.Action),
		UserID:     a.UserID,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		Before:     a.Before,
		After:      a.After,
		CreatedAt:  a.CreatedAt,
	}
}

// ToListAuditLogsResponse converts a slice of domain.AuditLog to the list DTO.
func ToListAuditLogsResponse(logs []domain.AuditLog) ListAuditLogsResponse {
	responses := make([]AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToAuditLogResponse(&logs[i])
	}
	return ListAuditLogsResponse{AuditLogs: responses}
}
