package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Actions recorded against submissions.
const (
	ActionStatusChange = "status_change"
	ActionDelete       = "delete"
)

// AuditLog records one admin mutation for traceability.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ActorID      uint           `gorm:"index" json:"actorId"`
	Action       string         `gorm:"size:32;index" json:"action"`
	ResourceType string         `gorm:"size:64;index" json:"resourceType"`
	ResourceID   uint           `gorm:"index" json:"resourceId"`
	OldData      datatypes.JSON `json:"oldData,omitempty"`
	NewData      datatypes.JSON `json:"newData,omitempty"`
	Description  string         `gorm:"size:512" json:"description"`
	IPAddress    string         `gorm:"size:64" json:"ipAddress"`
	UserAgent    string         `gorm:"size:512" json:"userAgent"`
	CreatedAt    time.Time      `json:"createdAt"`
}
