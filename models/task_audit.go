package models

import "time"

const (
	AuditTaskCreated     = "task_created"
	AuditTaskForwarded   = "task_forwarded"
	AuditProgressUpdated = "progress_updated"
	AuditTaskDeleted     = "task_deleted"
)

// TaskAudit rows outlive the task they describe; deleting a task leaves its
// trail in place for historical traceability.
type TaskAudit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TaskID    uint      `gorm:"index" json:"task_id"`
	Action    string    `gorm:"size:32" json:"action"`
	ActorID   uint      `json:"actor_id"`
	Comments  string    `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}
