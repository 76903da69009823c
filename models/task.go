package models

import (
	"time"

	"backoffice/constants"
)

type Task struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Priority         string     `gorm:"size:16" json:"priority"`
	Status           string     `gorm:"size:16" json:"status"`
	Progress         int        `gorm:"default:0" json:"progress"`
	Deadline         *time.Time `json:"deadline"`
	AssignedToID     uint       `gorm:"index" json:"assigned_to_id"`
	CreatedByID      uint       `gorm:"index" json:"created_by_id"`
	OriginTaskID     *uint      `gorm:"index" json:"origin_task_id"`
	Highlights       []string   `gorm:"serializer:json" json:"highlights"`
	CommentsCount    int        `gorm:"default:0" json:"comments_count"`
	AttachmentsCount int        `gorm:"default:0" json:"attachments_count"`
	CreatedAt        time.Time  `json:"created_at"`
}

// DeriveStatus applies the read-time overdue rule: a task past its deadline
// that never completed reports overdue. Nothing is written back to the store;
// completed is terminal.
func (t *Task) DeriveStatus(now time.Time) {
	if t.Status == constants.TaskStatusCompleted {
		return
	}
	if t.Deadline != nil && now.After(*t.Deadline) {
		t.Status = constants.TaskStatusOverdue
	}
}
