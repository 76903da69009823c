package models

import "time"

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex;size:191" json:"email"`
	Password   string    `json:"-"`
	Role       string    `gorm:"size:32" json:"role"`
	Department string    `gorm:"size:32" json:"department"`
	ManagerID  *uint     `json:"manager_id"`
	CreatedAt  time.Time `json:"created_at"`
}
