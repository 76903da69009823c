package models

import "time"

type HolidayEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Date            string    `gorm:"size:10;index" json:"date"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Departments     []string  `gorm:"serializer:json" json:"departments"`
	Status          string    `gorm:"size:32" json:"status"`
	StartTime       string    `gorm:"size:5" json:"start_time"`
	EndTime         string    `gorm:"size:5" json:"end_time"`
	DisplayTime     string    `json:"display_time"`
	BackgroundColor string    `json:"background_color"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (HolidayEntry) TableName() string {
	return "holiday_entries"
}

// HolidayDepartment denormalizes one (date, department) pair per entry so the
// store can back the conflict invariant with a plain unique index. Rows are
// maintained in the same transaction as their entry.
type HolidayDepartment struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	EntryID    uint   `gorm:"index" json:"-"`
	Date       string `gorm:"size:10;uniqueIndex:idx_holiday_date_department" json:"-"`
	Department string `gorm:"size:32;uniqueIndex:idx_holiday_date_department" json:"-"`
}

func (HolidayDepartment) TableName() string {
	return "holiday_departments"
}
