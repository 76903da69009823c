package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"backoffice/constants"
	"backoffice/models"
	"backoffice/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HolidayController struct {
	DB  *gorm.DB
	Log *logrus.Logger

	// DefaultCreator stamps entries created without an explicit created_by.
	DefaultCreator string
}

type createHolidayRequest struct {
	Date            string   `json:"date"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Departments     []string `json:"departments"`
	Status          string   `json:"status"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DisplayTime     string   `json:"display_time"`
	BackgroundColor string   `json:"background_color"`
	CreatedBy       string   `json:"created_by"`
}

type updateHolidayRequest struct {
	Date            *string   `json:"date"`
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Departments     *[]string `json:"departments"`
	Status          *string   `json:"status"`
	StartTime       *string   `json:"start_time"`
	EndTime         *string   `json:"end_time"`
	DisplayTime     *string   `json:"display_time"`
	BackgroundColor *string   `json:"background_color"`
}

func validDate(date string) bool {
	_, err := time.Parse(constants.HolidayDateLayout, date)
	return err == nil
}

func validateDepartments(departments []string, verr *response.ValidationError) {
	if len(departments) == 0 {
		verr.Set("departments", "must not be empty")
		return
	}
	for _, d := range departments {
		if !constants.IsValidDepartment(d) {
			verr.Set("departments", fmt.Sprintf("unknown department %q", d))
			return
		}
	}
}

// conflictingDepartments scans the denormalized rows for entries on date
// whose departments intersect the given set. excludeEntryID skips the entry
// being updated.
func conflictingDepartments(tx *gorm.DB, date string, departments []string, excludeEntryID uint) ([]string, error) {
	query := tx.Where("date = ? AND department IN ?", date, departments)
	if excludeEntryID != 0 {
		query = query.Where("entry_id <> ?", excludeEntryID)
	}

	var rows []models.HolidayDepartment
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	conflicts := []string{}
	for _, row := range rows {
		if !seen[row.Department] {
			seen[row.Department] = true
			conflicts = append(conflicts, row.Department)
		}
	}
	sort.Strings(conflicts)
	return conflicts, nil
}

// replaceDepartmentRows rewrites the (date, department) rows for an entry.
// The unique index is the authoritative backstop against a concurrent writer
// that slipped past the scan.
func replaceDepartmentRows(tx *gorm.DB, entry models.HolidayEntry) error {
	if err := tx.Where("entry_id = ?", entry.ID).Delete(&models.HolidayDepartment{}).Error; err != nil {
		return err
	}
	for _, d := range entry.Departments {
		row := models.HolidayDepartment{EntryID: entry.ID, Date: entry.Date, Department: d}
		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &response.ConflictError{Date: entry.Date, Departments: []string{d}}
			}
			return err
		}
	}
	return nil
}

func (hc *HolidayController) CreateEntry(c *gin.Context) {
	const op = "controllers.Holiday.CreateEntry"

	var input createHolidayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		verr := response.NewValidationError()
		verr.Set("body", "invalid request body")
		response.HandleError(c, verr)
		return
	}

	verr := response.NewValidationError()
	if input.Date == "" {
		verr.Set("date", "missed value")
	} else if !validDate(input.Date) {
		verr.Set("date", "must be a valid YYYY-MM-DD date")
	}
	if input.Title == "" {
		verr.Set("title", "missed value")
	}
	validateDepartments(input.Departments, verr)
	if !constants.IsValidHolidayStatus(input.Status) {
		verr.Set("status", "must be one of: Full Day Holiday, Half Day Holiday, Working Day")
	}
	if verr.HasErrors() {
		response.HandleError(c, verr)
		return
	}

	entry := models.HolidayEntry{
		Date:            input.Date,
		Title:           input.Title,
		Description:     input.Description,
		Departments:     input.Departments,
		Status:          input.Status,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DisplayTime:     input.DisplayTime,
		BackgroundColor: input.BackgroundColor,
		CreatedBy:       input.CreatedBy,
	}
	if entry.StartTime == "" {
		entry.StartTime = constants.HolidayDefaultStartTime
	}
	if entry.EndTime == "" {
		entry.EndTime = constants.HolidayDefaultEndTime
	}
	if entry.CreatedBy == "" {
		entry.CreatedBy = hc.DefaultCreator
	}

	err := hc.DB.Transaction(func(tx *gorm.DB) error {
		conflicts, err := conflictingDepartments(tx, entry.Date, entry.Departments, 0)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &response.ConflictError{Date: entry.Date, Departments: conflicts}
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return replaceDepartmentRows(tx, entry)
	})
	if err != nil {
		var conflictErr *response.ConflictError
		if !errors.As(err, &conflictErr) {
			hc.Log.WithError(err).Errorf("%s: failed to create entry", op)
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (hc *HolidayController) UpdateEntry(c *gin.Context) {
	const op = "controllers.Holiday.UpdateEntry"

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(c, &response.NotFoundError{Resource: "holiday entry"})
		return
	}

	var entry models.HolidayEntry
	if err := hc.DB.First(&entry, uint(id)).Error; err != nil {
		response.HandleError(c, &response.NotFoundError{Resource: "holiday entry"})
		return
	}

	var patch updateHolidayRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		verr := response.NewValidationError()
		verr.Set("body", "invalid request body")
		response.HandleError(c, verr)
		return
	}

	verr := response.NewValidationError()
	if patch.Date != nil && !validDate(*patch.Date) {
		verr.Set("date", "must be a valid YYYY-MM-DD date")
	}
	if patch.Title != nil && *patch.Title == "" {
		verr.Set("title", "missed value")
	}
	if patch.Departments != nil {
		validateDepartments(*patch.Departments, verr)
	}
	if patch.Status != nil && !constants.IsValidHolidayStatus(*patch.Status) {
		verr.Set("status", "must be one of: Full Day Holiday, Half Day Holiday, Working Day")
	}
	if verr.HasErrors() {
		response.HandleError(c, verr)
		return
	}

	scopeChanged := false
	if patch.Date != nil && *patch.Date != entry.Date {
		entry.Date = *patch.Date
		scopeChanged = true
	}
	if patch.Departments != nil {
		entry.Departments = *patch.Departments
		scopeChanged = true
	}
	if patch.Title != nil {
		entry.Title = *patch.Title
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.Status != nil {
		entry.Status = *patch.Status
	}
	if patch.StartTime != nil {
		entry.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		entry.EndTime = *patch.EndTime
	}
	if patch.DisplayTime != nil {
		entry.DisplayTime = *patch.DisplayTime
	}
	if patch.BackgroundColor != nil {
		entry.BackgroundColor = *patch.BackgroundColor
	}

	err = hc.DB.Transaction(func(tx *gorm.DB) error {
		// An update may not manufacture the conflict createEntry rejects.
		if scopeChanged {
			conflicts, err := conflictingDepartments(tx, entry.Date, entry.Departments, entry.ID)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return &response.ConflictError{Date: entry.Date, Departments: conflicts}
			}
		}
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}
		if scopeChanged {
			return replaceDepartmentRows(tx, entry)
		}
		return nil
	})
	if err != nil {
		var conflictErr *response.ConflictError
		if !errors.As(err, &conflictErr) {
			hc.Log.WithError(err).Errorf("%s: failed to update entry %d", op, entry.ID)
		}
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (hc *HolidayController) DeleteEntry(c *gin.Context) {
	const op = "controllers.Holiday.DeleteEntry"

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(c, &response.NotFoundError{Resource: "holiday entry"})
		return
	}

	var entry models.HolidayEntry
	if err := hc.DB.First(&entry, uint(id)).Error; err != nil {
		response.HandleError(c, &response.NotFoundError{Resource: "holiday entry"})
		return
	}

	err = hc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", entry.ID).Delete(&models.HolidayDepartment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.HolidayEntry{}, entry.ID).Error
	})
	if err != nil {
		hc.Log.WithError(err).Errorf("%s: failed to delete entry %d", op, entry.ID)
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Deleted"})
}

// monthRange expands (year, month) into the half-open ISO date range
// [first-of-month, first-of-next-month).
func monthRange(yearStr, monthStr string) (string, string, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", "", fmt.Errorf("invalid year %q", yearStr)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return "", "", fmt.Errorf("invalid month %q", monthStr)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return start.Format(constants.HolidayDateLayout), end.Format(constants.HolidayDateLayout), nil
}

// FetchEntries is a display path: store failures degrade to an empty data
// set so calendar rendering never breaks on a transient read error.
func (hc *HolidayController) FetchEntries(c *gin.Context) {
	const op = "controllers.Holiday.FetchEntries"

	query := hc.DB.Model(&models.HolidayEntry{})

	if department := c.Query("department"); department != "" && department != "All" {
		query = query.Where("id IN (?)",
			hc.DB.Model(&models.HolidayDepartment{}).Select("entry_id").Where("department = ?", department))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	month, year := c.Query("month"), c.Query("year")
	if month != "" && year != "" {
		start, end, err := monthRange(year, month)
		if err != nil {
			verr := response.NewValidationError()
			verr.Set("month", err.Error())
			response.HandleError(c, verr)
			return
		}
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	entries := []models.HolidayEntry{}
	if err := query.Order("date asc").Find(&entries).Error; err != nil {
		hc.Log.WithError(err).Errorf("%s: fetch failed, returning empty set", op)
		entries = []models.HolidayEntry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entries,
		"count":   len(entries),
	})
}

// CheckDate lets a calendar UI probe a date before attempting createEntry.
func (hc *HolidayController) CheckDate(c *gin.Context) {
	const op = "controllers.Holiday.CheckDate"

	date := c.Param("date")
	if !validDate(date) {
		verr := response.NewValidationError()
		verr.Set("date", "must be a valid YYYY-MM-DD date")
		response.HandleError(c, verr)
		return
	}

	query := hc.DB.Where("date = ?", date)
	if raw := c.Query("departments"); raw != "" {
		departments := []string{}
		for _, d := range strings.Split(raw, ",") {
			if d = strings.TrimSpace(d); d != "" {
				departments = append(departments, d)
			}
		}
		if len(departments) > 0 {
			query = query.Where("department IN ?", departments)
		}
	}

	var row models.HolidayDepartment
	err := query.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"success": true, "exists": false, "data": nil})
		return
	}
	if err != nil {
		hc.Log.WithError(err).Errorf("%s: check failed", op)
		response.HandleError(c, err)
		return
	}

	var entry models.HolidayEntry
	if err := hc.DB.First(&entry, row.EntryID).Error; err != nil {
		hc.Log.WithError(err).Errorf("%s: failed to load entry %d", op, row.EntryID)
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "exists": true, "data": entry})
}
