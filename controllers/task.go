package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"backoffice/constants"
	"backoffice/models"
	"backoffice/response"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TaskController struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

type createTaskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	AssignedToID uint       `json:"assigned_to_id"`
	Deadline     *time.Time `json:"deadline"`
	Priority     string     `json:"priority"`
	Highlights   []string   `json:"highlights"`
}

// forwardTaskRequest fields override the source task; unset fields inherit
// from it. Only the assignee is mandatory.
type forwardTaskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	AssignedToID uint       `json:"assigned_to_id"`
	Deadline     *time.Time `json:"deadline"`
	Priority     string     `json:"priority"`
	Highlights   []string   `json:"highlights"`
}

func (tc *TaskController) actor(c *gin.Context) (models.User, bool) {
	var user models.User
	if err := tc.DB.First(&user, c.GetUint("user_id")).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unknown actor"})
		return user, false
	}
	return user, true
}

func (tc *TaskController) loadTask(c *gin.Context) (models.Task, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.HandleError(c, &response.NotFoundError{Resource: "task"})
		return models.Task{}, false
	}
	var task models.Task
	if err := tc.DB.First(&task, uint(id)).Error; err != nil {
		response.HandleError(c, &response.NotFoundError{Resource: "task"})
		return models.Task{}, false
	}
	return task, true
}

// resolveAssignee checks the assignee exists and sits one tier below the
// assigner. Errors land in verr under assigned_to_id.
func (tc *TaskController) resolveAssignee(assignerRole string, assigneeID uint, verr *response.ValidationError) (models.User, bool) {
	var assignee models.User
	if assigneeID == 0 {
		verr.Set("assigned_to_id", "missed value")
		return assignee, false
	}
	if err := tc.DB.First(&assignee, assigneeID).Error; err != nil {
		verr.Set("assigned_to_id", "unknown user")
		return assignee, false
	}
	if !utils.CanAssignDownstream(assignerRole, assignee) {
		below, ok := constants.RoleBelow(assignerRole)
		if !ok {
			verr.Set("assigned_to_id", fmt.Sprintf("role %s has no downstream tier to assign to", assignerRole))
		} else {
			verr.Set("assigned_to_id", fmt.Sprintf("assignee must hold role %s", below))
		}
		return assignee, false
	}
	return assignee, true
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	const op = "controllers.Task.CreateTask"

	creator, ok := tc.actor(c)
	if !ok {
		return
	}

	var input createTaskRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		verr := response.NewValidationError()
		verr.Set("body", "invalid request body")
		response.HandleError(c, verr)
		return
	}

	now := time.Now()

	verr := response.NewValidationError()
	if input.Title == "" {
		verr.Set("title", "missed value")
	}
	if input.Description == "" {
		verr.Set("description", "missed value")
	}
	if !constants.IsValidPriority(input.Priority) {
		verr.Set("priority", "must be one of: low, medium, high")
	}
	if input.Deadline == nil {
		verr.Set("deadline", "missed value")
	} else if input.Deadline.Before(now) {
		verr.Set("deadline", "must not be in the past")
	}
	tc.resolveAssignee(creator.Role, input.AssignedToID, verr)
	if verr.HasErrors() {
		response.HandleError(c, verr)
		return
	}

	task := models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Priority:     input.Priority,
		Status:       constants.TaskStatusPending,
		Progress:     0,
		Deadline:     input.Deadline,
		AssignedToID: input.AssignedToID,
		CreatedByID:  creator.ID,
		Highlights:   input.Highlights,
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		return tx.Create(&models.TaskAudit{
			TaskID:  task.ID,
			Action:  models.AuditTaskCreated,
			ActorID: creator.ID,
		}).Error
	})
	if err != nil {
		tc.Log.WithError(err).Errorf("%s: failed to create task", op)
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (tc *TaskController) ForwardTask(c *gin.Context) {
	const op = "controllers.Task.ForwardTask"

	forwarder, ok := tc.actor(c)
	if !ok {
		return
	}

	source, ok := tc.loadTask(c)
	if !ok {
		return
	}

	// Only the current holder may forward.
	if source.AssignedToID != forwarder.ID {
		response.HandleError(c, &response.NotAuthorizedError{Reason: "only the current assignee may forward a task"})
		return
	}

	var input forwardTaskRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		verr := response.NewValidationError()
		verr.Set("body", "invalid request body")
		response.HandleError(c, verr)
		return
	}

	title := input.Title
	if title == "" {
		title = source.Title
	}
	description := input.Description
	if description == "" {
		description = source.Description
	}
	priority := input.Priority
	if priority == "" {
		priority = source.Priority
	}
	deadline := input.Deadline
	if deadline == nil {
		deadline = source.Deadline
	}
	highlights := input.Highlights
	if highlights == nil {
		highlights = source.Highlights
	}

	verr := response.NewValidationError()
	if !constants.IsValidPriority(priority) {
		verr.Set("priority", "must be one of: low, medium, high")
	}
	if input.Deadline != nil && input.Deadline.Before(time.Now()) {
		verr.Set("deadline", "must not be in the past")
	}
	tc.resolveAssignee(forwarder.Role, input.AssignedToID, verr)
	if verr.HasErrors() {
		response.HandleError(c, verr)
		return
	}

	forwarded := models.Task{
		Title:        title,
		Description:  description,
		Priority:     priority,
		Status:       constants.TaskStatusPending,
		Progress:     0,
		Deadline:     deadline,
		AssignedToID: input.AssignedToID,
		CreatedByID:  forwarder.ID,
		OriginTaskID: &source.ID,
		Highlights:   highlights,
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&forwarded).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.TaskAudit{
			TaskID:   source.ID,
			Action:   models.AuditTaskForwarded,
			ActorID:  forwarder.ID,
			Comments: fmt.Sprintf("forwarded as task %d to user %d", forwarded.ID, forwarded.AssignedToID),
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.TaskAudit{
			TaskID:  forwarded.ID,
			Action:  models.AuditTaskCreated,
			ActorID: forwarder.ID,
		}).Error
	})
	if err != nil {
		tc.Log.WithError(err).Errorf("%s: failed to forward task %d", op, source.ID)
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, forwarded)
}

func (tc *TaskController) UpdateProgress(c *gin.Context) {
	const op = "controllers.Task.UpdateProgress"

	actor, ok := tc.actor(c)
	if !ok {
		return
	}

	task, ok := tc.loadTask(c)
	if !ok {
		return
	}

	if task.AssignedToID != actor.ID {
		response.HandleError(c, &response.NotAuthorizedError{Reason: "only the assignee may update progress"})
		return
	}

	var input struct {
		Progress *int `json:"progress"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Progress == nil {
		verr := response.NewValidationError()
		verr.Set("progress", "missed value")
		response.HandleError(c, verr)
		return
	}

	progress := *input.Progress
	if progress < 0 || progress > 100 {
		verr := response.NewValidationError()
		verr.Set("progress", "must be between 0 and 100")
		response.HandleError(c, verr)
		return
	}

	// Completed is terminal.
	if task.Status == constants.TaskStatusCompleted {
		verr := response.NewValidationError()
		verr.Set("progress", "task already completed")
		response.HandleError(c, verr)
		return
	}

	status := constants.TaskStatusPending
	switch {
	case progress == 100:
		status = constants.TaskStatusCompleted
	case progress > 0:
		status = constants.TaskStatusInProgress
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&task).Updates(map[string]interface{}{
			"progress": progress,
			"status":   status,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.TaskAudit{
			TaskID:   task.ID,
			Action:   models.AuditProgressUpdated,
			ActorID:  actor.ID,
			Comments: fmt.Sprintf("progress set to %d", progress),
		}).Error
	})
	if err != nil {
		tc.Log.WithError(err).Errorf("%s: failed to update task %d", op, task.ID)
		response.HandleError(c, err)
		return
	}

	task.DeriveStatus(time.Now())
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes the task without cascading: tasks forwarded from it keep
// their origin id for historical traceability.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	const op = "controllers.Task.DeleteTask"

	actor, ok := tc.actor(c)
	if !ok {
		return
	}

	task, ok := tc.loadTask(c)
	if !ok {
		return
	}

	// The creator owns deletion; for a forwarded task that is its forwarder.
	if task.CreatedByID != actor.ID {
		response.HandleError(c, &response.NotAuthorizedError{Reason: "only the creator may delete a task"})
		return
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Task{}, task.ID).Error; err != nil {
			return err
		}
		return tx.Create(&models.TaskAudit{
			TaskID:  task.ID,
			Action:  models.AuditTaskDeleted,
			ActorID: actor.ID,
		}).Error
	})
	if err != nil {
		tc.Log.WithError(err).Errorf("%s: failed to delete task %d", op, task.ID)
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Deleted"})
}

func (tc *TaskController) GetTasks(c *gin.Context) {
	const op = "controllers.Task.GetTasks"

	actor, ok := tc.actor(c)
	if !ok {
		return
	}

	query := tc.DB.Model(&models.Task{})
	switch role := c.DefaultQuery("role", "assigned"); role {
	case "assigned":
		query = query.Where("assigned_to_id = ?", actor.ID)
	case "created":
		query = query.Where("created_by_id = ?", actor.ID)
	case "forwarded":
		query = query.Where("created_by_id = ? AND origin_task_id IS NOT NULL", actor.ID)
	default:
		verr := response.NewValidationError()
		verr.Set("role", "must be one of: assigned, created, forwarded")
		response.HandleError(c, verr)
		return
	}

	// Listing is a display path: degrade to an empty set on store failure.
	tasks := []models.Task{}
	if err := query.Find(&tasks).Error; err != nil {
		tc.Log.WithError(err).Errorf("%s: listing failed", op)
		tasks = []models.Task{}
	}

	now := time.Now()
	for i := range tasks {
		tasks[i].DeriveStatus(now)
	}

	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	task, ok := tc.loadTask(c)
	if !ok {
		return
	}

	task.DeriveStatus(time.Now())
	c.JSON(http.StatusOK, task)
}

// GetTaskChain reports the forwarding chain from the task back to its root,
// task id first.
func (tc *TaskController) GetTaskChain(c *gin.Context) {
	const op = "controllers.Task.GetTaskChain"

	task, ok := tc.loadTask(c)
	if !ok {
		return
	}

	chain, err := utils.TaskChainIDs(task, tc.DB)
	if err != nil {
		tc.Log.WithError(err).Errorf("%s: chain walk failed for task %d", op, task.ID)
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "chain": chain})
}
