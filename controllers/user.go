package controllers

import (
	"net/http"

	"backoffice/constants"
	"backoffice/models"
	"backoffice/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

// GetUsers lists actors, optionally narrowed to one role so a creator can
// resolve assignees in its downstream tier.
func (uc *UserController) GetUsers(c *gin.Context) {
	query := uc.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		if !constants.IsValidRole(role) {
			verr := response.NewValidationError()
			verr.Set("role", "unknown role")
			response.HandleError(c, verr)
			return
		}
		query = query.Where("role = ?", role)
	}

	users := []models.User{}
	query.Find(&users)
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	var user models.User

	if err := uc.DB.First(&user, id).Error; err != nil {
		response.HandleError(c, &response.NotFoundError{Resource: "user"})
		return
	}

	var input struct {
		Role      string `json:"role"`
		ManagerID *uint  `json:"manager_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		verr := response.NewValidationError()
		verr.Set("body", "invalid request body")
		response.HandleError(c, verr)
		return
	}

	// A user cannot be their own manager.
	if input.ManagerID != nil && *input.ManagerID == user.ID {
		verr := response.NewValidationError()
		verr.Set("manager_id", "user cannot be their own manager")
		response.HandleError(c, verr)
		return
	}

	if input.Role != "" {
		if !constants.IsValidRole(input.Role) {
			verr := response.NewValidationError()
			verr.Set("role", "unknown role")
			response.HandleError(c, verr)
			return
		}
		user.Role = input.Role
	}
	user.ManagerID = input.ManagerID

	uc.DB.Save(&user)

	c.JSON(http.StatusOK, user)
}
