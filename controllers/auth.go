package controllers

import (
	"errors"
	"net/http"

	"backoffice/constants"
	"backoffice/models"
	"backoffice/response"
	"backoffice/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func (ac *AuthController) Register(c *gin.Context) {
	const op = "controllers.Auth.Register"

	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		verr := response.NewValidationError()
		verr.Set("body", "invalid request body")
		response.HandleError(c, verr)
		return
	}

	verr := response.NewValidationError()
	if input.Name == "" {
		verr.Set("name", "missed value")
	}
	if input.Email == "" {
		verr.Set("email", "missed value")
	}
	if input.Password == "" {
		verr.Set("password", "missed value")
	}
	if !constants.IsValidRole(input.Role) {
		verr.Set("role", "must be one of: ceo, hr, team_leader, sales_employee")
	}
	if input.Department != "" && !constants.IsValidDepartment(input.Department) {
		verr.Set("department", "unknown department")
	}
	if verr.HasErrors() {
		response.HandleError(c, verr)
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		ac.Log.WithError(err).Errorf("%s: failed to hash password", op)
		response.HandleError(c, err)
		return
	}

	user := models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   hashed,
		Role:       input.Role,
		Department: input.Department,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			verr.Set("email", "already registered")
			response.HandleError(c, verr)
			return
		}
		ac.Log.WithError(err).Errorf("%s: failed to create user", op)
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var input loginRequest
	var user models.User

	if err := c.ShouldBindJSON(&input); err != nil {
		verr := response.NewValidationError()
		verr.Set("body", "invalid request body")
		response.HandleError(c, verr)
		return
	}

	if err := ac.DB.
		Where("email = ?", input.Email).
		First(&user).Error; err != nil {

		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	if !utils.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		ac.Log.WithError(err).Error("controllers.Auth.Login: failed to sign token")
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}
