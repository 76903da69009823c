package routes

import (
	"backoffice/config"
	"backoffice/constants"
	"backoffice/controllers"
	"backoffice/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, log *logrus.Logger, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	authController := controllers.AuthController{DB: db, Log: log}
	userController := controllers.UserController{DB: db}
	taskController := controllers.TaskController{DB: db, Log: log}
	holidayController := controllers.HolidayController{DB: db, Log: log, DefaultCreator: cfg.HolidayDefaultCreator}

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)

	authed := r.Group("/", middleware.AuthMiddleware())

	authed.GET("/users", userController.GetUsers)
	authed.PUT("/users/:id", middleware.RoleMiddleware(constants.RoleCEO, constants.RoleHR), userController.UpdateUser)

	authed.POST("/tasks", taskController.CreateTask)
	authed.GET("/tasks", taskController.GetTasks)
	authed.GET("/tasks/:id", taskController.GetTask)
	authed.GET("/tasks/:id/chain", taskController.GetTaskChain)
	authed.POST("/tasks/:id/forward", taskController.ForwardTask)
	authed.PATCH("/tasks/:id/progress", taskController.UpdateProgress)
	authed.DELETE("/tasks/:id", taskController.DeleteTask)

	authed.POST("/holidays", holidayController.CreateEntry)
	authed.GET("/holidays", holidayController.FetchEntries)
	authed.GET("/holidays/check/:date", holidayController.CheckDate)
	authed.PUT("/holidays/:id", holidayController.UpdateEntry)
	authed.DELETE("/holidays/:id", holidayController.DeleteEntry)

	return r
}
