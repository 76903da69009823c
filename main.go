package main

import (
	"backoffice/config"
	"backoffice/models"
	"backoffice/routes"
	"backoffice/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	utils.SetJWTSecret(cfg.JWTSecret)

	db := config.ConnectDB(cfg)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.TaskAudit{},
		&models.HolidayEntry{},
		&models.HolidayDepartment{},
	); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	r := routes.SetupRouter(db, log, cfg)

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
