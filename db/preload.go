package db

import (
	"resto-hr-backend/models"
	dbmodels "resto-hr-backend/models/db"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// InitPreload seeds the default admin account on an empty database.
func InitPreload() {
	var count int64
	err := DB.Model(&dbmodels.Employee{}).Where("role = ?", models.AdminRole).Count(&count).Error
	if err != nil {
		log.WithError(err).Error("admin account check failed")
		return
	}
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("admin password hash failed")
		return
	}
	admin := dbmodels.Employee{
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Resto",
		Email:     "admin@resto-hr.local",
		Role:      models.AdminRole,
		Status:    models.EmployeeWorkingStatus,
		IsActive:  true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.WithError(err).Error("admin account seed failed")
		return
	}
	log.Info("default admin account created")
}
