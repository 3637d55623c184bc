package db

import (
	dbmodels "resto-hr-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "migration failed for Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkSchedule{}); err != nil {
		return errors.Wrap(err, "migration failed for WorkSchedule")
	}
	if err := DB.AutoMigrate(&dbmodels.ManagerWorkSchedule{}); err != nil {
		return errors.Wrap(err, "migration failed for ManagerWorkSchedule")
	}
	if err := DB.AutoMigrate(&dbmodels.AdminApproval{}); err != nil {
		return errors.Wrap(err, "migration failed for AdminApproval")
	}
	if err := DB.AutoMigrate(&dbmodels.LeaveRequest{}); err != nil {
		return errors.Wrap(err, "migration failed for LeaveRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.Contract{}); err != nil {
		return errors.Wrap(err, "migration failed for Contract")
	}
	if err := DB.AutoMigrate(&dbmodels.TimeClockEntry{}); err != nil {
		return errors.Wrap(err, "migration failed for TimeClockEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "migration failed for Notification")
	}
	log.Info("migrations finished")
	return nil
}
