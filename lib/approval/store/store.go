package approvalstore

import (
	"resto-hr-backend/models"
	dbmodels "resto-hr-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AdminApproval) (id string, err error)
	GetByID(id string) (rec *dbmodels.AdminApproval, err error)
	Update(id string, updMap map[string]interface{}) error
	List(status string) (list []dbmodels.AdminApproval, err error)
	PendingCount() (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AdminApproval) (id string, err error) {
	err = i.db.
		Omit("Manager").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.AdminApproval, error) {
	rec := dbmodels.AdminApproval{}
	err := i.db.
		Where("id = ?", id).
		Preload("Manager").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.AdminApproval{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(status string) (list []dbmodels.AdminApproval, err error) {
	list = []dbmodels.AdminApproval{}
	tx := i.db.
		Order("created_at DESC").
		Preload("Manager")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) PendingCount() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.AdminApproval{}).
		Where("status = ?", models.ApprovalStatusPending).
		Count(&count).Error
	return count, err
}
