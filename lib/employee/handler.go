package employeehandler

import (
	"resto-hr-backend/db"
	employeestore "resto-hr-backend/lib/employee/store"
	"resto-hr-backend/models"
	employeeapimodels "resto-hr-backend/models/api/employee"
	dbmodels "resto-hr-backend/models/db"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeData) (view *employeeapimodels.EmployeeView, hMsg string, err error)
	Get(id string) (view *employeeapimodels.EmployeeView, err error)
	Update(id string, data employeeapimodels.EmployeeData) (hMsg string, err error)
	Deactivate(id string) (hMsg string, err error)
	List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) getLogger(id string) *log.Entry {
	logger := log.
		WithField("employee_id", id)
	return logger
}

func (i impl) Create(data employeeapimodels.EmployeeData) (*employeeapimodels.EmployeeView, string, error) {
	if err := data.Validate(); err != nil {
		return nil, err.Error(), nil
	}
	if data.Password == "" {
		return nil, "password is not specified", nil
	}
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		log.WithError(err).Error("employee email check failed")
		return nil, "", err
	}
	if exist {
		return nil, "email is already in use", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	rec := dbmodels.Employee{
		Password:      string(hash),
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		PhoneNumber:   data.PhoneNumber,
		Role:          models.UserRole(data.Role),
		Status:        models.EmployeeWorkingStatus,
		JobPosition:   data.JobPosition,
		Restaurant:    data.Restaurant,
		HireDate:      data.GetHireDate(),
		HourlyRate:    data.HourlyRate,
		MonthlySalary: data.MonthlySalary,
		ContractHours: data.ContractHours,
		IsActive:      true,
		PushEnabled:   true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("employee create failed")
		return nil, "", err
	}
	rec.ID = id
	view := employeeapimodels.EmployeeConvert(rec)
	i.getLogger(id).Info("employee created")
	return &view, "", nil
}

func (i impl) Get(id string) (*employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := employeeapimodels.EmployeeConvert(*rec)
	return &view, nil
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData) (hMsg string, err error) {
	logger := i.getLogger(id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("employee fetch failed")
		return "", err
	}
	if rec == nil {
		return "employee not found", nil
	}
	if err = data.Validate(); err != nil {
		return err.Error(), nil
	}
	updMap := map[string]interface{}{
		"first_name":     data.FirstName,
		"last_name":      data.LastName,
		"email":          data.Email,
		"phone_number":   data.PhoneNumber,
		"role":           data.Role,
		"job_position":   data.JobPosition,
		"restaurant":     data.Restaurant,
		"hourly_rate":    data.HourlyRate,
		"monthly_salary": data.MonthlySalary,
		"contract_hours": data.ContractHours,
	}
	if hireDate := data.GetHireDate(); hireDate != nil {
		updMap["hire_date"] = hireDate
	}
	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		updMap["password"] = string(hash)
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("employee update failed")
		return "", err
	}
	return "", nil
}

// Deactivate marks the employee dismissed instead of deleting the row, so
// schedules, contracts and clock entries keep a valid owner.
func (i impl) Deactivate(id string) (hMsg string, err error) {
	logger := i.getLogger(id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("employee fetch failed")
		return "", err
	}
	if rec == nil {
		return "employee not found", nil
	}
	err = i.store.Update(id, map[string]interface{}{
		"is_active": false,
		"status":    models.EmployeeDismissedStatus,
	})
	if err != nil {
		logger.WithError(err).Error("employee deactivate failed")
		return "", err
	}
	logger.Info("employee deactivated")
	return "", nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, nil
}
