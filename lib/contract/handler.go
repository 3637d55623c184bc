package contracthandler

import (
	"context"
	"fmt"
	"resto-hr-backend/db"
	contractstore "resto-hr-backend/lib/contract/store"
	employeestore "resto-hr-backend/lib/employee/store"
	pdfexport "resto-hr-backend/lib/export/pdf"
	filestorage "resto-hr-backend/lib/file-storage"
	"resto-hr-backend/models"
	contractapimodels "resto-hr-backend/models/api/contract"
	dbmodels "resto-hr-backend/models/db"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data contractapimodels.ContractData) (view *contractapimodels.ContractView, hMsg string, err error)
	Get(id string) (view *contractapimodels.ContractView, err error)
	List(employeeID string) ([]contractapimodels.ContractView, error)
	Terminate(id string) (hMsg string, err error)
	GeneratePdf(ctx context.Context, id string) (hMsg string, err error)
	GetPdf(ctx context.Context, id string) (pdfFile []byte, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         contractstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         contractstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) getLogger(id string) *log.Entry {
	logger := log.
		WithField("contract_id", id)
	return logger
}

func (i impl) Create(data contractapimodels.ContractData) (*contractapimodels.ContractView, string, error) {
	if err := data.Validate(); err != nil {
		return nil, err.Error(), nil
	}
	employee, err := i.employeeStore.GetByID(data.EmployeeID)
	if err != nil {
		log.WithError(err).Error("employee fetch failed")
		return nil, "", err
	}
	if employee == nil {
		return nil, "employee not found", nil
	}
	start, end := data.GetDates()
	rec := dbmodels.Contract{
		EmployeeID:    data.EmployeeID,
		Number:        newContractNumber(start),
		ContractType:  models.ContractType(data.ContractType),
		Status:        models.ContractStatusActive,
		StartDate:     start,
		EndDate:       end,
		JobPosition:   data.JobPosition,
		MonthlySalary: data.MonthlySalary,
		HourlyRate:    data.HourlyRate,
		WeeklyHours:   data.WeeklyHours,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("contract create failed")
		return nil, "", err
	}
	rec.ID = id
	rec.Employee = employee
	i.getLogger(id).Info("contract created")
	view := contractapimodels.ContractConvert(rec)
	return &view, "", nil
}

func (i impl) Get(id string) (*contractapimodels.ContractView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := contractapimodels.ContractConvert(*rec)
	return &view, nil
}

func (i impl) List(employeeID string) ([]contractapimodels.ContractView, error) {
	list, err := i.store.List(employeeID)
	if err != nil {
		return nil, err
	}
	result := make([]contractapimodels.ContractView, 0, len(list))
	for _, rec := range list {
		result = append(result, contractapimodels.ContractConvert(rec))
	}
	return result, nil
}

func (i impl) Terminate(id string) (hMsg string, err error) {
	logger := i.getLogger(id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("contract fetch failed")
		return "", err
	}
	if rec == nil {
		return "contract not found", nil
	}
	if rec.Status == models.ContractStatusTerminated {
		return "contract is already terminated", nil
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": models.ContractStatusTerminated,
	})
	if err != nil {
		logger.WithError(err).Error("contract terminate failed")
		return "", err
	}
	logger.Info("contract terminated")
	return "", nil
}

// GeneratePdf renders the contract document and stores it in the object
// storage. The stored key is remembered on the contract row, regeneration
// overwrites the same object.
func (i impl) GeneratePdf(ctx context.Context, id string) (hMsg string, err error) {
	logger := i.getLogger(id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("contract fetch failed")
		return "", err
	}
	if rec == nil {
		return "contract not found", nil
	}
	pdfFile, err := pdfexport.GenerateContract(*rec)
	if err != nil {
		logger.WithError(err).Error("contract pdf generation failed")
		return "", err
	}
	key := fmt.Sprintf("contracts/%s.pdf", rec.ID)
	if err = filestorage.Instance.Upload(ctx, key, pdfFile, "application/pdf"); err != nil {
		logger.WithError(err).Error("contract pdf upload failed")
		return "", err
	}
	if rec.PdfFileKey != key {
		if err = i.store.Update(id, map[string]interface{}{"pdf_file_key": key}); err != nil {
			logger.WithError(err).Error("contract pdf key update failed")
			return "", err
		}
	}
	logger.Info("contract pdf generated")
	return "", nil
}

func (i impl) GetPdf(ctx context.Context, id string) (pdfFile []byte, hMsg string, err error) {
	logger := i.getLogger(id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("contract fetch failed")
		return nil, "", err
	}
	if rec == nil {
		return nil, "contract not found", nil
	}
	if rec.PdfFileKey == "" {
		return nil, "contract pdf is not generated", nil
	}
	pdfFile, err = filestorage.Instance.Get(ctx, rec.PdfFileKey)
	if err != nil {
		logger.WithError(err).Error("contract pdf fetch failed")
		return nil, "", err
	}
	return pdfFile, "", nil
}

func newContractNumber(start time.Time) string {
	return fmt.Sprintf("C-%s-%d", start.Format("200601"), time.Now().UnixMilli()%100000)
}
