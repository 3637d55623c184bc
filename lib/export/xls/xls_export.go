package xlsexport

import (
	"bytes"
	"time"

	scheduleapimodels "resto-hr-backend/models/api/schedule"
	timeclockapimodels "resto-hr-backend/models/api/timeclock"
	dbmodels "resto-hr-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportWeekSchedule(weekStart time.Time, list []scheduleapimodels.WorkScheduleView) (*bytes.Buffer, error)
	ExportPayroll(month time.Time, employees []dbmodels.Employee, worked []timeclockapimodels.WorkedHours) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const dayFormat = "02.01"

// ExportWeekSchedule writes one row per employee with the shift label of each
// day of the week, Monday first.
func (i impl) ExportWeekSchedule(weekStart time.Time, list []scheduleapimodels.WorkScheduleView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	headers := make([]string, 0, 8)
	headers = append(headers, "Employé")
	for offset := 0; offset < 7; offset++ {
		headers = append(headers, weekStart.AddDate(0, 0, offset).Format(dayFormat))
	}

	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, headers)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}

	byEmployee := map[string]map[string]string{}
	names := []string{}
	for _, item := range list {
		dayShifts, ok := byEmployee[item.EmployeeName]
		if !ok {
			dayShifts = map[string]string{}
			byEmployee[item.EmployeeName] = dayShifts
			names = append(names, item.EmployeeName)
		}
		date, err := time.Parse(scheduleapimodels.DateFormat, item.Date)
		if err != nil {
			continue
		}
		dayShifts[date.Format(dayFormat)] = item.ShiftType
	}

	if len(names) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(headers), row+len(names)); err != nil {
			return nil, errors.Wrap(err, "xlsx data style failed")
		}
	}
	for _, name := range names {
		row++
		if err = writeColumn(f, sheet, 1, row, name); err != nil {
			return nil, err
		}
		for offset := 0; offset < 7; offset++ {
			day := weekStart.AddDate(0, 0, offset).Format(dayFormat)
			label, ok := byEmployee[name][day]
			if !ok {
				continue
			}
			if err = writeColumn(f, sheet, offset+2, row, label); err != nil {
				return nil, err
			}
		}
	}
	f.SetSheetName(sheet, "Planning")
	return f.WriteToBuffer()
}

var payrollHeaders = []string{"Employé", "Poste", "Taux horaire", "Salaire mensuel", "Heures contrat", "Heures pointées"}

// ExportPayroll lists the payroll fields of each active employee next to the
// hours aggregated from the clock entries of the month.
func (i impl) ExportPayroll(month time.Time, employees []dbmodels.Employee, worked []timeclockapimodels.WorkedHours) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, payrollHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}

	hoursByEmployee := map[string]float64{}
	for _, item := range worked {
		hoursByEmployee[item.EmployeeID] = item.Hours
	}

	if len(employees) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(payrollHeaders), row+len(employees)); err != nil {
			return nil, errors.Wrap(err, "xlsx data style failed")
		}
	}
	for _, employee := range employees {
		row++
		col := 1
		if err = writeColumn(f, sheet, col, row, employee.GetFullName()); err != nil {
			return nil, err
		}
		col++
		if err = writeColumn(f, sheet, col, row, employee.JobPosition); err != nil {
			return nil, err
		}
		col++
		if err = writeColumn(f, sheet, col, row, employee.HourlyRate); err != nil {
			return nil, err
		}
		col++
		if err = writeColumn(f, sheet, col, row, employee.MonthlySalary); err != nil {
			return nil, err
		}
		col++
		if err = writeColumn(f, sheet, col, row, employee.ContractHours); err != nil {
			return nil, err
		}
		col++
		if err = writeColumn(f, sheet, col, row, hoursByEmployee[employee.ID]); err != nil {
			return nil, err
		}
	}
	f.SetSheetName(sheet, "Paie "+month.Format("01.2006"))
	return f.WriteToBuffer()
}
