package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	dbmodels "resto-hr-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const dateFormat = "02/01/2006"

// GenerateContract renders the employment contract as a one-page PDF.
// Core fonts only, accents go through the cp1252 translator.
func GenerateContract(rec dbmodels.Contract) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateContract panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Contrat de travail"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("N° %s — %s", rec.Number, rec.ContractType.ToHuman())), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeField := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(60, 8, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(value), "", 1, "L", false, 0, "")
	}

	if rec.Employee != nil {
		writeField("Salarié", rec.Employee.GetFullName())
		writeField("Email", rec.Employee.Email)
	}
	writeField("Poste", rec.JobPosition)
	writeField("Type de contrat", rec.ContractType.ToHuman())
	writeField("Date de début", rec.StartDate.Format(dateFormat))
	if rec.EndDate != nil {
		writeField("Date de fin", rec.EndDate.Format(dateFormat))
	}
	writeField("Salaire mensuel", fmt.Sprintf("%.2f EUR", rec.MonthlySalary))
	writeField("Taux horaire", fmt.Sprintf("%.2f EUR", rec.HourlyRate))
	writeField("Heures hebdomadaires", fmt.Sprintf("%d h", rec.WeeklyHours))

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Document généré le %s", time.Now().Format(dateFormat))), "", 1, "L", false, 0, "")

	pdf.Ln(16)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(95, 8, tr("Signature de l'employeur"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr("Signature du salarié"), "", 1, "L", false, 0, "")

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
