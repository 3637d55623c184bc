package apiv1

import (
	"fmt"
	"resto-hr-backend/controllers"
	"resto-hr-backend/db"
	contracthandler "resto-hr-backend/lib/contract"
	employeestore "resto-hr-backend/lib/employee/store"
	xlsexport "resto-hr-backend/lib/export/xls"
	schedulehandler "resto-hr-backend/lib/schedule"
	timeclockhandler "resto-hr-backend/lib/timeclock"
	"resto-hr-backend/lib/utils/helpers"
	"resto-hr-backend/middleware"
	apimodels "resto-hr-backend/models/api"
	employeeapimodels "resto-hr-backend/models/api/employee"
	scheduleapimodels "resto-hr-backend/models/api/schedule"
	"time"

	"github.com/gofiber/fiber/v2"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.ManagerRequired())
		router.Get("schedule/xlsx", controller.exportWeekSchedule)
		router.Get("payroll/xlsx", middleware.AdminRequired(), controller.exportPayroll)
		router.Get("contract/:id/pdf", middleware.AdminRequired(), controller.downloadContractPdf)
	})
}

// @Summary Week schedule export
// @Tags Export
// @Description Exports the approved schedule of one week as xlsx
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   week_start		query	string	false	"week start date (YYYY-MM-DD), defaults to current week"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/schedule/xlsx [get]
func (c *exportApiController) exportWeekSchedule(ctx *fiber.Ctx) error {
	weekStart := helpers.WeekStart(time.Now())
	if raw := ctx.Query("week_start"); raw != "" {
		parsed, err := time.Parse(scheduleapimodels.DateFormat, raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid week_start, expected YYYY-MM-DD"))
		}
		weekStart = helpers.WeekStart(parsed)
	}
	list, err := schedulehandler.Instance.ListWeek(weekStart)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	buf, err := xlsexport.Instance.ExportWeekSchedule(weekStart, list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	fileName := fmt.Sprintf("planning_%s.xlsx", weekStart.Format(scheduleapimodels.DateFormat))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Payroll export
// @Tags Export
// @Description Exports payroll fields and clocked hours of one month as xlsx
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   month			query	string	false	"month (YYYY-MM), defaults to current month"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/payroll/xlsx [get]
func (c *exportApiController) exportPayroll(ctx *fiber.Ctx) error {
	now := time.Now()
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if raw := ctx.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid month, expected YYYY-MM"))
		}
		month = parsed
	}
	monthEnd := month.AddDate(0, 1, -1)
	worked, err := timeclockhandler.Instance.WorkedHours(month, monthEnd)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	employees, err := employeestore.NewInstance(db.DB).List(employeeapimodels.EmployeeFilter{OnlyActive: true})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	buf, err := xlsexport.Instance.ExportPayroll(month, employees, worked)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "")
	}
	fileName := fmt.Sprintf("paie_%s.xlsx", month.Format("2006-01"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Contract PDF download
// @Tags Export
// @Description Downloads the generated contract document
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"contract id"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/contract/{id}/pdf [get]
func (c *exportApiController) downloadContractPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, hMsg, err := contracthandler.Instance.GetPdf(ctx.UserContext(), id)
	if err != nil || hMsg != "" {
		return c.SendError(ctx, c.GetLogger(ctx), err, hMsg)
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="contrat_%s.pdf"`, id))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}
