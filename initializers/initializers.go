package initializers

import (
	"context"
	"resto-hr-backend/config"
	"resto-hr-backend/fiberlog"
	approvalhandler "resto-hr-backend/lib/approval"
	approvalreminder "resto-hr-backend/lib/approval/reminder"
	authhandler "resto-hr-backend/lib/auth"
	contracthandler "resto-hr-backend/lib/contract"
	employeehandler "resto-hr-backend/lib/employee"
	xlsexport "resto-hr-backend/lib/export/xls"
	leavehandler "resto-hr-backend/lib/leave"
	notificationhandler "resto-hr-backend/lib/notification"
	schedulehandler "resto-hr-backend/lib/schedule"
	proposalhandler "resto-hr-backend/lib/schedule/proposal"
	timeclockhandler "resto-hr-backend/lib/timeclock"
	connectionhub "resto-hr-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	notificationhandler.NewHandler()
	authhandler.NewHandler()
	employeehandler.NewHandler()
	schedulehandler.NewHandler()
	proposalhandler.NewHandler()
	approvalhandler.NewHandler()
	leavehandler.NewHandler()
	contracthandler.NewHandler()
	timeclockhandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// reminds admins about approvals stuck in pending
	approvalreminder.StartWorker(ctx)
}
