package bootstrap

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"parish-be/internal/config"
	"parish-be/internal/controller"
	"parish-be/internal/pkg/logger"
	"parish-be/internal/pkg/mailer"
	"parish-be/internal/repository/unitofwork"
	"parish-be/internal/service"
)

const statusEventsTopic = "request-status-changed"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	RequestController      controller.IRequestController
	CertificateController  controller.ICertificateController
	RecordController       controller.IRecordController
	ScheduleController     controller.IScheduleController
	AnnouncementController controller.IAnnouncementController
	DonationController     controller.IDonationController

	// Background services, run from main
	NotifierService service.INotifierService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	publisherService := service.NewPublisherService(statusEventsTopic, pubSub)
	notifierService := service.NewNotifierService(pubSub, statusEventsTopic, emailService)

	// Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiryHours)
	requestService := service.NewRequestService(uowFactory, publisherService)
	certificateService := service.NewCertificateService(
		uowFactory,
		publisherService,
		cfg.Uploads.MaxFileSizeMB,
		cfg.Uploads.ReminderHours,
	)
	recordService := service.NewRecordService(uowFactory)
	scheduleService := service.NewScheduleService(uowFactory)
	announcementService := service.NewAnnouncementService(uowFactory)
	donationService := service.NewDonationService(uowFactory)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		RequestController:      controller.NewRequestController(requestService, certificateService),
		CertificateController:  controller.NewCertificateController(certificateService),
		RecordController:       controller.NewRecordController(recordService),
		ScheduleController:     controller.NewScheduleController(scheduleService),
		AnnouncementController: controller.NewAnnouncementController(announcementService),
		DonationController:     controller.NewDonationController(donationService),
		NotifierService:        notifierService,
		Logger:                 sysLogger,
	}
}
