package bootstrap

import (
	"context"
	"log"
	"os"

	"medtriage-be/internal/config"
	"medtriage-be/internal/controller"
	"medtriage-be/internal/pkg/logger"
	"medtriage-be/internal/pkg/mailer"
	"medtriage-be/internal/repository/memory"
	"medtriage-be/internal/repository/quota"
	"medtriage-be/internal/repository/unitofwork"
	"medtriage-be/internal/service"
	"medtriage-be/pkg/events"
	"medtriage-be/pkg/llm/factory"
	"medtriage-be/pkg/triage"

	pktNats "medtriage-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const interactionPersistTopic = "triage.interaction.persist"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	PatientController      controller.IPatientController
	TriageController       controller.ITriageController
	HospitalController     controller.IHospitalController
	AppointmentController  controller.IAppointmentController
	NotificationController controller.INotificationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	ReminderService service.IReminderService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis backed daily quota
	quotaRepo, err := quota.NewRepository(cfg.App.RedisURL, cfg.Triage.DailyQuota)
	if err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Quota checks disabled", err)
	}

	// 3. Triage Pipeline
	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	detector := triage.NewEmergencyDetector(cfg.Triage.EmergencyKeywords)
	prompts, err := triage.LoadPrompts(cfg.Triage.PromptDir)
	if err != nil {
		log.Printf("[WARN] Failed to load prompt overrides: %v. Using defaults", err)
		prompts = triage.DefaultPrompts()
	}

	triageLogger := log.New(os.Stdout, "[TRIAGE] ", log.LstdFlags)
	gateway := triage.NewGateway(llmProvider, detector, prompts, triage.GatewayConfig{
		ConfidenceThreshold: cfg.Triage.ConfidenceThreshold,
		Temperature:         cfg.Ai.Temperature,
		MaxTokens:           cfg.Ai.MaxTokens,
	}, triageLogger)
	workflow := triage.NewWorkflow(gateway, triageLogger)

	// Conversation history lives in-process, rebuilt from the DB on miss.
	historyCache := memory.NewHistoryCache(10)

	// 4. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth)
	patientService := service.NewPatientService(uowFactory)
	hospitalService := service.NewHospitalService(uowFactory)

	triageService := service.NewTriageService(
		uowFactory,
		workflow,
		historyCache,
		quotaRepo,
		pubSub,
		interactionPersistTopic,
		natsPub,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		interactionPersistTopic,
		uowFactory,
	)

	appointmentService := service.NewAppointmentService(
		uowFactory,
		emailService,
		natsPub,
		sysLogger,
	)
	reminderService := service.NewReminderService(uowFactory, emailService, sysLogger)

	notifLogger := logger.NewIsolatedLogger("logs/notification.log")
	notifService := service.NewNotificationService(uowFactory, emailService, cfg.Triage.AlertEmail, notifLogger)

	// 5. Event Subscriptions
	if natsSub != nil {
		if err := natsSub.Subscribe(
			"events."+events.TypeCaseEscalated,
			"notification-escalations",
			notifService.HandleCaseEscalated,
		); err != nil {
			log.Printf("[WARN] Failed to subscribe to escalation events: %v", err)
		}
		if err := natsSub.Subscribe(
			"events."+events.TypeAppointmentBooked,
			"notification-appointments",
			notifService.HandleAppointmentBooked,
		); err != nil {
			log.Printf("[WARN] Failed to subscribe to appointment events: %v", err)
		}
	}

	// 6. Background workers (the consumer is started from main)
	reminderService.Start(context.Background())

	// 7. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		PatientController:      controller.NewPatientController(patientService),
		TriageController:       controller.NewTriageController(triageService),
		HospitalController:     controller.NewHospitalController(hospitalService),
		AppointmentController:  controller.NewAppointmentController(appointmentService),
		NotificationController: controller.NewNotificationController(notifService),

		ConsumerService: consumerService,
		ReminderService: reminderService,
	}
}
