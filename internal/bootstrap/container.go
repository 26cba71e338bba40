package bootstrap

import (
	"log"
	"time"

	"dp-ai-be/internal/config"
	"dp-ai-be/internal/constant"
	"dp-ai-be/internal/controller"
	"dp-ai-be/internal/pkg/logger"
	"dp-ai-be/internal/pkg/mailer"
	"dp-ai-be/internal/repository/memory"
	"dp-ai-be/internal/service"
	"dp-ai-be/pkg/llm/factory"

	pktNats "dp-ai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	AuthController controller.IAuthController
	ChatController controller.IChatController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Optional NATS publisher for auth events; the server runs fine without it.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. Completion provider
	llmProvider, err := factory.NewProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.GroqBaseURL,
		cfg.Ai.GroqAPIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. In-memory stores
	sessionRepo := memory.NewSessionRepository(constant.MaxHistory)
	otpRepo := memory.NewOTPRepository(time.Duration(cfg.Chat.OTPTTLMinutes) * time.Minute)

	// 5. Services
	transcriptLogger := logger.NewIsolatedLogger(cfg.App.TranscriptLogPath)

	authService := service.NewAuthService(otpRepo, sessionRepo, emailService, natsPub, sysLogger)
	chatService := service.NewChatService(
		sessionRepo,
		llmProvider,
		pubSub,
		constant.TranscriptTopic,
		cfg.Ai.Temperature,
		sysLogger,
	)
	consumerService := service.NewConsumerService(pubSub, constant.TranscriptTopic, transcriptLogger)

	// 6. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService),
		ChatController: controller.NewChatController(chatService),

		ConsumerService: consumerService,
	}
}
