package bootstrap

import (
	"context"
	"log"

	"support-helpline-be/internal/config"
	"support-helpline-be/internal/controller"
	"support-helpline-be/internal/pkg/logger"
	"support-helpline-be/internal/pkg/mailer"
	"support-helpline-be/internal/repository/contract"
	"support-helpline-be/internal/repository/implementation"
	"support-helpline-be/internal/repository/memory"
	"support-helpline-be/internal/service"
	"support-helpline-be/pkg/kb"

	pktNats "support-helpline-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SupportController controller.ISupportController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

// NewContainer wires the application. The db may be nil; every backing
// service besides the knowledge base is optional and the chat degrades
// rather than refuses to boot.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)
	if cfg.SMTP.Host == "" {
		emailService = nil
		log.Println("[WARN] SMTP not configured, escalation emails disabled")
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Knowledge Base
	entries, err := kb.Load(cfg.Support.FAQFilePath)
	if err != nil {
		log.Printf("[WARN] Failed to load FAQ file %q: %v. Using built-in entries", cfg.Support.FAQFilePath, err)
		entries = kb.Default()
	}
	log.Printf("[INFO] Knowledge base loaded: %d entries", len(entries))

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)

	var historyRepo contract.IHistoryRepository
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory sessions", err)
		historyRepo = memory.NewHistoryRepository()
	} else {
		historyRepo = implementation.NewHistoryRepository(rdb)
	}

	var ticketRepo contract.ITicketRepository
	if db != nil {
		ticketRepo = implementation.NewTicketRepository(db)
	} else {
		log.Println("[WARN] Database not configured, escalation tickets will not be persisted")
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Support.EscalationTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Support.EscalationTopic,
		natsPub,
		emailService,
		cfg.Support.InboxEmail,
	)

	supportService := service.NewSupportService(
		historyRepo,
		ticketRepo,
		publisherService,
		entries,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		SupportController: controller.NewSupportController(supportService),

		ConsumerService: consumerService,
	}
}
