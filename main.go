package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/MGIFOGOIOGPY/payment-hams/clients"
	"github.com/MGIFOGOIOGPY/payment-hams/config"
	"github.com/MGIFOGOIOGPY/payment-hams/handlers"
	"github.com/MGIFOGOIOGPY/payment-hams/logging"
	"github.com/MGIFOGOIOGPY/payment-hams/rabbitmq"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Starting Payment Intake Service on port %s", cfg.Port)

	// Set Gin mode
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	audit := logging.NewRotatingAuditLogger(
		logging.LevelFromString(cfg.LogLevel),
		cfg.AuditLogPath,
		cfg.AuditLogMaxMB,
	)

	notifier := clients.NewNotifier(cfg.NotifyAPIURL, cfg.NotifyAPIToken, cfg.NotifyChannelID)

	// Intake-event fan-out is optional; without a broker URL the service
	// runs with notification delivery and audit logging only.
	var publisher handlers.EventPublisher
	if cfg.RabbitMQURL != "" {
		pool, err := rabbitmq.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize)
		if err != nil {
			log.Fatalf("Failed to create RabbitMQ channel pool: %v", err)
		}
		defer pool.Close()
		publisher = rabbitmq.NewPublisher(pool, cfg.RabbitMQQueue)
	}

	intakeHandler := handlers.NewIntakeHandler(notifier, publisher, audit, cfg.SupportEmail)

	// Setup router
	router := gin.New()
	router.Use(gin.Logger(), handlers.RequestID(), handlers.Recovery(audit))

	// Routes
	router.POST("/api/process_payment", intakeHandler.ProcessPayment)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	log.Fatal(router.Run(":" + cfg.Port))
}
