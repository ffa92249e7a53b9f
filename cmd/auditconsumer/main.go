package main

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MGIFOGOIOGPY/payment-hams/config"
	"github.com/MGIFOGOIOGPY/payment-hams/consumer"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.RabbitMQURL == "" {
		log.Fatal("RABBITMQ_URL must be set for the audit consumer")
	}

	log.Printf("Starting Audit Consumer with %d workers", cfg.NumWorkers)
	log.Printf("Connecting to RabbitMQ at %s", cfg.RabbitMQURL)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer conn.Close()

	// Declare the queue so the consumer can start before the service.
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	_, err = ch.QueueDeclare(
		cfg.RabbitMQQueue, // name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}
	ch.Close()

	log.Printf("Connected to queue: %s", cfg.RabbitMQQueue)

	tracker := consumer.NewIntakeTracker()

	var wg sync.WaitGroup
	for i := 0; i < cfg.NumWorkers; i++ {
		worker, err := consumer.NewWorker(i+1, conn, cfg.RabbitMQQueue, tracker)
		if err != nil {
			log.Fatalf("Failed to create worker %d: %v", i+1, err)
		}

		wg.Add(1)
		go worker.Start(&wg)
	}

	log.Printf("All %d workers started successfully", cfg.NumWorkers)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Received shutdown signal, stopping workers...")

	// Closing the connection closes all channels and stops the workers.
	conn.Close()
	wg.Wait()

	tracker.PrintSummary()
	log.Println("Audit Consumer shut down gracefully")
}
