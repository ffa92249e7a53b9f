package consumer

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MGIFOGOIOGPY/payment-hams/models"
)

// Worker consumes intake events from the audit queue.
type Worker struct {
	workerID int
	channel  *amqp.Channel
	queue    string
	tracker  *IntakeTracker
}

func NewWorker(workerID int, conn *amqp.Connection, queue string, tracker *IntakeTracker) (*Worker, error) {
	// Each worker gets its own channel.
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel for worker %d: %w", workerID, err)
	}

	// One message at a time per worker.
	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to set QoS for worker %d: %w", workerID, err)
	}

	return &Worker{
		workerID: workerID,
		channel:  ch,
		queue:    queue,
		tracker:  tracker,
	}, nil
}

// Start begins consuming messages until the channel closes.
func (w *Worker) Start(wg *sync.WaitGroup) {
	defer wg.Done()
	defer w.channel.Close()

	msgs, err := w.channel.Consume(
		w.queue,                              // queue
		fmt.Sprintf("worker-%d", w.workerID), // consumer tag
		false,                                // auto-ack
		false,                                // exclusive
		false,                                // no-local
		false,                                // no-wait
		nil,                                  // args
	)
	if err != nil {
		log.Printf("Worker %d failed to register consumer: %v", w.workerID, err)
		return
	}

	log.Printf("Worker %d started and waiting for intake events", w.workerID)

	for msg := range msgs {
		w.processMessage(msg)
	}

	log.Printf("Worker %d stopped", w.workerID)
}

func (w *Worker) processMessage(msg amqp.Delivery) {
	event, err := DecodeEvent(msg.Body)
	if err != nil {
		log.Printf("Worker %d: Failed to decode intake event: %v", w.workerID, err)
		// Malformed payload, reject without requeue.
		msg.Nack(false, false)
		return
	}

	w.tracker.RecordIntake(event)

	if err := msg.Ack(false); err != nil {
		log.Printf("Worker %d: Failed to acknowledge message: %v", w.workerID, err)
	}
}

// DecodeEvent parses a queue message body into an intake event.
func DecodeEvent(body []byte) (models.IntakeEvent, error) {
	var event models.IntakeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return models.IntakeEvent{}, fmt.Errorf("failed to unmarshal intake event: %w", err)
	}
	return event, nil
}

// Stop closes the worker's channel.
func (w *Worker) Stop() {
	if w.channel != nil {
		w.channel.Close()
	}
}
