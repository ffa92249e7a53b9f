package consumer

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/MGIFOGOIOGPY/payment-hams/models"
)

// IntakeTracker counts consumed intake events per payment method in a
// thread-safe manner.
type IntakeTracker struct {
	mu           sync.Mutex
	totalIntakes int64
	delivered    int64
	byMethod     map[models.PaymentMethod]int64
}

func NewIntakeTracker() *IntakeTracker {
	return &IntakeTracker{
		byMethod: make(map[models.PaymentMethod]int64),
	}
}

// RecordIntake records one consumed event.
func (t *IntakeTracker) RecordIntake(event models.IntakeEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalIntakes++
	t.byMethod[event.Method]++
	if event.Delivered {
		t.delivered++
	}

	log.Printf("Recorded intake %s (Total intakes: %d)", event.TransactionID, t.totalIntakes)
}

// PrintSummary prints the final summary when shutting down.
func (t *IntakeTracker) PrintSummary() {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("INTAKE SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total Intakes Processed: %d\n", t.totalIntakes)
	fmt.Printf("Notifications Delivered: %d\n", t.delivered)
	for method, count := range t.byMethod {
		fmt.Printf("  %s: %d\n", method, count)
	}
	fmt.Println(strings.Repeat("=", 60))
}

// GetTotalIntakes returns the total number of events (for testing).
func (t *IntakeTracker) GetTotalIntakes() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalIntakes
}

// GetMethodCount returns the count for one payment method (for testing).
func (t *IntakeTracker) GetMethodCount(method models.PaymentMethod) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.byMethod[method]
}
