package consumer

import (
	"encoding/json"
	"testing"

	"github.com/MGIFOGOIOGPY/payment-hams/models"
)

func TestDecodeEventRoundTrip(t *testing.T) {
	event := models.IntakeEvent{
		TransactionID: "TXN202503141509261234",
		Method:        models.MethodCard,
		Amount:        "50",
		SourceIP:      "203.0.113.7",
		Timestamp:     "2025-03-14 15:09:26",
		Delivered:     true,
		Record: models.ObjectValue(
			models.Member{Key: "cvv", Value: models.StringValue("***")},
		),
	}

	body, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := DecodeEvent(body)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if got.TransactionID != event.TransactionID || got.Method != event.Method || !got.Delivered {
		t.Errorf("decoded event mismatch: %+v", got)
	}
	cvv, _ := got.Record.Get("cvv")
	if cvv.Str != "***" {
		t.Errorf("record cvv = %q", cvv.Str)
	}
}

func TestDecodeEventMalformed(t *testing.T) {
	if _, err := DecodeEvent([]byte("{not json")); err == nil {
		t.Fatal("expected an error for a malformed body")
	}
}

func TestIntakeTrackerCounts(t *testing.T) {
	tracker := NewIntakeTracker()

	tracker.RecordIntake(models.IntakeEvent{TransactionID: "a", Method: models.MethodCard, Delivered: true})
	tracker.RecordIntake(models.IntakeEvent{TransactionID: "b", Method: models.MethodCard})
	tracker.RecordIntake(models.IntakeEvent{TransactionID: "c", Method: models.MethodPaypal, Delivered: true})

	if got := tracker.GetTotalIntakes(); got != 3 {
		t.Errorf("total = %d", got)
	}
	if got := tracker.GetMethodCount(models.MethodCard); got != 2 {
		t.Errorf("card count = %d", got)
	}
	if got := tracker.GetMethodCount(models.MethodPaypal); got != 1 {
		t.Errorf("paypal count = %d", got)
	}
	if got := tracker.GetMethodCount(models.MethodBank); got != 0 {
		t.Errorf("bank count = %d", got)
	}
}
