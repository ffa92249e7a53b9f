package models

import (
	"strings"
	"time"
)

// TimeLayout is the display format used in responses, notifications and
// audit entries.
const TimeLayout = "2006-01-02 15:04:05"

type PaymentMethod string

const (
	MethodCard    PaymentMethod = "card"
	MethodPaypal  PaymentMethod = "paypal"
	MethodCrypto  PaymentMethod = "crypto"
	MethodBank    PaymentMethod = "bank"
	MethodUnknown PaymentMethod = "unknown"
)

// NormalizeMethod maps a caller-supplied method name to the canonical
// enumeration, defaulting to unknown.
func NormalizeMethod(raw string) PaymentMethod {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(raw))) {
	case MethodCard:
		return MethodCard
	case MethodPaypal:
		return MethodPaypal
	case MethodCrypto:
		return MethodCrypto
	case MethodBank:
		return MethodBank
	default:
		return MethodUnknown
	}
}

// IntakeRecord is the normalized form of a submission after sanitization.
// Amount is an opaque display string and is never parsed as currency.
type IntakeRecord struct {
	Amount         string
	Method         PaymentMethod
	UserInfo       Value
	PaymentDetails Value
	SourceIP       string
	Verb           string
	Timestamp      time.Time
}

// IntakeEvent is the redacted event published to the audit queue.
type IntakeEvent struct {
	TransactionID string        `json:"transaction_id"`
	Method        PaymentMethod `json:"method"`
	Amount        string        `json:"amount"`
	SourceIP      string        `json:"source_ip"`
	Timestamp     string        `json:"timestamp"`
	Delivered     bool          `json:"delivered"`
	Record        Value         `json:"record"`
}
