package models

type ErrorCode string

const (
	CodePaymentDeclined ErrorCode = "PAYMENT_DECLINED"
	CodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
	CodeServerError     ErrorCode = "SERVER_ERROR"
)

// DeclineResponse is the only body shape ever returned to callers.
// Success is always false.
type DeclineResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	ErrorCode     ErrorCode `json:"error_code"`
	TransactionID string    `json:"transaction_id,omitempty"`
	SupportEmail  string    `json:"support_email,omitempty"`
	Timestamp     string    `json:"timestamp,omitempty"`
}
