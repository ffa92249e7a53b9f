package sanitize

import (
	"strings"

	"github.com/MGIFOGOIOGPY/payment-hams/models"
)

// Fixed mask tokens for the local audit log.
const (
	maskFull     = "****"
	maskCVV      = "***"
	maskExpiry   = "**/**"
	maskPassword = "********"
)

// Redact returns a privacy-safe copy of v for local logging. Object keys
// are matched case-insensitively by substring; matching members get a
// fixed or last-4 mask, everything else recurses. This is a best-effort
// measure for log records only, not a security boundary.
func Redact(v models.Value) models.Value {
	switch v.Kind {
	case models.KindArray:
		out := make([]models.Value, len(v.Arr))
		for i, elem := range v.Arr {
			out[i] = Redact(elem)
		}
		v.Arr = out
		return v
	case models.KindObject:
		out := make([]models.Member, len(v.Obj))
		for i, m := range v.Obj {
			if masked, ok := maskForKey(m.Key, m.Value); ok {
				out[i] = models.Member{Key: m.Key, Value: masked}
			} else {
				out[i] = models.Member{Key: m.Key, Value: Redact(m.Value)}
			}
		}
		v.Obj = out
		return v
	default:
		return v
	}
}

func maskForKey(key string, val models.Value) (models.Value, bool) {
	lower := strings.ToLower(key)
	switch {
	case strings.Contains(lower, "card") || strings.Contains(lower, "number"):
		return models.StringValue(maskTail(val.Display())), true
	case strings.Contains(lower, "cvv") || strings.Contains(lower, "cvc"):
		return models.StringValue(maskCVV), true
	case strings.Contains(lower, "exp"):
		return models.StringValue(maskExpiry), true
	case strings.Contains(lower, "pass"):
		return models.StringValue(maskPassword), true
	}
	return models.Value{}, false
}

// maskTail keeps only the last 4 characters of a value.
func maskTail(s string) string {
	if len(s) <= 4 {
		return maskFull
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
