package sanitize

import (
	"strings"

	"github.com/MGIFOGOIOGPY/payment-hams/models"
)

// Sanitize returns a copy of v with markup-significant characters escaped
// in every string, recursing through objects and arrays. Keys, member
// order and array lengths are preserved; other kinds pass through
// unchanged. Applying it twice yields the same result as applying it once.
func Sanitize(v models.Value) models.Value {
	switch v.Kind {
	case models.KindString:
		v.Str = escapeMarkup(v.Str)
		return v
	case models.KindArray:
		out := make([]models.Value, len(v.Arr))
		for i, elem := range v.Arr {
			out[i] = Sanitize(elem)
		}
		v.Arr = out
		return v
	case models.KindObject:
		out := make([]models.Member, len(v.Obj))
		for i, m := range v.Obj {
			out[i] = models.Member{Key: m.Key, Value: Sanitize(m.Value)}
		}
		v.Obj = out
		return v
	default:
		return v
	}
}

func escapeMarkup(s string) string {
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
