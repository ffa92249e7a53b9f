package cards

import (
	"strconv"
	"strings"
)

type Brand string

const (
	BrandVisa       Brand = "VISA"
	BrandMastercard Brand = "MASTERCARD"
	BrandAmex       Brand = "AMEX"
	BrandDiscover   Brand = "DISCOVER"
	BrandJCB        Brand = "JCB"
	BrandDiners     Brand = "DINERS"
	BrandUnknown    Brand = "UNKNOWN"
)

// minDigits is a minimum-length gate, not a full length/Luhn validation.
const minDigits = 12

type rule struct {
	match func(digits string) bool
	brand Brand
}

// Rules are evaluated in order and the first match wins. The order
// resolves overlapping prefixes and must not be rearranged.
var rules = []rule{
	{func(d string) bool { return d[0] == '4' }, BrandVisa},
	{func(d string) bool { return prefixIs(d, 2, 34) || prefixIs(d, 2, 37) }, BrandAmex},
	{func(d string) bool { return prefixInRange(d, 2, 51, 55) || prefixInRange(d, 4, 2221, 2720) }, BrandMastercard},
	{func(d string) bool { return prefixIs(d, 4, 6011) || prefixInRange(d, 3, 644, 649) || prefixIs(d, 2, 65) }, BrandDiscover},
	{func(d string) bool { return prefixIs(d, 2, 35) }, BrandJCB},
	{func(d string) bool {
		return prefixIs(d, 2, 36) || prefixIs(d, 2, 38) || prefixIs(d, 2, 39) || prefixInRange(d, 3, 300, 305)
	}, BrandDiners},
}

// Classify maps an instrument number to a card brand. Non-digit
// characters are stripped first; anything shorter than 12 digits is
// UNKNOWN.
func Classify(number string) Brand {
	digits := stripNonDigits(number)
	if len(digits) < minDigits {
		return BrandUnknown
	}
	for _, r := range rules {
		if r.match(digits) {
			return r.brand
		}
	}
	return BrandUnknown
}

// MaskNumber renders an instrument number for display, keeping only the
// last 4 digits.
func MaskNumber(number string) string {
	digits := stripNonDigits(number)
	if len(digits) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func prefixIs(digits string, width, want int) bool {
	return prefixInRange(digits, width, want, want)
}

// prefixInRange compares the numeric value of the first width digits
// against [lo, hi].
func prefixInRange(digits string, width, lo, hi int) bool {
	if len(digits) < width {
		return false
	}
	n, err := strconv.Atoi(digits[:width])
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}
