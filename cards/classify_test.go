package cards

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   Brand
	}{
		{"visa", "4111111111111111", BrandVisa},
		{"visa with spaces", "4111 1111 1111 1111", BrandVisa},
		{"visa with dashes", "4000-0000-0000-0002", BrandVisa},
		{"amex 34", "340000000000009", BrandAmex},
		{"amex 37", "370000000000002", BrandAmex},
		{"mastercard 51", "5100000000000008", BrandMastercard},
		{"mastercard 55", "5500000000000004", BrandMastercard},
		{"mastercard 2221 low edge", "2221000000000009", BrandMastercard},
		{"mastercard 2300", "2300000000000003", BrandMastercard},
		{"mastercard 2720 high edge", "2720000000000005", BrandMastercard},
		{"not mastercard 2721", "2721000000000004", BrandUnknown},
		{"discover 6011", "6011000000000004", BrandDiscover},
		{"discover 644", "6440000000000005", BrandDiscover},
		{"discover 649", "6490000000000009", BrandDiscover},
		{"discover 65", "6500000000000002", BrandDiscover},
		{"jcb 35", "3528000000000007", BrandJCB},
		{"diners 36", "360000000000064", BrandDiners},
		{"diners 38", "380000000000006", BrandDiners},
		{"diners 39", "390000000000005", BrandDiners},
		{"diners 300", "300000000000011", BrandDiners},
		{"diners 305", "305000000000006", BrandDiners},
		{"not diners 306", "306000000000005", BrandUnknown},
		{"eleven digits", "41111111111", BrandUnknown},
		{"short after stripping", "4111-1111-11", BrandUnknown},
		{"unknown prefix", "9999999999999999", BrandUnknown},
		{"letters only", "not a card", BrandUnknown},
		{"empty", "", BrandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.number)
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.number, got, tt.want)
			}
			// Classification is deterministic.
			if again := Classify(tt.number); again != got {
				t.Errorf("Classify(%q) changed between calls: %s then %s", tt.number, got, again)
			}
		})
	}
}

func TestClassifyTieBreakOrder(t *testing.T) {
	// 4111... must resolve by the first rule even though later rules are
	// also evaluated on the same digit string.
	if got := Classify("4111111111111111"); got != BrandVisa {
		t.Errorf("expected VISA for 4111 prefix, got %s", got)
	}
	// 6011 belongs to Discover even though 60 is no other brand's range.
	if got := Classify("6011000990139424"); got != BrandDiscover {
		t.Errorf("expected DISCOVER for 6011 prefix, got %s", got)
	}
	// 2300 falls in the [2221,2720] four-digit range.
	if got := Classify("2300000000000003"); got != BrandMastercard {
		t.Errorf("expected MASTERCARD for 2300 prefix, got %s", got)
	}
}

func TestMaskNumber(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"4111111111111111", "************1111"},
		{"4111-1111-1111-1111", "************1111"},
		{"12345", "*2345"},
		{"1234", "****"},
		{"12", "****"},
		{"", "****"},
		{"no digits here", "****"},
	}

	for _, tt := range tests {
		if got := MaskNumber(tt.number); got != tt.want {
			t.Errorf("MaskNumber(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}
