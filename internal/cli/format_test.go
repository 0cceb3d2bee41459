package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"1200", "$1,200.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-500", "-$500.00"},
		{"0.005", "$0.01"},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.in)
		if got := FormatMoney(d, "$"); got != tc.want {
			t.Fatalf("FormatMoney(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	for in, want := range map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		-1234567: "-1,234,567",
	} {
		if got := FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(350); got != "350.0%" {
		t.Fatalf("FormatPercent(350) = %q", got)
	}
}
