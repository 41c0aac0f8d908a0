package moneyfmt

import (
	"testing"

	"github.com/shopspring/decimal"
)

func printAmount(t *testing.T, style AmountStyle, locale, amount string) string {
	t.Helper()
	f := NewFormatterBuilder().AppendAmountStyled(style).ToFormatterWithLocale(locale)
	out, err := f.Print(MustMoney("USD", amount))
	if err != nil {
		t.Fatalf("Print(%s): %v", amount, err)
	}
	return out
}

func TestAmountPrintGrouping(t *testing.T) {
	indian := StyleASCIIGrouping3Comma.WithExtendedGroupingSize(2)

	tests := []struct {
		name   string
		style  AmountStyle
		amount string
		want   string
	}{
		{"uniform groups of three", StyleASCIIGrouping3Comma, "1234567", "1,234,567"},
		{"short integer ungrouped", StyleASCIIGrouping3Comma, "123", "123"},
		{"boundary at four digits", StyleASCIIGrouping3Comma, "1234", "1,234"},
		{"extended size two", indian, "1234567", "12,34,567"},
		{"extended size two short", indian, "1234", "1,234"},
		{"fraction grouped from the point", StyleASCIIGrouping3Comma, "12345.678901", "12,345.678,901"},
		{"short fraction ungrouped", StyleASCIIGrouping3Comma, "1234567.891", "1,234,567.891"},
		{"no grouping", StyleASCIINoGrouping, "1234567.89", "1234567.89"},
		{"integer side only", StyleASCIIGrouping3Comma.WithGrouping(GroupingBeforeDecimalPoint), "1234.56789", "1,234.56789"},
		{"negative sign precedes", StyleASCIIGrouping3Comma, "-1234.5", "-1,234.5"},
		{"absolute value drops sign", StyleASCIIGrouping3Comma.WithAbsoluteValue(true), "-5.5", "5.5"},
		{"forced decimal point", StyleASCIIGrouping3Comma.WithForcedDecimalPoint(true), "5", "5."},
		{"forced point without grouping", StyleASCIINoGrouping.WithForcedDecimalPoint(true), "1234", "1234."},
		{"zero", StyleASCIIGrouping3Comma, "0", "0"},
		{"trailing zeros preserved", StyleASCIIGrouping3Comma, "1000.50", "1,000.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := printAmount(t, tt.style, "en", tt.amount); got != tt.want {
				t.Fatalf("print %s = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestAmountPrintLocalized(t *testing.T) {
	tests := []struct {
		locale string
		amount string
		want   string
	}{
		{"en", "1234567.89", "1,234,567.89"},
		{"de", "1234567.89", "1.234.567,89"},
		{"en-IN", "1234567.89", "12,34,567.89"},
		{"de-CH", "1234567.89", "1’234’567.89"},
	}

	for _, tt := range tests {
		f := NewFormatterBuilder().AppendAmount().ToFormatterWithLocale(tt.locale)
		out, err := f.Print(MustMoney("USD", tt.amount))
		if err != nil {
			t.Fatalf("%s: %v", tt.locale, err)
		}
		if out != tt.want {
			t.Fatalf("%s print = %q, want %q", tt.locale, out, tt.want)
		}
	}
}

func TestAmountPrintDigitRemap(t *testing.T) {
	style := StyleASCIIGrouping3Comma.WithZeroCharacter('٠')
	if got := printAmount(t, style, "en", "120"); got != "١٢٠" {
		t.Fatalf("remapped digits = %q, want %q", got, "١٢٠")
	}
}

func TestAmountPrintExponent(t *testing.T) {
	f := NewFormatterBuilder().AppendAmount().ToFormatterWithLocale("en").WithExponent(2)
	out, err := f.Print(MustMoney("USD", "0.15"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "15" {
		t.Fatalf("exponent print = %q, want %q", out, "15")
	}
}

func parseAmount(t *testing.T, style AmountStyle, locale, text string) *ParseContext {
	t.Helper()
	f := NewFormatterBuilder().AppendAmountStyled(style).ToFormatterWithLocale(locale)
	ctx, err := f.Parse(text, 0)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return ctx
}

func checkAmount(t *testing.T, ctx *ParseContext, want string, wantIndex int) {
	t.Helper()
	if ctx.IsError() {
		t.Fatalf("unexpected parse error at %d in %q", ctx.ErrorIndex(), ctx.Text())
	}
	amount, ok := ctx.Amount()
	if !ok {
		t.Fatalf("no amount parsed from %q", ctx.Text())
	}
	if !amount.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("amount = %s, want %s", amount, want)
	}
	if ctx.Index() != wantIndex {
		t.Fatalf("index = %d, want %d", ctx.Index(), wantIndex)
	}
}

func TestAmountParse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantIndex int
	}{
		{"plain integer", "1234", "1234", 4},
		{"grouped", "1,234,567.89", "1234567.89", 12},
		{"separators accepted at any position", "12,34,567", "1234567", 9},
		{"negative", "-12.5", "-12.5", 5},
		{"positive sign", "+12.5", "12.5", 5},
		{"second decimal point terminates", "12..34", "12", 3},
		{"double separator terminates after first", "12,,34", "12", 3},
		{"trailing separator rewound", "1,234,", "1234", 5},
		{"separator before letter rewound", "12,x", "12", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := parseAmount(t, StyleASCIIGrouping3Comma, "en", tt.text)
			checkAmount(t, ctx, tt.want, tt.wantIndex)
		})
	}
}

func TestAmountParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no digits", "abc"},
		{"lone sign", "-"},
		{"sign after digits", "12-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := parseAmount(t, StyleASCIIGrouping3Comma, "en", tt.text)
			if !ctx.IsError() {
				t.Fatalf("expected error parsing %q", tt.text)
			}
			if ctx.ErrorIndex() != 0 {
				t.Fatalf("error index = %d, want 0", ctx.ErrorIndex())
			}
			if ctx.Index() != 0 {
				t.Fatalf("cursor moved to %d on error", ctx.Index())
			}
		})
	}
}

func TestAmountParseLocalized(t *testing.T) {
	f := NewFormatterBuilder().AppendAmount().ToFormatterWithLocale("de")
	ctx, err := f.Parse("1.234,56", 0)
	if err != nil {
		t.Fatal(err)
	}
	checkAmount(t, ctx, "1234.56", 8)
}

func TestAmountParseRemappedDigits(t *testing.T) {
	style := StyleASCIIGrouping3Comma.WithZeroCharacter('٠')
	ctx := parseAmount(t, style, "en", "١٢٠")
	checkAmount(t, ctx, "120", len("١٢٠"))
}

func TestAmountParseMidString(t *testing.T) {
	f := NewFormatterBuilder().AppendAmountStyled(StyleASCIIGrouping3Comma).ToFormatterWithLocale("en")
	ctx, err := f.Parse("abc12.5", 3)
	if err != nil {
		t.Fatal(err)
	}
	checkAmount(t, ctx, "12.5", 7)
}
