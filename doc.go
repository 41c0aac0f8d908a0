// Package moneyfmt provides immutable monetary value types together with a
// locale-aware, bidirectional text codec for printing and parsing them.
//
// Formatters are assembled from printer/parser components with a
// FormatterBuilder and are immutable once built, so a single formatter can
// be shared freely across goroutines:
//
//	f := moneyfmt.NewFormatterBuilder().
//		AppendAmount().
//		AppendLiteral(" ").
//		AppendCurrencyCode().
//		ToFormatterWithLocale("en-GB")
//
//	out, err := f.Print(moneyfmt.MustMoney("GBP", "1234.56")) // "1,234.56 GBP"
//	m, err := f.ParseMoney("1,234.56 GBP")
//
// Numeric presentation (digits, signs, decimal point, grouping) is described
// by AmountStyle. Style fields left unresolved are filled in from per-locale
// CLDR-derived data at print/parse time.
package moneyfmt
