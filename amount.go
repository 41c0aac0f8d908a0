package moneyfmt

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// amountComponent prints and parses the numeric amount under its style.
// Unresolved style fields are filled from the context locale per call.
type amountComponent struct {
	style AmountStyle
}

func (a amountComponent) Print(pctx *PrintContext, w io.Writer, money Money) error {
	style := a.style.Localize(pctx.Locale())

	value := money.Amount()
	if exp := pctx.Exponent(); exp != 0 {
		value = value.Shift(int32(exp))
	}

	var out strings.Builder
	if value.Sign() < 0 {
		if !style.absValue {
			out.WriteRune(style.negativeChar)
		}
		value = value.Abs()
	}

	// Decimal.String renders plain digits, never exponent notation.
	digits := []rune(value.String())
	if style.zeroChar != '0' {
		for i, r := range digits {
			if r >= '0' && r <= '9' {
				digits[i] = style.zeroChar + (r - '0')
			}
		}
	}

	point := -1
	for i, r := range digits {
		if r == '.' {
			point = i
			break
		}
	}

	intPart := digits
	var fracPart []rune
	if point >= 0 {
		intPart = digits[:point]
		fracPart = digits[point+1:]
	}

	if style.grouping == GroupingNone {
		out.WriteString(string(intPart))
		if point >= 0 {
			out.WriteRune(style.decimalChar)
			out.WriteString(string(fracPart))
		} else if style.forceDecimalPoint {
			out.WriteRune(style.decimalChar)
		}
		_, err := io.WriteString(w, out.String())
		return err
	}

	primary := style.groupingSize
	extended := style.extendedGroupingSize
	if extended == 0 {
		extended = primary
	}

	for i, r := range intPart {
		if i > 0 && isGroupingPoint(len(intPart)-i, primary, extended) {
			out.WriteRune(style.groupingChar)
		}
		out.WriteRune(r)
	}
	if point >= 0 {
		out.WriteRune(style.decimalChar)
		if style.grouping == GroupingFull {
			for i, r := range fracPart {
				if i > 0 && isGroupingPoint(i, primary, extended) {
					out.WriteRune(style.groupingChar)
				}
				out.WriteRune(r)
			}
		} else {
			out.WriteString(string(fracPart))
		}
	} else if style.forceDecimalPoint {
		out.WriteRune(style.decimalChar)
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// isGroupingPoint reports whether a boundary at the given digit distance
// from the decimal point takes a separator. Beyond the first boundary the
// extended size takes over, which yields 3-then-2 Indian-style grouping.
func isGroupingPoint(remaining, primary, extended int) bool {
	if remaining >= primary+extended {
		return (remaining-primary)%extended == 0
	}
	return remaining%primary == 0
}

// Parse consumes signs, digits, one decimal point and single grouping
// separators strictly left to right. A second decimal point or a second
// consecutive grouping separator terminates consumption without erroring,
// leaving the remainder for the next component. Grouping separators are
// dropped rather than copied; if consumption ends right after one, the
// cursor is rewound so the separator stays available to whatever parses
// next. Only a failed numeric conversion marks the context errored, at the
// position where consumption began.
func (a amountComponent) Parse(ctx *ParseContext) {
	style := a.style.Localize(ctx.Locale())

	text := ctx.Text()
	start := ctx.Index()
	pos := start

	var buf strings.Builder
	seenDecimal := false
	lastWasGroup := false
	stoppedAtGroup := false

scan:
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		switch {
		case r >= style.zeroChar && r <= style.zeroChar+9:
			buf.WriteByte(byte('0' + (r - style.zeroChar)))
			lastWasGroup = false
		case r == style.decimalChar && !seenDecimal:
			buf.WriteByte('.')
			seenDecimal = true
			lastWasGroup = false
		case r == style.groupingChar && !lastWasGroup:
			lastWasGroup = true
		case r == style.groupingChar:
			stoppedAtGroup = true
			break scan
		case r == style.negativeChar:
			buf.WriteByte('-')
			lastWasGroup = false
		case r == style.positiveChar:
			buf.WriteByte('+')
			lastWasGroup = false
		default:
			break scan
		}
		pos += size
	}

	if lastWasGroup && !stoppedAtGroup {
		pos -= utf8.RuneLen(style.groupingChar)
	}

	amount, err := decimal.NewFromString(buf.String())
	if err != nil {
		ctx.SetErrorAt(start)
		return
	}
	ctx.SetAmount(amount)
	ctx.SetIndex(pos)
}

func (a amountComponent) String() string { return "${amount}" }
