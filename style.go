package moneyfmt

import (
	"fmt"
	"sync"
)

// GroupingStyle is the policy for inserting grouping separators into a
// printed amount.
type GroupingStyle int

const (
	// GroupingNone emits digits without separators.
	GroupingNone GroupingStyle = iota
	// GroupingFull groups both the integer and the fractional part.
	GroupingFull
	// GroupingBeforeDecimalPoint groups the integer part only.
	GroupingBeforeDecimalPoint
)

func (g GroupingStyle) String() string {
	switch g {
	case GroupingNone:
		return "None"
	case GroupingFull:
		return "Full"
	case GroupingBeforeDecimalPoint:
		return "BeforeDecimalPoint"
	default:
		return fmt.Sprintf("GroupingStyle(%d)", int(g))
	}
}

func (g GroupingStyle) valid() bool {
	return g == GroupingNone || g == GroupingFull || g == GroupingBeforeDecimalPoint
}

// AmountStyle describes how a numeric amount is rendered: digit glyphs,
// sign and decimal-point characters, and grouping policy. The zero rune and
// a grouping size of zero act as "unresolved" sentinels meaning "take from
// the locale at use time"; Localize fills them in. AmountStyle values are
// immutable: every With* method returns a copy (or the receiver itself when
// the value would not change).
type AmountStyle struct {
	zeroChar     rune
	positiveChar rune
	negativeChar rune
	decimalChar  rune
	groupingChar rune

	grouping             GroupingStyle
	groupingSize         int
	extendedGroupingSize int // -1 unresolved, 0 means same as primary

	forceDecimalPoint bool
	absValue          bool
}

// Prebuilt styles mirroring common configurations. The Localized variants
// leave every character unresolved so the locale decides at use time.
var (
	StyleASCIIGrouping3Comma = AmountStyle{
		zeroChar: '0', positiveChar: '+', negativeChar: '-',
		decimalChar: '.', groupingChar: ',',
		grouping: GroupingFull, groupingSize: 3,
	}
	StyleASCIINoGrouping = AmountStyle{
		zeroChar: '0', positiveChar: '+', negativeChar: '-',
		decimalChar: '.', groupingChar: ',',
		grouping: GroupingNone, groupingSize: 3,
	}
	StyleLocalizedGrouping   = AmountStyle{grouping: GroupingFull, extendedGroupingSize: -1}
	StyleLocalizedNoGrouping = AmountStyle{grouping: GroupingNone, extendedGroupingSize: -1}
)

func (s AmountStyle) ZeroCharacter() rune         { return s.zeroChar }
func (s AmountStyle) PositiveSignCharacter() rune { return s.positiveChar }
func (s AmountStyle) NegativeSignCharacter() rune { return s.negativeChar }
func (s AmountStyle) DecimalPointCharacter() rune { return s.decimalChar }
func (s AmountStyle) GroupingCharacter() rune     { return s.groupingChar }
func (s AmountStyle) Grouping() GroupingStyle     { return s.grouping }
func (s AmountStyle) GroupingSize() int           { return s.groupingSize }
func (s AmountStyle) ExtendedGroupingSize() int   { return s.extendedGroupingSize }
func (s AmountStyle) IsForcedDecimalPoint() bool  { return s.forceDecimalPoint }
func (s AmountStyle) IsAbsoluteValue() bool       { return s.absValue }

// Equal reports structural equality over all fields.
func (s AmountStyle) Equal(o AmountStyle) bool { return s == o }

func (s AmountStyle) String() string {
	return fmt.Sprintf("AmountStyle[%q,%q,%q,%q,%q,%s,%d,%d,%t,%t]",
		s.zeroChar, s.positiveChar, s.negativeChar, s.decimalChar, s.groupingChar,
		s.grouping, s.groupingSize, s.extendedGroupingSize, s.forceDecimalPoint, s.absValue)
}

// WithZeroCharacter sets the character that represents zero. The remaining
// nine digits must follow contiguously, which is how non-Latin numeral
// systems are supported. Passing 0 clears the field back to unresolved.
func (s AmountStyle) WithZeroCharacter(r rune) AmountStyle {
	if s.zeroChar == r {
		return s
	}
	out := s
	out.zeroChar = r
	return out
}

// WithPositiveSignCharacter sets the positive-sign character.
func (s AmountStyle) WithPositiveSignCharacter(r rune) AmountStyle {
	if s.positiveChar == r {
		return s
	}
	out := s
	out.positiveChar = r
	return out
}

// WithNegativeSignCharacter sets the negative-sign character.
func (s AmountStyle) WithNegativeSignCharacter(r rune) AmountStyle {
	if s.negativeChar == r {
		return s
	}
	out := s
	out.negativeChar = r
	return out
}

// WithDecimalPointCharacter sets the decimal-point character.
func (s AmountStyle) WithDecimalPointCharacter(r rune) AmountStyle {
	if s.decimalChar == r {
		return s
	}
	out := s
	out.decimalChar = r
	return out
}

// WithGroupingCharacter sets the grouping-separator character.
func (s AmountStyle) WithGroupingCharacter(r rune) AmountStyle {
	if s.groupingChar == r {
		return s
	}
	out := s
	out.groupingChar = r
	return out
}

// WithGrouping sets the grouping policy, panicking on unknown values.
func (s AmountStyle) WithGrouping(g GroupingStyle) AmountStyle {
	if !g.valid() {
		panic(fmt.Sprintf("moneyfmt: unsupported grouping style %d", int(g)))
	}
	if s.grouping == g {
		return s
	}
	out := s
	out.grouping = g
	return out
}

// WithGroupingSize sets the primary grouping size. Sizes below one are a
// configuration error and panic immediately.
func (s AmountStyle) WithGroupingSize(size int) AmountStyle {
	if size <= 0 {
		panic(fmt.Sprintf("moneyfmt: grouping size must be positive, got %d", size))
	}
	if s.groupingSize == size {
		return s
	}
	out := s
	out.groupingSize = size
	return out
}

// WithExtendedGroupingSize sets the secondary grouping size used beyond the
// boundary nearest the decimal point. Zero means "same as primary", which
// is the common uniform grouping; 2 with a primary size of 3 yields the
// Indian numbering convention. Negative sizes panic immediately.
func (s AmountStyle) WithExtendedGroupingSize(size int) AmountStyle {
	if size < 0 {
		panic(fmt.Sprintf("moneyfmt: extended grouping size must not be negative, got %d", size))
	}
	if s.extendedGroupingSize == size {
		return s
	}
	out := s
	out.extendedGroupingSize = size
	return out
}

// WithForcedDecimalPoint controls whether whole numbers print a trailing
// decimal point.
func (s AmountStyle) WithForcedDecimalPoint(force bool) AmountStyle {
	if s.forceDecimalPoint == force {
		return s
	}
	out := s
	out.forceDecimalPoint = force
	return out
}

// WithAbsoluteValue controls whether negative values print without a sign.
func (s AmountStyle) WithAbsoluteValue(abs bool) AmountStyle {
	if s.absValue == abs {
		return s
	}
	out := s
	out.absValue = abs
	return out
}

func (s AmountStyle) isResolved() bool {
	return s.zeroChar != 0 && s.positiveChar != 0 && s.negativeChar != 0 &&
		s.decimalChar != 0 && s.groupingChar != 0 &&
		s.groupingSize > 0 && s.extendedGroupingSize >= 0
}

// Localize fills every unresolved field from the locale's prototype style.
// Resolved fields are untouched, so localizing an already-resolved style is
// the identity.
func (s AmountStyle) Localize(locale string) AmountStyle {
	if s.isResolved() {
		return s
	}

	proto := StyleForLocale(locale)
	out := s
	if out.zeroChar == 0 {
		out.zeroChar = proto.zeroChar
	}
	if out.positiveChar == 0 {
		out.positiveChar = proto.positiveChar
	}
	if out.negativeChar == 0 {
		out.negativeChar = proto.negativeChar
	}
	if out.decimalChar == 0 {
		out.decimalChar = proto.decimalChar
	}
	if out.groupingChar == 0 {
		out.groupingChar = proto.groupingChar
	}
	if out.groupingSize <= 0 {
		out.groupingSize = proto.groupingSize
	}
	if out.extendedGroupingSize < 0 {
		out.extendedGroupingSize = proto.extendedGroupingSize
	}
	return out
}

// styleCache holds the resolved prototype style per locale. Concurrent
// duplicate computation is harmless since results for one locale are
// value-equal.
var styleCache = struct {
	mu        sync.RWMutex
	byLocale  map[string]AmountStyle
	overrides map[string]LocaleSymbols
}{
	byLocale:  make(map[string]AmountStyle),
	overrides: make(map[string]LocaleSymbols),
}

// StyleForLocale returns the fully resolved prototype style for a locale.
// Results are cached for the lifetime of the process.
func StyleForLocale(locale string) AmountStyle {
	key := normalizeLocale(locale)

	styleCache.mu.RLock()
	if cached, ok := styleCache.byLocale[key]; ok {
		styleCache.mu.RUnlock()
		return cached
	}
	styleCache.mu.RUnlock()

	styleCache.mu.Lock()
	defer styleCache.mu.Unlock()

	if cached, ok := styleCache.byLocale[key]; ok {
		return cached
	}

	style := styleFromSymbols(symbolsForLocaleLocked(key))
	styleCache.byLocale[key] = style
	return style
}

// RegisterLocaleSymbols installs or replaces the numeric symbol data for a
// locale, taking precedence over the generated table. Previously cached
// prototype styles are discarded.
func RegisterLocaleSymbols(locale string, symbols LocaleSymbols) error {
	key := normalizeLocale(locale)
	if key == "" {
		return fmt.Errorf("moneyfmt: empty locale for symbol registration")
	}
	if symbols.ZeroDigit == 0 || symbols.DecimalSep == 0 || symbols.GroupSep == 0 || symbols.MinusSign == 0 {
		return fmt.Errorf("moneyfmt: incomplete symbols for locale %q", key)
	}
	if symbols.GroupSize <= 0 {
		return fmt.Errorf("moneyfmt: invalid group size %d for locale %q", symbols.GroupSize, key)
	}
	if symbols.SecondaryGroupSize < 0 {
		return fmt.Errorf("moneyfmt: invalid secondary group size %d for locale %q", symbols.SecondaryGroupSize, key)
	}

	styleCache.mu.Lock()
	styleCache.overrides[key] = symbols
	styleCache.byLocale = make(map[string]AmountStyle)
	styleCache.mu.Unlock()
	return nil
}

// symbolsForLocaleLocked resolves symbol data with the same fallback order
// the rest of the library uses: exact locale, then the locale parent chain,
// then English. Callers must hold styleCache.mu.
func symbolsForLocaleLocked(locale string) LocaleSymbols {
	lookup := func(key string) (LocaleSymbols, bool) {
		if symbols, ok := styleCache.overrides[key]; ok {
			return symbols, true
		}
		symbols, ok := localeSymbolData[key]
		return symbols, ok
	}

	if symbols, ok := lookup(locale); ok {
		return symbols
	}
	for _, parent := range localeParentChain(locale) {
		if symbols, ok := lookup(parent); ok {
			return symbols
		}
	}
	return localeSymbolData["en"]
}

// styleFromSymbols builds the locale prototype: positive sign fixed to '+',
// grouping policy fixed to Full.
func styleFromSymbols(symbols LocaleSymbols) AmountStyle {
	return AmountStyle{
		zeroChar:             symbols.ZeroDigit,
		positiveChar:         '+',
		negativeChar:         symbols.MinusSign,
		decimalChar:          symbols.DecimalSep,
		groupingChar:         symbols.GroupSep,
		grouping:             GroupingFull,
		groupingSize:         symbols.GroupSize,
		extendedGroupingSize: symbols.SecondaryGroupSize,
	}
}
