package moneyfmt

// FormatterBuilder collects printer/parser components in order and
// snapshots them into immutable formatters. A builder is intended for a
// single goroutine; the formatters it produces are freely shareable, and
// the same builder may produce several of them.
type FormatterBuilder struct {
	components []printerParser
}

// NewFormatterBuilder creates an empty builder.
func NewFormatterBuilder() *FormatterBuilder {
	return &FormatterBuilder{}
}

func (b *FormatterBuilder) appendComponent(printer Printer, parser Parser, desc string) *FormatterBuilder {
	b.components = append(b.components, printerParser{printer: printer, parser: parser, desc: desc})
	return b
}

// AppendAmount appends the numeric amount using locale-resolved grouping.
func (b *FormatterBuilder) AppendAmount() *FormatterBuilder {
	return b.AppendAmountStyled(StyleLocalizedGrouping)
}

// AppendAmountStyled appends the numeric amount rendered under the given style.
func (b *FormatterBuilder) AppendAmountStyled(style AmountStyle) *FormatterBuilder {
	component := amountComponent{style: style}
	return b.appendComponent(component, component, component.String())
}

// AppendLiteral appends fixed text, matched case-sensitively when parsing.
// Empty literals are ignored.
func (b *FormatterBuilder) AppendLiteral(text string) *FormatterBuilder {
	if text == "" {
		return b
	}
	component := literalComponent(text)
	return b.appendComponent(component, component, component.String())
}

// AppendCurrencyCode appends the 3-letter currency code.
func (b *FormatterBuilder) AppendCurrencyCode() *FormatterBuilder {
	return b.appendComponent(tokenCurrencyCode, tokenCurrencyCode, tokenCurrencyCode.String())
}

// AppendCurrencyNumeric3Code appends the zero-padded 3-digit numeric code.
func (b *FormatterBuilder) AppendCurrencyNumeric3Code() *FormatterBuilder {
	return b.appendComponent(tokenCurrencyNumeric3, tokenCurrencyNumeric3, tokenCurrencyNumeric3.String())
}

// AppendCurrencyNumericCode appends the numeric code without padding; when
// parsing it reads up to three leading digits, whatever length is present.
func (b *FormatterBuilder) AppendCurrencyNumericCode() *FormatterBuilder {
	return b.appendComponent(tokenCurrencyNumeric, tokenCurrencyNumeric, tokenCurrencyNumeric.String())
}

// AppendCurrencySymbolLocalized appends the locale-specific currency
// symbol. Symbols have no canonical inverse mapping, so the resulting
// formatter can print but not parse.
func (b *FormatterBuilder) AppendCurrencySymbolLocalized() *FormatterBuilder {
	return b.appendComponent(symbolComponent{}, nil, symbolComponent{}.String())
}

// AppendSigned appends a combinator that delegates to one of three whole
// sub-formatters chosen by the value's sign class; zero is its own class.
// The component prints only if all three sub-formatters print, and parses
// only if all three parse.
func (b *FormatterBuilder) AppendSigned(whenPositive, whenZero, whenNegative *Formatter) *FormatterBuilder {
	if whenPositive == nil || whenZero == nil || whenNegative == nil {
		panic("moneyfmt: AppendSigned requires all three sub-formatters")
	}

	dispatch := signDispatch{
		whenPositive: whenPositive,
		whenZero:     whenZero,
		whenNegative: whenNegative,
	}

	var printer Printer
	if whenPositive.IsPrinter() && whenZero.IsPrinter() && whenNegative.IsPrinter() {
		printer = dispatch
	}
	var parser Parser
	if whenPositive.IsParser() && whenZero.IsParser() && whenNegative.IsParser() {
		parser = dispatch
	}
	return b.appendComponent(printer, parser, dispatch.String())
}

// Append splices another formatter's component chain into this builder.
func (b *FormatterBuilder) Append(f *Formatter) *FormatterBuilder {
	if f == nil {
		panic("moneyfmt: Append requires a formatter")
	}
	b.components = append(b.components, f.components...)
	return b
}

// AppendPrinterParser appends a caller-supplied component. Either side may
// be nil, making the formatter print-only or parse-only; both nil is a
// configuration error.
func (b *FormatterBuilder) AppendPrinterParser(printer Printer, parser Parser, desc string) *FormatterBuilder {
	if printer == nil && parser == nil {
		panic("moneyfmt: component must provide a printer or a parser")
	}
	return b.appendComponent(printer, parser, desc)
}

// ToFormatter snapshots the builder into a formatter bound to DefaultLocale.
func (b *FormatterBuilder) ToFormatter() *Formatter {
	return b.ToFormatterWithLocale(DefaultLocale)
}

// ToFormatterWithLocale snapshots the builder into a formatter bound to the
// given locale. The builder is unaffected and may keep accumulating.
func (b *FormatterBuilder) ToFormatterWithLocale(locale string) *Formatter {
	locale = normalizeLocale(locale)
	if locale == "" {
		panic("moneyfmt: formatter locale must not be empty")
	}

	components := make([]printerParser, len(b.components))
	copy(components, b.components)
	return &Formatter{locale: locale, components: components}
}
