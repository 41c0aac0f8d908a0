// Command moneyfmt-styles regenerates style_data.go from CLDR JSON number
// data (the cldr-json "cldr-numbers" bundles).
//
// Usage:
//
//	moneyfmt-styles -cldr /path/to/cldr-numbers-full -locale en -locale en-IN -locale de
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type localeSymbols struct {
	Locale             string
	ZeroDigit          rune
	DecimalSep         rune
	GroupSep           rune
	MinusSign          rune
	GroupSize          int
	SecondaryGroupSize int
}

// zeroDigits maps CLDR numbering systems to their zero digit.
var zeroDigits = map[string]rune{
	"latn":    '0',
	"arab":    '٠',
	"arabext": '۰',
	"beng":    '০',
	"deva":    '०',
	"mymr":    '၀',
	"thai":    '๐',
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "moneyfmt-styles: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "moneyfmt", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "style_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to a cldr-json numbers bundle (expects main/<locale>/numbers.json)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	cfg.locales = localeList.items

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_NUMBERS_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_NUMBERS_DIR)")
	}
	return cfg, nil
}

func run(cfg generatorConfig) error {
	var entries []localeSymbols
	for _, locale := range cfg.locales {
		locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
		if locale == "" {
			continue
		}

		entry, err := loadLocale(cfg.cldrPath, locale)
		if err != nil {
			return fmt.Errorf("load %s: %w", locale, err)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Locale < entries[j].Locale
	})

	source, err := renderSource(cfg.pkg, entries)
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.out, source, 0o644)
}

type numbersFile struct {
	Main map[string]struct {
		Numbers map[string]json.RawMessage `json:"numbers"`
	} `json:"main"`
}

type symbolsSection struct {
	Decimal   string `json:"decimal"`
	Group     string `json:"group"`
	MinusSign string `json:"minusSign"`
}

type decimalFormatsSection struct {
	Standard string `json:"standard"`
}

func loadLocale(root, locale string) (localeSymbols, error) {
	path := filepath.Join(root, "main", locale, "numbers.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return localeSymbols{}, err
	}

	var doc numbersFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return localeSymbols{}, err
	}

	bundle, ok := doc.Main[locale]
	if !ok || bundle.Numbers == nil {
		return localeSymbols{}, fmt.Errorf("no numbers data in %s", path)
	}

	system := "latn"
	if raw, ok := bundle.Numbers["defaultNumberingSystem"]; ok {
		if err := json.Unmarshal(raw, &system); err != nil {
			return localeSymbols{}, err
		}
	}

	zero, ok := zeroDigits[system]
	if !ok {
		return localeSymbols{}, fmt.Errorf("unsupported numbering system %q", system)
	}

	var symbols symbolsSection
	if raw, ok := bundle.Numbers["symbols-numberSystem-"+system]; ok {
		if err := json.Unmarshal(raw, &symbols); err != nil {
			return localeSymbols{}, err
		}
	}
	if symbols.Decimal == "" || symbols.Group == "" {
		return localeSymbols{}, fmt.Errorf("missing symbols for numbering system %q", system)
	}
	if symbols.MinusSign == "" {
		symbols.MinusSign = "-"
	}

	var formats decimalFormatsSection
	if raw, ok := bundle.Numbers["decimalFormats-numberSystem-"+system]; ok {
		if err := json.Unmarshal(raw, &formats); err != nil {
			return localeSymbols{}, err
		}
	}
	primary, secondary := groupSizes(formats.Standard)

	return localeSymbols{
		Locale:             locale,
		ZeroDigit:          zero,
		DecimalSep:         firstRune(symbols.Decimal),
		GroupSep:           firstRune(symbols.Group),
		MinusSign:          firstRune(symbols.MinusSign),
		GroupSize:          primary,
		SecondaryGroupSize: secondary,
	}, nil
}

// groupSizes derives grouping sizes from a CLDR decimal pattern such as
// "#,##0.###" (3) or "#,##,##0.###" (3 then 2).
func groupSizes(pattern string) (primary, secondary int) {
	primary = 3
	if pattern == "" {
		return primary, 0
	}

	integer := pattern
	if idx := strings.IndexByte(integer, '.'); idx >= 0 {
		integer = integer[:idx]
	}

	segments := strings.Split(integer, ",")
	if len(segments) < 2 {
		return primary, 0
	}

	primary = len(segments[len(segments)-1])
	if len(segments) >= 3 {
		if outer := len(segments[len(segments)-2]); outer != primary {
			return primary, outer
		}
	}
	return primary, 0
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func renderSource(pkg string, entries []localeSymbols) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by moneyfmt-styles. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("// LocaleSymbols is the per-locale numeric presentation data the style\n")
	buf.WriteString("// prototypes are derived from.\n")
	buf.WriteString("type LocaleSymbols struct {\n")
	buf.WriteString("\tZeroDigit          rune\n")
	buf.WriteString("\tDecimalSep         rune\n")
	buf.WriteString("\tGroupSep           rune\n")
	buf.WriteString("\tMinusSign          rune\n")
	buf.WriteString("\tGroupSize          int\n")
	buf.WriteString("\tSecondaryGroupSize int\n")
	buf.WriteString("}\n\n")

	buf.WriteString("var localeSymbolData = map[string]LocaleSymbols{\n")
	for _, entry := range entries {
		fmt.Fprintf(&buf, "\t%q: {\n", entry.Locale)
		fmt.Fprintf(&buf, "\t\tZeroDigit: %q,\n", entry.ZeroDigit)
		fmt.Fprintf(&buf, "\t\tDecimalSep: %q,\n", entry.DecimalSep)
		fmt.Fprintf(&buf, "\t\tGroupSep: %q,\n", entry.GroupSep)
		fmt.Fprintf(&buf, "\t\tMinusSign: %q,\n", entry.MinusSign)
		fmt.Fprintf(&buf, "\t\tGroupSize: %d,\n", entry.GroupSize)
		fmt.Fprintf(&buf, "\t\tSecondaryGroupSize: %d,\n", entry.SecondaryGroupSize)
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}
