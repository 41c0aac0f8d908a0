package moneyfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DataFileLoader reads locale numeric-symbol definitions and custom
// currency definitions from YAML or JSON files and installs them into the
// registry, overriding the generated defaults.
type DataFileLoader struct {
	paths []string
}

// NewDataFileLoader creates a loader over the given file paths.
func NewDataFileLoader(paths ...string) *DataFileLoader {
	return &DataFileLoader{paths: append([]string(nil), paths...)}
}

type dataFile struct {
	Locales    map[string]localeSymbolsDoc `yaml:"locales" json:"locales"`
	Currencies map[string]currencyDoc      `yaml:"currencies" json:"currencies"`
}

type localeSymbolsDoc struct {
	ZeroDigit          string `yaml:"zero_digit" json:"zero_digit"`
	DecimalSep         string `yaml:"decimal_sep" json:"decimal_sep"`
	GroupSep           string `yaml:"group_sep" json:"group_sep"`
	MinusSign          string `yaml:"minus_sign" json:"minus_sign"`
	GroupSize          int    `yaml:"group_size" json:"group_size"`
	SecondaryGroupSize int    `yaml:"secondary_group_size" json:"secondary_group_size"`
}

type currencyDoc struct {
	NumericCode   string `yaml:"numeric_code" json:"numeric_code"`
	DecimalPlaces int    `yaml:"decimal_places" json:"decimal_places"`
	Symbol        string `yaml:"symbol" json:"symbol"`
}

// Load reads every configured file in order. Later files override earlier
// ones for the same locale or currency code.
func (l *DataFileLoader) Load() error {
	if l == nil || len(l.paths) == 0 {
		return errors.New("moneyfmt: no loader paths configured")
	}

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("moneyfmt: read %s: %w", path, err)
		}

		doc, err := decodeDataFile(path, data)
		if err != nil {
			return fmt.Errorf("moneyfmt: decode %s: %w", path, err)
		}
		if err := applyDataFile(doc); err != nil {
			return fmt.Errorf("moneyfmt: apply %s: %w", path, err)
		}
	}
	return nil
}

func decodeDataFile(path string, data []byte) (*dataFile, error) {
	var doc dataFile

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
	return &doc, nil
}

func applyDataFile(doc *dataFile) error {
	for locale, symbolsDoc := range doc.Locales {
		symbols, err := symbolsDoc.toSymbols()
		if err != nil {
			return fmt.Errorf("locale %s: %w", locale, err)
		}
		if err := RegisterLocaleSymbols(locale, symbols); err != nil {
			return err
		}
	}

	for code, currency := range doc.Currencies {
		if _, err := RegisterCurrency(code, currency.NumericCode, currency.DecimalPlaces, currency.Symbol); err != nil {
			return err
		}
	}
	return nil
}

func (d localeSymbolsDoc) toSymbols() (LocaleSymbols, error) {
	zero, err := singleRune("zero_digit", d.ZeroDigit)
	if err != nil {
		return LocaleSymbols{}, err
	}
	decimal, err := singleRune("decimal_sep", d.DecimalSep)
	if err != nil {
		return LocaleSymbols{}, err
	}
	group, err := singleRune("group_sep", d.GroupSep)
	if err != nil {
		return LocaleSymbols{}, err
	}
	minus, err := singleRune("minus_sign", d.MinusSign)
	if err != nil {
		return LocaleSymbols{}, err
	}

	return LocaleSymbols{
		ZeroDigit:          zero,
		DecimalSep:         decimal,
		GroupSep:           group,
		MinusSign:          minus,
		GroupSize:          d.GroupSize,
		SecondaryGroupSize: d.SecondaryGroupSize,
	}, nil
}

func singleRune(field, value string) (rune, error) {
	if value == "" {
		return 0, fmt.Errorf("missing %s", field)
	}
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || size != len(value) {
		return 0, fmt.Errorf("%s must be a single character, got %q", field, value)
	}
	return r, nil
}
