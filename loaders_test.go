package moneyfmt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDataFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDataFileLoaderYAML(t *testing.T) {
	path := writeDataFile(t, "data.yaml", `
locales:
  x-loadyaml:
    zero_digit: "0"
    decimal_sep: ","
    group_sep: "."
    minus_sign: "-"
    group_size: 3
    secondary_group_size: 2
currencies:
  zly:
    numeric_code: "963"
    decimal_places: 3
    symbol: "Ł"
`)

	if err := NewDataFileLoader(path).Load(); err != nil {
		t.Fatal(err)
	}

	style := StyleForLocale("x-loadyaml")
	if style.DecimalPointCharacter() != ',' || style.GroupingCharacter() != '.' {
		t.Fatalf("loaded symbols not applied: %s", style)
	}
	if style.ExtendedGroupingSize() != 2 {
		t.Fatalf("extended grouping = %d, want 2", style.ExtendedGroupingSize())
	}

	currency, err := CurrencyOf("ZLY")
	if err != nil {
		t.Fatalf("loaded currency not registered: %v", err)
	}
	if currency.DecimalPlaces() != 3 {
		t.Fatalf("decimal places = %d, want 3", currency.DecimalPlaces())
	}
	if currency.NumericCode() != "963" {
		t.Fatalf("numeric = %q, want 963", currency.NumericCode())
	}
}

func TestDataFileLoaderJSON(t *testing.T) {
	path := writeDataFile(t, "data.json", `{
  "locales": {
    "x-loadjson": {
      "zero_digit": "0",
      "decimal_sep": ";",
      "group_sep": "_",
      "minus_sign": "-",
      "group_size": 4
    }
  }
}`)

	if err := NewDataFileLoader(path).Load(); err != nil {
		t.Fatal(err)
	}

	style := StyleForLocale("x-loadjson")
	if style.DecimalPointCharacter() != ';' || style.GroupingSize() != 4 {
		t.Fatalf("loaded symbols not applied: %s", style)
	}
}

func TestDataFileLoaderLaterFilesOverride(t *testing.T) {
	first := writeDataFile(t, "first.yaml", `
locales:
  x-loadorder:
    zero_digit: "0"
    decimal_sep: "."
    group_sep: ","
    minus_sign: "-"
    group_size: 3
`)
	second := writeDataFile(t, "second.yaml", `
locales:
  x-loadorder:
    zero_digit: "0"
    decimal_sep: ","
    group_sep: " "
    minus_sign: "-"
    group_size: 3
`)

	if err := NewDataFileLoader(first, second).Load(); err != nil {
		t.Fatal(err)
	}
	if got := StyleForLocale("x-loadorder").DecimalPointCharacter(); got != ',' {
		t.Fatalf("decimal = %q, later file should win", got)
	}
}

func TestDataFileLoaderErrors(t *testing.T) {
	if err := NewDataFileLoader().Load(); err == nil {
		t.Fatal("expected error for empty path list")
	}

	if err := NewDataFileLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := writeDataFile(t, "data.toml", "whatever = true")
	if err := NewDataFileLoader(bad).Load(); err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Fatalf("error = %v, want unsupported extension", err)
	}

	malformed := writeDataFile(t, "broken.json", "{not json")
	if err := NewDataFileLoader(malformed).Load(); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDataFileLoaderSymbolValidation(t *testing.T) {
	missing := writeDataFile(t, "missing.yaml", `
locales:
  x-loadbad:
    decimal_sep: ","
    group_sep: "."
    minus_sign: "-"
    group_size: 3
`)
	err := NewDataFileLoader(missing).Load()
	if err == nil || !strings.Contains(err.Error(), "zero_digit") {
		t.Fatalf("error = %v, want missing zero_digit", err)
	}

	multi := writeDataFile(t, "multi.yaml", `
locales:
  x-loadbad:
    zero_digit: "0"
    decimal_sep: "ab"
    group_sep: "."
    minus_sign: "-"
    group_size: 3
`)
	err = NewDataFileLoader(multi).Load()
	if err == nil || !strings.Contains(err.Error(), "single character") {
		t.Fatalf("error = %v, want single character", err)
	}
}
