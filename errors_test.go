package moneyfmt

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrorMessages(t *testing.T) {
	at := &ParseError{Kind: ParseErrorAt, Index: 4, Text: "12x GBP"}
	if msg := at.Error(); !strings.Contains(msg, "index 4") || !strings.Contains(msg, "12x GBP") {
		t.Fatalf("message = %q", msg)
	}

	unparsed := &ParseError{Kind: ParseErrorUnparsedText, Index: 6, Text: "12 GBP!"}
	if msg := unparsed.Error(); !strings.Contains(msg, "fully parsed") {
		t.Fatalf("message = %q", msg)
	}

	incomplete := &ParseError{Kind: ParseErrorIncomplete, Text: "12"}
	if msg := incomplete.Error(); !strings.Contains(msg, "currency and amount") {
		t.Fatalf("message = %q", msg)
	}
}

func TestParseErrorPreviewTruncated(t *testing.T) {
	long := strings.Repeat("9", previewLength+10)
	err := &ParseError{Kind: ParseErrorAt, Index: 0, Text: long}

	msg := err.Error()
	if !strings.Contains(msg, "...") {
		t.Fatalf("long input not truncated: %q", msg)
	}
	if strings.Contains(msg, long) {
		t.Fatal("full input leaked into message")
	}
	// The untruncated error still carries the complete text for callers.
	if err.Text != long {
		t.Fatal("Text field should keep the full input")
	}
}

func TestFormatErrorUnwrap(t *testing.T) {
	cause := errors.New("broken pipe")
	err := &FormatError{Msg: "writing to sink failed", Cause: cause}

	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if !strings.Contains(err.Error(), "broken pipe") {
		t.Fatalf("message = %q", err.Error())
	}

	plain := &FormatError{Msg: "unable to print: money has no currency"}
	if errors.Unwrap(plain) != nil {
		t.Fatal("plain format error should have no cause")
	}
	if !strings.HasPrefix(plain.Error(), "moneyfmt: ") {
		t.Fatalf("message = %q", plain.Error())
	}
}
