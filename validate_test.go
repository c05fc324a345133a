package askline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestValidateEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		allowEmpty bool
		wantOK     bool
		wantMsg    string
	}{
		{
			name:       "empty rejected by default",
			allowEmpty: false,
			wantOK:     false,
			wantMsg:    "input cannot be empty",
		},
		{
			name:       "empty accepted when allowed",
			allowEmpty: true,
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := Request{Mode: ModeText, MinLength: 5, AllowEmpty: tt.allowEmpty}
			got := Validate("", req)
			assert.Equal(t, tt.wantOK, got.OK, "Validate() acceptance should match")
			if !tt.wantOK {
				assert.Equal(t, tt.wantMsg, got.Message, "Validate() message should match")
			}
		})
	}
}

func TestValidateAllowEmptyBypassesOtherChecks(t *testing.T) {
	t.Parallel()

	// An allowed empty input skips length and format checks entirely.
	req := Request{Mode: ModeIPv4, MinLength: 7, AllowEmpty: true}
	assert.True(t, Validate("", req).OK, "allowed empty input should bypass format checks")
}

func TestValidateLengthBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		min    int
		max    int
		wantOK bool
	}{
		{name: "within bounds", input: "abc", min: 2, max: 5, wantOK: true},
		{name: "too short", input: "a", min: 2, max: 5, wantOK: false},
		{name: "too long", input: "abcdef", min: 2, max: 5, wantOK: false},
		{name: "exactly min", input: "ab", min: 2, max: 5, wantOK: true},
		{name: "exactly max", input: "abcde", min: 2, max: 5, wantOK: true},
		{name: "unbounded", input: "whatever length this is", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := Request{Mode: ModeText, MinLength: tt.min, MaxLength: tt.max}
			got := Validate(tt.input, req)
			assert.Equal(t, tt.wantOK, got.OK, "Validate(%q) acceptance should match", tt.input)
		})
	}
}

func TestValidateNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		minValue *int
		maxValue *int
		wantOK   bool
	}{
		{name: "digits no bounds", input: "12345", wantOK: true},
		{name: "within bounds", input: "42", minValue: intPtr(1), maxValue: intPtr(120), wantOK: true},
		{name: "above max", input: "150", minValue: intPtr(1), maxValue: intPtr(120), wantOK: false},
		{name: "below min", input: "0", minValue: intPtr(1), maxValue: intPtr(120), wantOK: false},
		{name: "exactly min", input: "1", minValue: intPtr(1), maxValue: intPtr(120), wantOK: true},
		{name: "exactly max", input: "120", minValue: intPtr(1), maxValue: intPtr(120), wantOK: true},
		{name: "min only", input: "7", minValue: intPtr(5), wantOK: true},
		{name: "max only rejected", input: "70", maxValue: intPtr(50), wantOK: false},
		{name: "non-digit rejected", input: "4a2", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := Request{Mode: ModeNumeric, MinValue: tt.minValue, MaxValue: tt.maxValue}
			got := Validate(tt.input, req)
			assert.Equal(t, tt.wantOK, got.OK, "Validate(%q) acceptance should match", tt.input)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		wantOK bool
	}{
		{input: "user@example.com", wantOK: true},
		{input: "first.last+tag@mail.example.org", wantOK: true},
		{input: "user_name%x@host-1.io", wantOK: true},
		{input: "no-at-sign.example.com", wantOK: false},
		{input: "user@", wantOK: false},
		{input: "@example.com", wantOK: false},
		{input: "user@example", wantOK: false},
		{input: "user@example.c", wantOK: false},
		{input: "user@@example.com", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := Validate(tt.input, Request{Mode: ModeEmail})
			assert.Equal(t, tt.wantOK, got.OK, "Validate(%q) acceptance should match", tt.input)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		wantOK bool
	}{
		{input: "555-123-4567", wantOK: true},
		{input: "5551234567", wantOK: true},
		{input: "555-1234", wantOK: false},
		{input: "555-123-45678", wantOK: false},
		{input: "555-123-456a", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := Validate(tt.input, Request{Mode: ModePhone})
			assert.Equal(t, tt.wantOK, got.OK, "Validate(%q) acceptance should match", tt.input)
		})
	}
}

func TestValidateIPv4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		wantOK bool
	}{
		{input: "192.168.1.1", wantOK: true},
		{input: "0.0.0.0", wantOK: true},
		{input: "255.255.255.255", wantOK: true},
		{input: "256.1.1.1", wantOK: false},
		{input: "1.2.3", wantOK: false},
		{input: "1.2.3.4.5", wantOK: false},
		{input: "1..2.3", wantOK: false},
		{input: "1.2.3.1000", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := Validate(tt.input, Request{Mode: ModeIPv4})
			assert.Equal(t, tt.wantOK, got.OK, "Validate(%q) acceptance should match", tt.input)
		})
	}
}

func TestValidateIPv6(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		wantOK bool
	}{
		{input: "2001:db8::1", wantOK: true},
		{input: "fe80::", wantOK: true},
		{input: "1:2:3:4:5:6:7:8", wantOK: true}, // full form, seven separators
		{input: "2001:::db8", wantOK: false},
		{input: "2001.db8", wantOK: false},
		{input: "abcd", wantOK: false}, // no colons at all
		{input: "g001:db8::1", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := Validate(tt.input, Request{Mode: ModeIPv6})
			assert.Equal(t, tt.wantOK, got.OK, "Validate(%q) acceptance should match", tt.input)
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	t.Parallel()

	req := Request{Mode: ModeNumeric, MinValue: intPtr(1), MaxValue: intPtr(120)}
	first := Validate("42", req)
	second := Validate("42", req)
	assert.True(t, first.OK, "first validation should accept")
	assert.Equal(t, first, second, "re-validating an accepted value should accept again")
}

func TestValidateTextAndPasswordHaveNoSemanticCheck(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModeText, ModePassword} {
		got := Validate("anything at all 123 !?", Request{Mode: mode})
		assert.True(t, got.OK, "mode %s should accept arbitrary content within length bounds", mode)
	}
}
