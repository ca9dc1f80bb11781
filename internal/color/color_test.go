package color

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"with hash", "#3b82f6", RGB{59, 130, 246}},
		{"without hash", "3b82f6", RGB{59, 130, 246}},
		{"uppercase", "#3B82F6", RGB{59, 130, 246}},
		{"mixed case", "#3b82F6", RGB{59, 130, 246}},
		{"black", "#000000", RGB{0, 0, 0}},
		{"white", "#ffffff", RGB{255, 255, 255}},
		{"single channel", "#00ff00", RGB{0, 255, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-hex digits", "#zzzzzz"},
		{"short non-hex", "#zzz"},
		{"css shorthand", "#fff"},
		{"empty", ""},
		{"hash only", "#"},
		{"too long", "#3b82f6f"},
		{"too short", "#3b82f"},
		{"trailing garbage", "3b82fg"},
		{"spaces", "#3b 2f6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			if err == nil {
				t.Fatalf("ParseHex(%q) should fail", tt.input)
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Errorf("ParseHex(%q) error is %T, want *FormatError", tt.input, err)
			}
		})
	}
}

func TestHexEncoding(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want string
	}{
		{RGB{59, 130, 246}, "#3b82f6"},
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{0, 10, 255}, "#000aff"}, // zero-padding
	}

	for _, tt := range tests {
		if got := tt.rgb.Hex(); got != tt.want {
			t.Errorf("%v.Hex() = %q, want %q", tt.rgb, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Edge values plus a spread of interior ones per channel.
	samples := []uint8{0, 1, 15, 16, 127, 128, 200, 254, 255}

	for _, r := range samples {
		for _, g := range samples {
			for _, b := range samples {
				in := RGB{R: r, G: g, B: b}
				out, err := ParseHex(in.Hex())
				if err != nil {
					t.Fatalf("ParseHex(%q) returned error: %v", in.Hex(), err)
				}
				if out != in {
					t.Fatalf("round trip %v -> %q -> %v", in, in.Hex(), out)
				}
			}
		}
	}
}

func TestCanonical(t *testing.T) {
	got, err := Canonical("#3B82F6")
	if err != nil {
		t.Fatalf("Canonical returned error: %v", err)
	}
	if got != "#3b82f6" {
		t.Errorf("Canonical(#3B82F6) = %q, want #3b82f6", got)
	}

	if _, err := Canonical("#fff"); err == nil {
		t.Error("Canonical(#fff) should fail")
	}
}
