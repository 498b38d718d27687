package dayone

import (
	"errors"
	"strings"
	"testing"

	"github.com/chee/do2org/internal/output"
)

func TestMoonGlyph(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"new", "🌑"},
		{"waxing-crescent", "🌒"},
		{"first-quarter", "🌓"},
		{"waxing-gibbous", "🌔"},
		{"full", "🌕"},
		{"waning-gibbous", "🌖"},
		{"last-quarter", "🌗"},
		{"waning-crescent", "🌘"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := MoonGlyph(tt.code)
			if err != nil {
				t.Fatalf("MoonGlyph(%q) error = %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("MoonGlyph(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestMoonGlyph_Unknown(t *testing.T) {
	_, err := MoonGlyph("eclipse")
	if err == nil {
		t.Fatal("MoonGlyph() expected error for unknown code")
	}
	if !strings.Contains(err.Error(), `unknown moon phase code "eclipse"`) {
		t.Errorf("error = %q, want the offending code named", err.Error())
	}

	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should be *output.ExitError, got %T", err)
	}
	if exitErr.Code != output.ExitDecode {
		t.Errorf("exit code = %d, want %d", exitErr.Code, output.ExitDecode)
	}
}
