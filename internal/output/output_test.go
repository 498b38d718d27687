package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	exitErr := NewDecodeError("entry 3: missing required field: creationDate")
	printer.Error(exitErr)

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["error"] != "entry 3: missing required field: creationDate" {
		t.Errorf("error = %v, want decode message", result["error"])
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitDecode {
		t.Errorf("code = %v, want %d", result["code"], ExitDecode)
	}
}

func TestPrinter_Human_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false) // json=false, tty=false

	exitErr := NewUsageError("unknown flag: --format")
	printer.Error(exitErr)

	output := buf.String()
	if !strings.Contains(output, "Error") {
		t.Errorf("output should contain 'Error': %q", output)
	}
	if !strings.Contains(output, "unknown flag: --format") {
		t.Errorf("output should contain error message: %q", output)
	}
}

func TestPrinter_Error_Untyped(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(errors.New("something broke"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUsage {
		t.Errorf("untyped error code = %v, want %d", result["code"], ExitUsage)
	}
}

func TestPrinter_WithStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(NewInputError("reading journal: no such file", nil))
	printer.Print("document body")

	if out.String() != "document body" {
		t.Errorf("stdout = %q, want only the document", out.String())
	}
	if !strings.Contains(errOut.String(), "no such file") {
		t.Errorf("stderr should carry the error: %q", errOut.String())
	}
}

func TestPrinter_Stderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Stderr("converted %d entries\n", 12)

	if out.Len() != 0 {
		t.Errorf("stdout should stay clean, got %q", out.String())
	}
	if errOut.String() != "converted 12 entries\n" {
		t.Errorf("stderr = %q", errOut.String())
	}

	// JSON mode suppresses free-form hints
	jsonPrinter := NewPrinter(&out, true, false).WithStderr(&errOut)
	errOut.Reset()
	jsonPrinter.Stderr("hint")
	if errOut.Len() != 0 {
		t.Errorf("Stderr in JSON mode should be a no-op, got %q", errOut.String())
	}
}

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Print("Hello, %s!", "world")

	if buf.String() != "Hello, world!" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello, world!")
	}
}

func TestPrinter_Println(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Println("Hello")

	if buf.String() != "Hello\n" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello\n")
	}
}

func TestPrinter_StatusIcons(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false) // no TTY, styles disabled

	if printer.Pass() != "ok" {
		t.Errorf("Pass() = %q, want %q", printer.Pass(), "ok")
	}
	if printer.Flag() != "!!" {
		t.Errorf("Flag() = %q, want %q", printer.Flag(), "!!")
	}
	if printer.Fail() != "XX" {
		t.Errorf("Fail() = %q, want %q", printer.Fail(), "XX")
	}
}

func TestIsTTY(t *testing.T) {
	// IsTTY on a buffer should return false
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestResolveColorMode(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	tests := []struct {
		mode  string
		isTTY bool
		want  bool
	}{
		{"never", true, false},
		{"never", false, false},
		{"always", false, true},
		{"always", true, true},
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_tty=%v", tt.mode, tt.isTTY), func(t *testing.T) {
			if got := ResolveColorMode(tt.mode, tt.isTTY); got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.mode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestResolveColorMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if ResolveColorMode("auto", true) {
		t.Error("NO_COLOR should disable colors in auto mode")
	}
	if !ResolveColorMode("always", true) {
		t.Error("--color always should override NO_COLOR")
	}
	if ResolveColorMode("never", true) {
		t.Error("never should stay disabled under NO_COLOR")
	}
}

func TestPrinter_IsJSON(t *testing.T) {
	var buf bytes.Buffer

	jsonPrinter := NewPrinter(&buf, true, false)
	if !jsonPrinter.IsJSON() {
		t.Error("IsJSON() should return true for JSON printer")
	}

	humanPrinter := NewPrinter(&buf, false, false)
	if humanPrinter.IsJSON() {
		t.Error("IsJSON() should return false for human printer")
	}
}

func TestPrinter_Warn_Human(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Warn("photo %s has no matching placeholder", "a1b2c3")

	output := buf.String()
	if !strings.Contains(output, "Warning") {
		t.Errorf("output should contain 'Warning': %q", output)
	}
	if !strings.Contains(output, "a1b2c3") {
		t.Errorf("output should contain message: %q", output)
	}
}

func TestPrinter_Warn_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Warn("no entries")

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["warning"] != "no entries" {
		t.Errorf("warning = %v, want %q", result["warning"], "no entries")
	}
}

func TestErrorJSON_Format(t *testing.T) {
	result := ErrorJSON("test error", ExitConversion)

	var parsed struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse ErrorJSON output: %v", err)
	}

	if parsed.Error != "test error" {
		t.Errorf("error = %q, want %q", parsed.Error, "test error")
	}
	if parsed.Code != ExitConversion {
		t.Errorf("code = %d, want %d", parsed.Code, ExitConversion)
	}
}
