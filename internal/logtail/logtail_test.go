package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "zero lines",
			maxLines: 0,
			expected: nil,
		},
		{
			name:     "negative",
			maxLines: -1,
			expected: nil,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	line := `{"time":"2026-01-05T10:11:12.5Z","level":"WARN","msg":"page load failed","app":"shiki","page":2,"error":"boom"}`
	rec, ok := Parse(line)
	if !ok {
		t.Fatalf("Parse returned ok=false")
	}
	if rec.Level != "WARN" || rec.Message != "page load failed" {
		t.Fatalf("record = %#v", rec)
	}
	if !rec.Time.Equal(time.Date(2026, 1, 5, 10, 11, 12, 500_000_000, time.UTC)) {
		t.Fatalf("Time = %v", rec.Time)
	}
	if want := []string{"error=boom", "page=2"}; !reflect.DeepEqual(rec.Attrs, want) {
		t.Fatalf("Attrs = %v, want %v", rec.Attrs, want)
	}

	if _, ok := Parse("plain text line"); ok {
		t.Fatalf("Parse accepted a non-JSON line")
	}
	if _, ok := Parse("{broken"); ok {
		t.Fatalf("Parse accepted malformed JSON")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain passthrough", "not json", "not json"},
		{"no time", `{"level":"INFO","msg":"favorite toggled","id":42,"favorite":true}`, "INFO favorite toggled favorite=true id=42"},
		{"message only", `{"msg":"hello"}`, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorize_KeepsText(t *testing.T) {
	line := `{"level":"ERROR","msg":"favorites write failed","id":1}`
	got := Colorize(line)
	for _, part := range []string{"ERROR", "favorites write failed", "id=1"} {
		if !strings.Contains(got, part) {
			t.Fatalf("Colorize() = %q, missing %q", got, part)
		}
	}
	if Colorize("raw") != "raw" {
		t.Fatalf("Colorize should pass through non-JSON lines")
	}
}
