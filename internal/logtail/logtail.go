package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Record is one decoded slog JSON line.
type Record struct {
	Time    time.Time
	Level   string
	Message string
	Attrs   []string // key=value, sorted by key
}

// Parse decodes a JSON log line. ok is false for lines that are not slog
// JSON records; callers print those unchanged.
func Parse(line string) (Record, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Record{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Record{}, false
	}

	var rec Record
	if ts, ok := raw["time"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.Time = parsed
		}
	}
	rec.Level, _ = raw["level"].(string)
	rec.Message, _ = raw["msg"].(string)

	keys := make([]string, 0, len(raw))
	for k := range raw {
		switch k {
		case "time", "level", "msg", "app":
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rec.Attrs = append(rec.Attrs, fmt.Sprintf("%s=%v", k, raw[k]))
	}
	return rec, true
}

// Format renders a log line as "2006-01-02 15:04:05 LEVEL msg k=v".
func Format(line string) string {
	rec, ok := Parse(line)
	if !ok {
		return line
	}
	return rec.render(func(_ string, s string) string { return s })
}

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	attrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	levelStyle = map[string]lipgloss.Style{
		"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		"ERROR": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
)

// Colorize renders a log line like Format with lipgloss colors per field.
func Colorize(line string) string {
	rec, ok := Parse(line)
	if !ok {
		return line
	}
	return rec.render(func(part, s string) string {
		switch part {
		case "time":
			return timeStyle.Render(s)
		case "attr":
			return attrStyle.Render(s)
		case "level":
			if st, ok := levelStyle[strings.ToUpper(s)]; ok {
				return st.Render(s)
			}
		}
		return s
	})
}

func (r Record) render(paint func(part, s string) string) string {
	var b strings.Builder
	if !r.Time.IsZero() {
		b.WriteString(paint("time", r.Time.Local().Format("2006-01-02 15:04:05")))
		b.WriteByte(' ')
	}
	if r.Level != "" {
		b.WriteString(paint("level", r.Level))
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)
	for _, attr := range r.Attrs {
		b.WriteByte(' ')
		b.WriteString(paint("attr", attr))
	}
	return b.String()
}
