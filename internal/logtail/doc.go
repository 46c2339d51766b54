// Package logtail reads the tail of shiki's log file and renders its slog
// JSON records for humans.
//
// # Reading
//
// Read returns the last maxLines lines of a file using a ring buffer of size
// maxLines, so memory stays O(maxLines) regardless of file size:
//
//  1. Allocate ring buffer of size maxLines
//  2. For each line: store at index, advance index (wrapping), count
//  3. If count < maxLines: return the first count entries
//  4. Otherwise: return the buffer starting at index (oldest line)
//
// A missing file yields nil, nil. Other I/O errors are wrapped.
//
// # Rendering
//
// The logger writes one JSON object per line:
//
//	{"time":"2026-01-05T10:11:12Z","level":"WARN","msg":"page load failed","app":"shiki","page":2}
//
// Format turns that into
//
//	2026-01-05 10:11:12 WARN page load failed page=2
//
// and Colorize does the same with lipgloss colors (time dim gray, level by
// severity, attributes blue). Lines that are not JSON records pass through
// unchanged; neither function returns errors.
package logtail
