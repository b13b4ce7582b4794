// pattern: Functional Core

package logging

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a structured log record as consumed by the TUI log panel.
type Entry struct {
	Timestamp time.Time
	Level     string // DEBUG, INFO, WARN, ERROR
	Scope     string // component scope, e.g. "scan" or "create"
	Message   string
	Fields    map[string]any
}

// String renders the entry as a single display line.
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Timestamp.Format("15:04:05"))
	sb.WriteString(" ")
	sb.WriteString(e.Level)
	sb.WriteString(" [")
	sb.WriteString(e.Scope)
	sb.WriteString("] ")
	sb.WriteString(e.Message)

	for k, v := range e.Fields {
		fmt.Fprintf(&sb, " %s=%v", k, v)
	}

	return sb.String()
}

// NormalizeLevel maps a level string to its canonical uppercase form.
// Unknown levels normalize to INFO.
func NormalizeLevel(level string) string {
	switch strings.ToLower(level) {
	case "debug":
		return "DEBUG"
	case "info":
		return "INFO"
	case "warn", "warning":
		return "WARN"
	case "error":
		return "ERROR"
	default:
		return "INFO"
	}
}
