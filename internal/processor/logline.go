package processor

import (
	"fmt"
	"strings"
)

// Log processes log lines: detects severity prefixes and labels the message.
type Log struct{}

func (p *Log) Kind() string { return "log" }

// Validate accepts any string; a log line with no recognized prefix is still
// a log line, it just defaults to INFO.
func (p *Log) Validate(data any) error {
	if _, ok := data.(string); !ok {
		return fmt.Errorf("%w: log processor expects a string, got %T", ErrInvalidInput, data)
	}
	return nil
}

func (p *Log) Process(data any) (string, error) {
	if err := p.Validate(data); err != nil {
		return "", err
	}
	line := data.(string)

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "[INFO] Empty log entry", nil
	}

	var level, label string
	switch parts[0] {
	case "ERROR:":
		level, label = "ERROR", "[ALERT]"
	case "WARN:":
		level, label = "WARN", "[WARN]"
	default:
		level, label = "INFO", "[INFO]"
	}

	message := strings.Join(messageParts(parts), " ")
	return fmt.Sprintf("%s %s level detected: %s", label, level, message), nil
}

// messageParts strips a recognized severity prefix from the tokenized line.
func messageParts(parts []string) []string {
	switch parts[0] {
	case "ERROR:", "WARN:", "INFO:":
		return parts[1:]
	}
	return parts
}
