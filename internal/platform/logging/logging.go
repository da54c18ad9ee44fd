package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

type Fields struct {
	Entity string `json:"entity,omitempty"`
	ID     string `json:"id,omitempty"`
	Status int    `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Logger writes one JSON object per line, tagged with the service name.
type Logger struct {
	service string
	out     *log.Logger
}

func New(service string) *Logger {
	return NewWithWriter(service, os.Stderr)
}

func NewWithWriter(service string, w io.Writer) *Logger {
	return &Logger{service: service, out: log.New(w, "", 0)}
}

func (l *Logger) Info(message string, fields Fields) { l.write("info", message, fields) }

func (l *Logger) Error(message string, fields Fields) { l.write("error", message, fields) }

func (l *Logger) write(level, message string, fields Fields) {
	payload := map[string]any{
		"service":   l.service,
		"level":     level,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if fields.Entity != "" {
		payload["entity"] = fields.Entity
	}
	if fields.ID != "" {
		payload["id"] = fields.ID
	}
	if fields.Status != 0 {
		payload["status"] = fields.Status
	}
	if fields.Error != "" {
		payload["error"] = fields.Error
	}
	data, err := json.Marshal(payload)
	if err != nil {
		l.out.Printf("{\"service\":%q,\"level\":\"error\",\"message\":\"log_error\",\"error\":%q}", l.service, err.Error())
		return
	}
	l.out.Print(string(data))
}
