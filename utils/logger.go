package utils

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// LogLevel is the severity of a log entry.
type LogLevel string

const (
	INFO  LogLevel = "INFO"
	WARN  LogLevel = "WARN"
	ERROR LogLevel = "ERROR"
)

// LogEntry is one structured log line, marshaled as JSON.
type LogEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Level     LogLevel    `json:"level"`
	Component string      `json:"component,omitempty"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// Logger writes structured JSON log lines to stdout. Loggers are injected
// into controllers rather than accessed through a package global.
type Logger struct {
	component string
	logger    *log.Logger
}

// NewLogger creates a logger tagged with the emitting component's name.
func NewLogger(component string) *Logger {
	return &Logger{
		component: component,
		logger:    log.New(os.Stdout, "", 0),
	}
}

// Info logs an info message with optional payload data.
func (l *Logger) Info(message string, data ...interface{}) {
	l.log(INFO, message, nil, data...)
}

// Warn logs a warning message with optional payload data.
func (l *Logger) Warn(message string, data ...interface{}) {
	l.log(WARN, message, nil, data...)
}

// Error logs an error message alongside the error itself.
func (l *Logger) Error(message string, err error, data ...interface{}) {
	l.log(ERROR, message, err, data...)
}

func (l *Logger) log(level LogLevel, message string, err error, data ...interface{}) {
	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Component: l.component,
		Message:   message,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	if len(data) > 0 {
		entry.Data = data[0]
	}

	jsonBytes, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		log.Printf("Error marshaling log entry: %v", marshalErr)
		return
	}
	l.logger.Println(string(jsonBytes))
}
