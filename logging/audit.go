package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/MGIFOGOIOGPY/payment-hams/models"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// LevelFromString maps a config value to a Level, defaulting to INFO.
func LevelFromString(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Entry is one structured audit record. Record must already be redacted
// by the caller; the logger never masks on its own.
type Entry struct {
	Timestamp     string                 `json:"timestamp"`
	Level         string                 `json:"level"`
	Message       string                 `json:"message"`
	RequestID     string                 `json:"request_id,omitempty"`
	TransactionID string                 `json:"transaction_id,omitempty"`
	Method        string                 `json:"method,omitempty"`
	SourceIP      string                 `json:"source_ip,omitempty"`
	ErrorCode     string                 `json:"error_code,omitempty"`
	Delivered     *bool                  `json:"delivered,omitempty"`
	Record        *models.Value          `json:"record,omitempty"`
	Fields        map[string]interface{} `json:"fields,omitempty"`
}

// AuditLogger writes one JSON object per line to its sink.
type AuditLogger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

func NewAuditLogger(level Level, out io.Writer) *AuditLogger {
	return &AuditLogger{level: level, out: out}
}

// NewRotatingAuditLogger writes to a size-rotated file sink.
func NewRotatingAuditLogger(level Level, path string, maxSizeMB int) *AuditLogger {
	return NewAuditLogger(level, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 5,
	})
}

func (l *AuditLogger) Debug(message string, entry Entry) { l.write(LevelDebug, message, entry) }
func (l *AuditLogger) Info(message string, entry Entry)  { l.write(LevelInfo, message, entry) }
func (l *AuditLogger) Warn(message string, entry Entry)  { l.write(LevelWarn, message, entry) }
func (l *AuditLogger) Error(message string, entry Entry) { l.write(LevelError, message, entry) }

func (l *AuditLogger) write(level Level, message string, entry Entry) {
	if !l.enabled(level) {
		return
	}

	entry.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	entry.Level = string(level)
	entry.Message = message

	b, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Failed to marshal audit entry: %v", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, string(b))
}

func (l *AuditLogger) enabled(level Level) bool {
	ranks := map[Level]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}
	return ranks[level] >= ranks[l.level]
}
