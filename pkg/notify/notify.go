package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/opendap-go/varselect/pkg/guard"
)

// EventName is the event name dispatched for alerts.
// Client-side code should listen for this event.
const EventName = "varselect:alert"

// Level is the alert severity.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Emitter dispatches a named event with a payload to the user's page.
type Emitter interface {
	Emit(name string, data any)
}

// Show emits an alert with the given level.
//
// The page receives a CustomEvent with:
//   - event.type = "varselect:alert"
//   - event.detail = { level: "success|error|warning|info", message: "..." }
func Show(e Emitter, level Level, message string) {
	e.Emit(EventName, map[string]any{
		"level":   string(level),
		"message": message,
	})
}

// WithTitle emits an alert with a title and message.
func WithTitle(e Emitter, level Level, title, message string) {
	e.Emit(EventName, map[string]any{
		"level":   string(level),
		"title":   title,
		"message": message,
	})
}

// Alert is a guard.Notifier that emits every message through Emitter.
// Level defaults to LevelWarning.
type Alert struct {
	Emitter Emitter
	Level   Level
	Title   string
}

// Notify implements guard.Notifier.
func (a Alert) Notify(message string) {
	level := a.Level
	if level == "" {
		level = LevelWarning
	}
	if a.Title != "" {
		WithTitle(a.Emitter, level, a.Title, message)
		return
	}
	Show(a.Emitter, level, message)
}

// Recorder captures notifications. The zero value is ready to use and it
// is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Notify implements guard.Notifier.
func (r *Recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of the recorded messages, oldest first.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Count returns the number of recorded messages.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

// Reset forgets all recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}

// Writer prints each message on its own line.
type Writer struct {
	W io.Writer
}

// Notify implements guard.Notifier.
func (w Writer) Notify(message string) {
	fmt.Fprintln(w.W, message)
}

// Log returns a notifier that records each message at warn level.
func Log(logger *slog.Logger) guard.Notifier {
	return guard.NotifierFunc(func(message string) {
		logger.LogAttrs(context.Background(), slog.LevelWarn, "form submission blocked",
			slog.String("message", message),
		)
	})
}

// Multi returns a notifier that delivers each message to every non-nil
// notifier in order.
func Multi(notifiers ...guard.Notifier) guard.Notifier {
	list := make([]guard.Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			list = append(list, n)
		}
	}
	return guard.NotifierFunc(func(message string) {
		for _, n := range list {
			n.Notify(message)
		}
	})
}
