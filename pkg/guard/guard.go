package guard

import (
	"context"
	"log/slog"
	"strings"
)

// Message is shown to the user when a submission is blocked.
const Message = "Select at least one variable."

// Input is the part of a form control the rule looks at.
type Input struct {
	Type    string `yaml:"type" json:"type"`
	Checked bool   `yaml:"checked" json:"checked"`
}

// IsCheckbox reports whether typ names a checkbox, ignoring case.
func IsCheckbox(typ string) bool {
	return strings.EqualFold(typ, "checkbox")
}

// AnyChecked reports whether at least one checkbox among inputs is checked.
// Inputs of any other type are ignored.
func AnyChecked(inputs []Input) bool {
	for _, in := range inputs {
		if IsCheckbox(in.Type) && in.Checked {
			return true
		}
	}
	return false
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) { f(message) }

// Event is the click being guarded.
type Event interface {
	// PreventDefault stops the event's default action (form submission).
	PreventDefault()
}

// Outcome is the result of guarding one click.
type Outcome uint8

const (
	// Allowed means the default action proceeds.
	Allowed Outcome = iota
	// Blocked means the user was notified and the default action prevented.
	Blocked
)

// String returns "allowed" or "blocked".
func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Observer is told about every outcome, after side effects are applied.
type Observer func(Outcome)

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger used for per-click debug records.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithObserver adds an observer. Observers run in the order added.
func WithObserver(obs Observer) Option {
	return func(g *Guard) {
		if obs != nil {
			g.observers = append(g.observers, obs)
		}
	}
}

// Guard gates form submission on the minimum-selection rule.
// It holds no per-click state and may be shared by several bindings.
type Guard struct {
	notifier  Notifier
	logger    *slog.Logger
	observers []Observer
}

// New creates a Guard that reports blocked submissions through n.
// It panics if n is nil.
func New(n Notifier, opts ...Option) *Guard {
	if n == nil {
		panic("guard: nil Notifier")
	}
	g := &Guard{
		notifier: n,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check evaluates inputs for the click ev. If no checkbox is checked it
// notifies the user with Message and then calls ev.PreventDefault.
// Otherwise it has no side effect. A nil ev is allowed.
func (g *Guard) Check(ev Event, inputs []Input) Outcome {
	outcome := Allowed
	if !AnyChecked(inputs) {
		outcome = Blocked
		g.notifier.Notify(Message)
		if ev != nil {
			ev.PreventDefault()
		}
	}

	if g.logger.Enabled(context.Background(), slog.LevelDebug) {
		boxes, checked := count(inputs)
		g.logger.LogAttrs(context.Background(), slog.LevelDebug, "guarded form submission",
			slog.String("outcome", outcome.String()),
			slog.Int("inputs", len(inputs)),
			slog.Int("checkboxes", boxes),
			slog.Int("checked", checked),
		)
	}
	for _, obs := range g.observers {
		obs(outcome)
	}
	return outcome
}

func count(inputs []Input) (boxes, checked int) {
	for _, in := range inputs {
		if IsCheckbox(in.Type) {
			boxes++
			if in.Checked {
				checked++
			}
		}
	}
	return boxes, checked
}
