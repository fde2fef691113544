//go:build js && wasm

// Package jsguard binds the submission guard to the browser document.
//
// Build the bootstrap with GOOS=js GOARCH=wasm and load it from the page
// that holds the variable-selection form:
//
//	binding, err := jsguard.Attach(jsguard.Config{})
package jsguard

import (
	"log/slog"
	"syscall/js"

	verrors "github.com/opendap-go/varselect/internal/errors"
	"github.com/opendap-go/varselect/pkg/guard"
	"github.com/opendap-go/varselect/pkg/notify"
)

// Config selects the elements and the notification capability.
type Config struct {
	// ContainerID defaults to guard.DefaultContainerID.
	ContainerID string
	// ButtonID defaults to guard.DefaultButtonID.
	ButtonID string
	// Notifier defaults to WindowAlert. Set EmitEvents to additionally
	// dispatch notify.EventName on window.
	Notifier   guard.Notifier
	EmitEvents bool
	// Logger defaults to slog.Default(), which writes to the console.
	Logger *slog.Logger
}

// WindowAlert shows messages with window.alert.
type WindowAlert struct{}

// Notify implements guard.Notifier.
func (WindowAlert) Notify(message string) {
	js.Global().Call("alert", message)
}

// WindowEmitter dispatches CustomEvents on window.
type WindowEmitter struct{}

// Emit implements notify.Emitter.
func (WindowEmitter) Emit(name string, data any) {
	detail := data
	if m, ok := data.(map[string]any); ok {
		obj := js.Global().Get("Object").New()
		for k, v := range m {
			obj.Set(k, v)
		}
		detail = obj
	}
	init := js.Global().Get("Object").New()
	init.Set("detail", detail)
	ev := js.Global().Get("CustomEvent").New(name, init)
	js.Global().Call("dispatchEvent", ev)
}

// event adapts a browser event to guard.Event.
type event struct {
	v js.Value
}

func (e event) PreventDefault() {
	e.v.Call("preventDefault")
}

// Binding is a guard attached to a browser element.
type Binding struct {
	button js.Value
	fn     js.Func
}

// Attach looks up both elements and registers the click listener. Nothing
// is registered if either element is missing.
func Attach(cfg Config) (*Binding, error) {
	if cfg.ContainerID == "" {
		cfg.ContainerID = guard.DefaultContainerID
	}
	if cfg.ButtonID == "" {
		cfg.ButtonID = guard.DefaultButtonID
	}
	n := cfg.Notifier
	if n == nil {
		n = WindowAlert{}
	}
	if cfg.EmitEvents {
		n = notify.Multi(n, notify.Alert{Emitter: WindowEmitter{}})
	}

	doc := js.Global().Get("document")
	if isMissing(doc.Call("getElementById", cfg.ContainerID)) {
		return nil, verrors.New("E101").
			WithDetailf("no element with id %q", cfg.ContainerID).
			Wrap(guard.ErrElementNotFound)
	}
	button := doc.Call("getElementById", cfg.ButtonID)
	if isMissing(button) {
		return nil, verrors.New("E102").
			WithDetailf("no element with id %q", cfg.ButtonID).
			Wrap(guard.ErrElementNotFound)
	}

	g := guard.New(n, guard.WithLogger(cfg.Logger))
	containerID := cfg.ContainerID
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		g.Check(event{v: args[0]}, inputs(js.Global().Get("document").Call("getElementById", containerID)))
		return nil
	})
	button.Call("addEventListener", "click", fn)
	return &Binding{button: button, fn: fn}, nil
}

// Detach removes the listener and releases the callback. Calling it more
// than once is harmless.
func (b *Binding) Detach() {
	if b == nil || b.button.IsUndefined() {
		return
	}
	b.button.Call("removeEventListener", "click", b.fn)
	b.fn.Release()
	b.button = js.Undefined()
}

func inputs(container js.Value) []guard.Input {
	if isMissing(container) {
		return nil
	}
	list := container.Call("getElementsByTagName", "INPUT")
	n := list.Get("length").Int()
	out := make([]guard.Input, 0, n)
	for i := 0; i < n; i++ {
		el := list.Index(i)
		out = append(out, guard.Input{
			Type:    el.Get("type").String(),
			Checked: el.Get("checked").Truthy(),
		})
	}
	return out
}

func isMissing(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}
