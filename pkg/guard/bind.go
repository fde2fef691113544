package guard

import (
	"errors"

	verrors "github.com/opendap-go/varselect/internal/errors"
	"github.com/opendap-go/varselect/pkg/dom"
)

const (
	// DefaultContainerID is the id of the element holding the checkboxes.
	DefaultContainerID = "tabs"
	// DefaultButtonID is the id of the element whose click submits the form.
	DefaultButtonID = "submit"
)

// ErrElementNotFound is returned by Attach when the container or the button
// is missing from the document.
var ErrElementNotFound = errors.New("element not found")

// BindOption configures Attach.
type BindOption func(*bindConfig)

type bindConfig struct {
	containerID string
	buttonID    string
}

// WithContainerID overrides DefaultContainerID.
func WithContainerID(id string) BindOption {
	return func(c *bindConfig) { c.containerID = id }
}

// WithButtonID overrides DefaultButtonID.
func WithButtonID(id string) BindOption {
	return func(c *bindConfig) { c.buttonID = id }
}

// Binding is a guard attached to one button.
type Binding struct {
	button   *dom.Node
	listener dom.ListenerID
}

// Attach registers g as a click listener on the button of doc. Both the
// container and the button must exist; otherwise nothing is registered and
// the returned error matches ErrElementNotFound.
//
// The container is looked up again on every click and all of its descendant
// input elements are read at that moment. If it has been removed since
// Attach, the click is treated as having no checkboxes.
func Attach(doc *dom.Document, g *Guard, opts ...BindOption) (*Binding, error) {
	cfg := bindConfig{
		containerID: DefaultContainerID,
		buttonID:    DefaultButtonID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if doc.GetElementByID(cfg.containerID) == nil {
		return nil, verrors.New("E101").
			WithDetailf("no element with id %q", cfg.containerID).
			Wrap(ErrElementNotFound)
	}
	button := doc.GetElementByID(cfg.buttonID)
	if button == nil {
		return nil, verrors.New("E102").
			WithDetailf("no element with id %q", cfg.buttonID).
			Wrap(ErrElementNotFound)
	}

	id := button.AddEventListener("click", func(ev *dom.Event) {
		g.Check(ev, Inputs(doc.GetElementByID(cfg.containerID)))
	})
	return &Binding{button: button, listener: id}, nil
}

// Detach removes the listener. Calling it more than once is harmless.
func (b *Binding) Detach() {
	if b == nil || b.button == nil {
		return
	}
	b.button.RemoveEventListener("click", b.listener)
	b.button = nil
}

// Inputs reads every input element below container, in document order.
// A nil container has no inputs.
func Inputs(container *dom.Node) []Input {
	nodes := container.GetElementsByTagName("INPUT")
	inputs := make([]Input, 0, len(nodes))
	for _, n := range nodes {
		inputs = append(inputs, Input{Type: n.TypeAttr(), Checked: n.IsChecked()})
	}
	return inputs
}
