package vtest

import (
	"github.com/opendap-go/varselect/pkg/dom"
	"github.com/opendap-go/varselect/pkg/guard"
)

// PageBuilder allows fluent construction of test pages.
type PageBuilder struct {
	containerID   string
	buttonID      string
	inputs        []*dom.Node
	withContainer bool
	withButton    bool
}

// NewPage creates a page builder with the default container and button ids.
func NewPage() *PageBuilder {
	return &PageBuilder{
		containerID:   guard.DefaultContainerID,
		buttonID:      guard.DefaultButtonID,
		withContainer: true,
		withButton:    true,
	}
}

// Checkbox adds a checkbox input.
func (b *PageBuilder) Checkbox(checked bool) *PageBuilder {
	return b.Input("checkbox", checked)
}

// Checkboxes adds one checkbox per state.
func (b *PageBuilder) Checkboxes(states ...bool) *PageBuilder {
	for _, s := range states {
		b.Checkbox(s)
	}
	return b
}

// Input adds an input with an arbitrary type attribute.
func (b *PageBuilder) Input(typ string, checked bool) *PageBuilder {
	b.inputs = append(b.inputs, dom.Input(dom.Type(typ), dom.Checked(checked)))
	return b
}

// WithContainerID sets the container id.
func (b *PageBuilder) WithContainerID(id string) *PageBuilder {
	b.containerID = id
	return b
}

// WithButtonID sets the submit button id.
func (b *PageBuilder) WithButtonID(id string) *PageBuilder {
	b.buttonID = id
	return b
}

// WithoutContainer leaves the container out of the page. The inputs are
// placed directly in the form.
func (b *PageBuilder) WithoutContainer() *PageBuilder {
	b.withContainer = false
	return b
}

// WithoutButton leaves the submit button out of the page.
func (b *PageBuilder) WithoutButton() *PageBuilder {
	b.withButton = false
	return b
}

// Build returns the page document:
//
//	<form><div id="tabs">inputs...</div><input type="submit" id="submit"></form>
func (b *PageBuilder) Build() *dom.Document {
	var body []any
	if b.withContainer {
		body = append(body, dom.Div(dom.ID(b.containerID), b.inputs))
	} else {
		body = append(body, b.inputs)
	}
	if b.withButton {
		body = append(body, dom.Input(dom.Type("submit"), dom.ID(b.buttonID), dom.Value("Download")))
	}
	return dom.NewDocument(dom.Form(body...))
}
