package vtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendap-go/varselect/pkg/dom"
	"github.com/opendap-go/varselect/pkg/guard"
	"github.com/opendap-go/varselect/pkg/notify"
)

// Harness is a page with a guard attached to it.
type Harness struct {
	Doc      *dom.Document
	Guard    *guard.Guard
	Recorder *notify.Recorder
	Binding  *guard.Binding

	buttonID    string
	containerID string
}

// Result is what one click produced.
type Result struct {
	// Prevented reports whether the default action was prevented.
	Prevented bool
	// Messages are the notifications shown during this click.
	Messages []string
}

// Attach binds a guard with a recording notifier to doc and fails the test
// if binding fails. Guard options are passed to guard.New; the ids default
// to guard.DefaultContainerID and guard.DefaultButtonID.
func Attach(t testing.TB, doc *dom.Document, opts ...guard.Option) *Harness {
	t.Helper()
	return AttachWithIDs(t, doc, guard.DefaultContainerID, guard.DefaultButtonID, opts...)
}

// AttachWithIDs is Attach with explicit container and button ids.
func AttachWithIDs(t testing.TB, doc *dom.Document, containerID, buttonID string, opts ...guard.Option) *Harness {
	t.Helper()
	rec := &notify.Recorder{}
	g := guard.New(rec, opts...)
	b, err := guard.Attach(doc, g, guard.WithContainerID(containerID), guard.WithButtonID(buttonID))
	require.NoError(t, err)
	return &Harness{
		Doc:         doc,
		Guard:       g,
		Recorder:    rec,
		Binding:     b,
		buttonID:    buttonID,
		containerID: containerID,
	}
}

// Click clicks the submit button and reports what happened during the
// click only.
func (h *Harness) Click() Result {
	before := h.Recorder.Count()
	ev := h.Doc.GetElementByID(h.buttonID).Click()
	return Result{
		Prevented: ev.DefaultPrevented(),
		Messages:  h.Recorder.Messages()[before:],
	}
}

// Checkboxes returns the input elements under the container, in document
// order, so tests can change their state between clicks.
func (h *Harness) Checkboxes() []*dom.Node {
	return h.Doc.GetElementByID(h.containerID).GetElementsByTagName("input")
}

// ExpectBlocked asserts that the click showed exactly the guard message and
// prevented submission.
func ExpectBlocked(t testing.TB, r Result) bool {
	t.Helper()
	ok := assert.True(t, r.Prevented, "expected submission to be prevented")
	return assert.Equal(t, []string{guard.Message}, r.Messages) && ok
}

// ExpectAllowed asserts that the click showed nothing and let submission
// proceed.
func ExpectAllowed(t testing.TB, r Result) bool {
	t.Helper()
	ok := assert.False(t, r.Prevented, "expected submission to proceed")
	return assert.Empty(t, r.Messages, "expected no notification") && ok
}
