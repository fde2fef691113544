// Package vtest provides testing helpers for the submission guard.
//
// It builds small variable-selection pages, attaches a guard backed by a
// recording notifier, clicks the submit button and asserts on the outcome.
//
// # Quick Start
//
//	func TestNothingSelected(t *testing.T) {
//	    h := vtest.Attach(t, vtest.NewPage().Checkbox(false).Build())
//	    vtest.ExpectBlocked(t, h.Click())
//	}
//
// # Page Builder
//
//	doc := vtest.NewPage().
//	    Checkboxes(false, true, false).
//	    Input("text", false).
//	    WithContainerID("vars").
//	    Build()
//
// Pages always contain the container and the submit button unless
// WithoutContainer or WithoutButton is used to test binding failures.
package vtest
