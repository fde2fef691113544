// Package guard blocks submission of a variable-selection form until at
// least one variable is selected.
//
// The rule itself works on plain records, so it does not depend on any UI
// toolkit:
//
//	inputs := []guard.Input{{Type: "checkbox", Checked: false}, {Type: "text"}}
//	guard.AnyChecked(inputs) // false
//
// A Guard applies the rule to a click: when no checkbox is checked it
// notifies the user with Message and then prevents the event's default
// action, which stops the form from submitting. When at least one checkbox
// is checked it does nothing and the submission goes ahead.
//
//	g := guard.New(notifier, guard.WithLogger(logger))
//	binding, err := guard.Attach(doc, g)
//	if err != nil {
//	    return err // container or button missing; nothing was registered
//	}
//	defer binding.Detach()
//
// Attach is called once by the hosting page's bootstrap code. Each click
// re-reads the live checkbox state; nothing is remembered between clicks.
//
// Inputs whose type is "checkbox" in any letter case take part in the rule.
// A container with no checkboxes blocks submission exactly like one where
// every checkbox is unchecked.
package guard
