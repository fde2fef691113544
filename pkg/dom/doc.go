// Package dom provides a small in-memory document model for varselect.
//
// A document is a tree of Nodes built with variadic factory functions,
// in the same way pages are assembled on the server:
//
//	doc := dom.NewDocument(
//	    dom.Form(
//	        dom.Div(dom.ID("tabs"),
//	            dom.Input(dom.Type("checkbox"), dom.Name("sst")),
//	            dom.Input(dom.Type("checkbox"), dom.Name("lat"), dom.Checked(true)),
//	        ),
//	        dom.Input(dom.Type("submit"), dom.ID("submit")),
//	    ),
//	)
//
// # Queries
//
// Document.GetElementByID and Node.GetElementsByTagName mirror the browser
// lookups used by page scripts. Tag names compare case-insensitively, so
// "INPUT" and "input" find the same elements.
//
// # Events
//
// Listeners are attached with AddEventListener and run synchronously, in
// registration order, when an Event is dispatched to the node. Click
// dispatches a "click" event and returns it so callers can inspect
// DefaultPrevented. Events do not bubble.
//
// # Rendering
//
// Render and RenderToString serialize a tree to HTML with text and
// attribute escaping. Listeners are never rendered.
package dom
