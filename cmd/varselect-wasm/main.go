//go:build js && wasm

// Command varselect-wasm attaches the submission guard to the page that
// loads it. Build with:
//
//	GOOS=js GOARCH=wasm go build -o .static/js/varselect.wasm ./cmd/varselect-wasm
package main

import (
	"log/slog"
	"syscall/js"

	"github.com/opendap-go/varselect/pkg/guard/jsguard"
)

func main() {
	cfg := jsguard.Config{EmitEvents: true}
	attach := func() {
		if _, err := jsguard.Attach(cfg); err != nil {
			slog.Warn("submission guard not attached", "error", err)
		}
	}

	// Bind once the document is parsed.
	doc := js.Global().Get("document")
	if doc.Get("readyState").String() == "loading" {
		var ready js.Func
		ready = js.FuncOf(func(js.Value, []js.Value) any {
			attach()
			ready.Release()
			return nil
		})
		doc.Call("addEventListener", "DOMContentLoaded", ready, map[string]any{"once": true})
	} else {
		attach()
	}

	select {}
}
