// Package notify provides the user-facing notification capabilities the
// submission guard reports through.
//
// # Emitted Alerts
//
// Alert dispatches a custom event instead of opening a dialog, so the host
// page decides how to present it:
//
//	window.addEventListener("varselect:alert", (e) => {
//	    const { level, message } = e.detail;
//	    showBanner(level, message);
//	});
//
// Any value with an Emit(name, data) method can carry alerts; the browser
// binding uses one that calls window.dispatchEvent.
//
// # Other Notifiers
//
// Recorder keeps messages in memory for tests and for the check command,
// Writer prints them line by line, Log sends them to a slog.Logger and
// Multi fans a message out to several notifiers.
package notify
