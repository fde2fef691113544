// Package errors provides structured, actionable error messages for varselect.
//
// Each error carries a code from the registry, a category, a short message,
// an optional longer detail and a suggestion for fixing it. The wrapped
// cause stays reachable through errors.Is and errors.As.
//
// # Error Categories
//
//   - guard: the submission guard could not be bound to a document
//   - config: invalid configuration (filter regex, root directory)
//   - server: file server failures
//   - formstate: unreadable or invalid form snapshot files
//   - cli: command line usage errors
//
// # Usage
//
//	err := errors.New("E201").
//	    WithDetail(`file_filter_regex "[" does not compile`).
//	    Wrap(cause)
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// ERROR E201: Invalid file filter
//	//
//	//   file_filter_regex "[" does not compile
//	//
//	//   Hint: Check the regular expression syntax in file_filter_regex.
package errors
