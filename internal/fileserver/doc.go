// Package fileserver serves a directory tree the way a file-based OPeNDAP
// server does: plain files, HTML directory indexes and XML catalogs.
//
// Request handling, in order:
//
//   - an existing file is served, unless it is filtered and the server
//     restricts filtered paths; files under .static/ are always served
//   - an existing directory redirects to its slash-terminated URL, then
//     answers with an index of its entries
//   - a path whose extension-stripped name exists is a data request; no
//     data handlers are installed, so it answers 404
//   - <dir>/<catalog> answers with an XML listing of <dir>
//   - anything else is 404
//
// The filter is a regular expression matched against single path segments.
// Index listings always hide matching entries; direct requests are refused
// only when Restrict is set, and then any matching segment of the path
// refuses the request.
package fileserver
