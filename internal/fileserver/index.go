package fileserver

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/opendap-go/varselect/pkg/dom"
)

// timeLayout formats modification times in index pages.
const timeLayout = "2006-01-02 15:04:05"

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request, dir string) {
	l, err := s.list(dir)
	if err != nil {
		s.logger.Error("list directory", "path", dir, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := dom.RenderPage(&buf, s.indexPage(r.URL.Path, l)); err != nil {
		s.logger.Error("render index", "path", dir, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Last-Modified", l.Modified.UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}

// indexPage builds the HTML index of the directory at urlPath.
func (s *Server) indexPage(urlPath string, l *Listing) *dom.Node {
	title := "Index of " + urlPath

	rows := []*dom.Node{
		dom.Tr(dom.Th("Name"), dom.Th("Size"), dom.Th("Last modified"), dom.Th("Data")),
	}
	if urlPath != "/" {
		rows = append(rows, dom.Tr(
			dom.Td(dom.A(dom.Href("../"), "Parent directory")),
			dom.Td(), dom.Td(), dom.Td(),
		))
	}
	for _, d := range l.Dirs {
		rows = append(rows, dom.Tr(
			dom.Class("dir"),
			dom.Td(dom.A(dom.Href(escapeSegment(d)+"/"), d+"/")),
			dom.Td("-"), dom.Td(), dom.Td(),
		))
	}
	for _, f := range l.Files {
		data := ""
		if f.Supported {
			data = "supported"
		}
		rows = append(rows, dom.Tr(
			dom.Class("file"),
			dom.Td(dom.A(dom.Href(escapeSegment(f.Name)), f.Name)),
			dom.Td(f.SizeText()),
			dom.Td(f.Modified.Format(timeLayout)),
			dom.Td(data),
		))
	}

	footer := "varselect"
	if s.version != "" {
		footer += " " + s.version
	}

	return dom.HTML(
		dom.Head(
			dom.Meta(dom.Charset("utf-8")),
			dom.Title(title),
		),
		dom.Body(
			dom.H1(title),
			dom.Table(dom.ID("listing"), rows),
			dom.Hr(),
			dom.P(
				dom.Class("footer"),
				dom.A(dom.Href(s.catalog), "Catalog"),
				" | "+footer,
			),
		),
	)
}

func escapeSegment(name string) string {
	return (&url.URL{Path: name}).EscapedPath()
}
