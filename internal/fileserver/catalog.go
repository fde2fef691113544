package fileserver

import (
	"bytes"
	"encoding/xml"
	"net/http"
	"path"
	"time"
)

// CatalogNamespace is the XML namespace of catalog documents.
const CatalogNamespace = "http://www.unidata.ucar.edu/namespaces/thredds/InvCatalog/v1.0"

// Catalog is the XML listing of one directory.
type Catalog struct {
	XMLName xml.Name         `xml:"catalog"`
	Xmlns   string           `xml:"xmlns,attr"`
	Name    string           `xml:"name,attr"`
	Service CatalogService   `xml:"service"`
	Dataset CatalogContainer `xml:"dataset"`
}

// CatalogService names the access endpoint datasets are served from.
type CatalogService struct {
	Name        string `xml:"name,attr"`
	ServiceType string `xml:"serviceType,attr"`
	Base        string `xml:"base,attr"`
}

// CatalogContainer is the dataset element for the listed directory.
type CatalogContainer struct {
	Name     string           `xml:"name,attr"`
	ID       string           `xml:"ID,attr"`
	Refs     []CatalogRef     `xml:"catalogRef"`
	Datasets []CatalogDataset `xml:"dataset"`
}

// CatalogRef points at the catalog of a subdirectory.
type CatalogRef struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Name  string `xml:"name,attr"`
}

// CatalogDataset is a file of the listed directory.
type CatalogDataset struct {
	Name      string `xml:"name,attr"`
	ID        string `xml:"ID,attr"`
	URLPath   string `xml:"urlPath,attr"`
	Size      int64  `xml:"dataSize"`
	Modified  string `xml:"date"`
	Supported bool   `xml:"supported,attr,omitempty"`
}

// buildCatalog converts a listing of the directory at dirURL.
func (s *Server) buildCatalog(dirURL string, l *Listing) *Catalog {
	dirURL = path.Clean("/" + dirURL)
	c := &Catalog{
		Xmlns: CatalogNamespace,
		Name:  "Catalog of " + dirURL,
		Service: CatalogService{
			Name:        "dap",
			ServiceType: "OpenDAP",
			Base:        "/",
		},
		Dataset: CatalogContainer{
			Name: dirURL,
			ID:   dirURL,
		},
	}
	for _, d := range l.Dirs {
		c.Dataset.Refs = append(c.Dataset.Refs, CatalogRef{
			Href:  escapeSegment(d) + "/" + s.catalog,
			Title: d,
			Name:  d,
		})
	}
	for _, f := range l.Files {
		p := path.Join(dirURL, f.Name)
		c.Dataset.Datasets = append(c.Dataset.Datasets, CatalogDataset{
			Name:      f.Name,
			ID:        p,
			URLPath:   p[1:],
			Size:      f.Size,
			Modified:  f.Modified.UTC().Format(time.RFC3339),
			Supported: f.Supported,
		})
	}
	return c
}

func (s *Server) serveCatalog(w http.ResponseWriter, r *http.Request, dir, dirURL string) {
	l, err := s.list(dir)
	if err != nil {
		s.logger.Error("list directory", "path", dir, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(s.buildCatalog(dirURL, l)); err != nil {
		s.logger.Error("encode catalog", "path", dir, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/xml; charset=utf-8")
	h.Set("Last-Modified", l.Modified.UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}
