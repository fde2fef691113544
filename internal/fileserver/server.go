package fileserver

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"

	verrors "github.com/opendap-go/varselect/internal/errors"
)

// ErrOutsideRoot reports a request path that does not resolve inside the
// served root.
var ErrOutsideRoot = errors.New("fileserver: path outside root")

// StaticDir is the top-level directory whose files bypass the filter.
const StaticDir = ".static"

// DefaultCatalog is the catalog file name used when Config.Catalog is empty.
const DefaultCatalog = "catalog.xml"

// Config describes the served tree.
type Config struct {
	// Root is the directory that is served.
	Root string

	// Catalog is the file name answered with an XML listing of its directory.
	Catalog string

	// Filter hides matching names. Nil disables filtering.
	Filter *regexp.Regexp

	// Restrict refuses direct requests whose path has a filtered segment.
	Restrict bool

	// Extensions mark files as supported in listings. Case-insensitive,
	// with the leading dot.
	Extensions []string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMiddleware adds middleware to the server's router.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(s *Server) {
		s.middleware = append(s.middleware, mw...)
	}
}

// WithVersion sets the version shown in index page footers.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// Server serves a directory tree over HTTP.
type Server struct {
	root       string
	catalog    string
	filter     *regexp.Regexp
	restrict   bool
	extensions map[string]bool
	version    string

	logger     *slog.Logger
	middleware []func(http.Handler) http.Handler
	router     chi.Router
}

// New creates a Server for cfg. The root must be an existing directory.
func New(cfg Config, opts ...Option) (*Server, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, verrors.New("E202").WithDetailf("root %q", cfg.Root).Wrap(err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, verrors.New("E202").WithDetailf("root %q", cfg.Root).Wrap(err)
	}
	if !info.IsDir() {
		return nil, verrors.New("E202").WithDetailf("root %q is not a directory", cfg.Root)
	}

	s := &Server{
		root:       root,
		catalog:    cfg.Catalog,
		filter:     cfg.Filter,
		restrict:   cfg.Restrict,
		extensions: make(map[string]bool, len(cfg.Extensions)),
		logger:     slog.Default(),
	}
	if s.catalog == "" {
		s.catalog = DefaultCatalog
	}
	for _, ext := range cfg.Extensions {
		ext = strings.ToLower(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.extensions[ext] = true
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.middleware...)
	r.Get("/*", s.serve)
	r.Head("/*", s.serve)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})
	s.router = r

	return s, nil
}

// Root returns the absolute path of the served directory.
func (s *Server) Root() string {
	return s.root
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	urlPath := r.URL.Path
	full, err := s.resolve(urlPath)
	if err != nil {
		s.logger.Debug("request outside root", "path", urlPath)
		http.NotFound(w, r)
		return
	}

	info, err := os.Stat(full)
	if err == nil {
		rel := s.rel(full)
		if info.IsDir() {
			s.serveDir(w, r, full, rel)
			return
		}
		if isStatic(rel) {
			setStaticCache(w, rel)
		} else if s.restrict && s.isHidden(rel, true) {
			http.NotFound(w, r)
			return
		}
		s.serveFile(w, r, full, info)
		return
	}

	if ext := filepath.Ext(full); ext != "" {
		if _, err := os.Stat(strings.TrimSuffix(full, ext)); err == nil {
			http.Error(w, fmt.Sprintf("no handler for %s", urlPath), http.StatusNotFound)
			return
		}
	}

	if path.Base(urlPath) == s.catalog && !strings.HasSuffix(urlPath, "/") {
		dir := filepath.Dir(full)
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			rel := s.rel(dir)
			if s.restrict && s.isHidden(rel, true) {
				http.NotFound(w, r)
				return
			}
			s.serveCatalog(w, r, dir, path.Dir(urlPath))
			return
		}
	}

	http.NotFound(w, r)
}

func (s *Server) serveDir(w http.ResponseWriter, r *http.Request, dir, rel string) {
	if s.restrict && s.isHidden(rel, true) {
		http.NotFound(w, r)
		return
	}
	if !strings.HasSuffix(r.URL.Path, "/") {
		target := r.URL.Path + "/"
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	s.serveIndex(w, r, dir)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, full string, info fs.FileInfo) {
	f, err := os.Open(full)
	if err != nil {
		s.logger.Warn("open file", "path", full, "error", err)
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// resolve maps a URL path to a file system path inside the root.
func (s *Server) resolve(urlPath string) (string, error) {
	if strings.IndexByte(urlPath, 0) != -1 || strings.Contains(urlPath, "\\") {
		return "", ErrOutsideRoot
	}
	for _, seg := range strings.Split(urlPath, "/") {
		if seg == ".." {
			return "", ErrOutsideRoot
		}
	}

	clean := path.Clean("/" + urlPath)
	full := filepath.Join(s.root, filepath.FromSlash(clean))
	if full != s.root && !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	return full, nil
}

// rel returns full relative to the root, slash separated; "" for the root.
func (s *Server) rel(full string) string {
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// isHidden reports whether the filter matches rel. A deep match tests
// every segment, otherwise only the last one.
func (s *Server) isHidden(rel string, deep bool) bool {
	if s.filter == nil {
		return false
	}
	if !deep {
		return s.filter.MatchString(path.Base("/" + rel))
	}
	for _, seg := range strings.Split(rel, "/") {
		if s.filter.MatchString(seg) {
			return true
		}
	}
	return false
}

func isStatic(rel string) bool {
	return strings.HasPrefix(rel, StaticDir+"/")
}
