package fileserver_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	verrors "github.com/opendap-go/varselect/internal/errors"
	"github.com/opendap-go/varselect/internal/fileserver"
)

var (
	oldTime = time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	newTime = time.Date(2021, 6, 7, 8, 9, 10, 0, time.UTC)
)

// newTree creates:
//
//	data/a.nc        "netcdf"
//	data/b10.csv
//	data/b2.csv
//	data/a b.nc
//	data/sub/
//	data/secret.txt
//	secret/x.nc
//	.static/style.css
func newTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write := func(rel, content string) {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	write("data/a.nc", "netcdf")
	write("data/b10.csv", "")
	write("data/b2.csv", "1,2")
	write("data/a b.nc", "x")
	write("data/secret.txt", "hidden")
	write("secret/x.nc", "x")
	write(".static/style.css", "body{}")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data", "sub"), 0o755))

	for _, rel := range []string{"data/b10.csv", "data/b2.csv", "data/a b.nc", "data/secret.txt"} {
		require.NoError(t, os.Chtimes(filepath.Join(root, filepath.FromSlash(rel)), oldTime, oldTime))
	}
	require.NoError(t, os.Chtimes(filepath.Join(root, "data", "a.nc"), newTime, newTime))
	require.NoError(t, os.Chtimes(filepath.Join(root, "data", "sub"), oldTime, oldTime))
	require.NoError(t, os.Chtimes(filepath.Join(root, "data"), oldTime, oldTime))
	return root
}

func newServer(t *testing.T, cfg fileserver.Config) *fileserver.Server {
	t.Helper()
	if cfg.Root == "" {
		cfg.Root = newTree(t)
	}
	s, err := fileserver.New(cfg, fileserver.WithVersion("test"))
	require.NoError(t, err)
	return s
}

func do(s http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestNewMissingRoot(t *testing.T) {
	_, err := fileserver.New(fileserver.Config{Root: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)

	var ve *verrors.Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "E202", ve.Code)
}

func TestNewRootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := fileserver.New(fileserver.Config{Root: file})
	require.Error(t, err)
}

func TestServeFile(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	rec := do(s, http.MethodGet, "/data/a.nc")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "netcdf", rec.Body.String())
	assert.Equal(t, newTime.Format(http.TimeFormat), rec.Header().Get("Last-Modified"))
}

func TestServeFileHead(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	rec := do(s, http.MethodHead, "/data/a.nc")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	rec := do(s, http.MethodPost, "/data/a.nc")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDirectoryRedirect(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	rec := do(s, http.MethodGet, "/data?sort=name")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/data/?sort=name", rec.Header().Get("Location"))

	rec = do(s, http.MethodGet, "/data/sub")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/data/sub/", rec.Header().Get("Location"))
}

func TestIndex(t *testing.T) {
	s := newServer(t, fileserver.Config{
		Filter:     regexp.MustCompile(`^secret`),
		Extensions: []string{".nc", "CSV"},
	})

	rec := do(s, http.MethodGet, "/data/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, newTime.Format(http.TimeFormat), rec.Header().Get("Last-Modified"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "<title>Index of /data/</title>")
	assert.Contains(t, body, `href="sub/"`)
	assert.Contains(t, body, `href="a%20b.nc"`)
	assert.Contains(t, body, "6 bytes")
	assert.Contains(t, body, "empty")
	assert.Contains(t, body, "supported")
	assert.Contains(t, body, `href="../"`)
	assert.NotContains(t, body, "secret.txt")

	// natural order: a b.nc, a.nc, b2.csv, b10.csv
	ia := strings.Index(body, ">a b.nc<")
	ib := strings.Index(body, ">a.nc<")
	i2 := strings.Index(body, ">b2.csv<")
	i10 := strings.Index(body, ">b10.csv<")
	require.True(t, ia >= 0 && ib >= 0 && i2 >= 0 && i10 >= 0)
	assert.Less(t, ia, ib)
	assert.Less(t, ib, i2)
	assert.Less(t, i2, i10)
}

func TestIndexRootHasNoParentLink(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	rec := do(s, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Index of /")
	assert.NotContains(t, rec.Body.String(), "Parent directory")
}

func TestIndexHead(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	rec := do(s, http.MethodHead, "/data/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestIndexSkipsBrokenSymlinks(t *testing.T) {
	root := newTree(t)
	if err := os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "data", "dangling.nc")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	s := newServer(t, fileserver.Config{Root: root})

	rec := do(s, http.MethodGet, "/data/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dangling.nc")
}

func TestFilterWithoutRestrict(t *testing.T) {
	s := newServer(t, fileserver.Config{Filter: regexp.MustCompile(`^secret`)})

	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/secret/x.nc").Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/data/secret.txt").Code)
	assert.NotContains(t, do(s, http.MethodGet, "/").Body.String(), "secret/")
}

func TestFilterWithRestrict(t *testing.T) {
	s := newServer(t, fileserver.Config{
		Filter:   regexp.MustCompile(`^secret`),
		Restrict: true,
	})

	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/secret/x.nc").Code)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/secret/").Code)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/data/secret.txt").Code)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/secret/catalog.xml").Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/data/a.nc").Code)
}

func TestStaticAlwaysServed(t *testing.T) {
	s := newServer(t, fileserver.Config{
		Filter:   regexp.MustCompile(`^\.`),
		Restrict: true,
	})

	rec := do(s, http.MethodGet, "/.static/style.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestDataRequestHasNoHandler(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	rec := do(s, http.MethodGet, "/data/a.nc.dds")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no handler for /data/a.nc.dds")
}

func TestCatalog(t *testing.T) {
	s := newServer(t, fileserver.Config{Extensions: []string{".nc"}})

	rec := do(s, http.MethodGet, "/data/catalog.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, fileserver.CatalogNamespace)
	assert.Contains(t, body, `urlPath="data/a.nc"`)
	assert.Contains(t, body, `href="sub/catalog.xml"`)
	assert.Contains(t, body, `supported="true"`)
}

func TestCatalogCustomName(t *testing.T) {
	s := newServer(t, fileserver.Config{Catalog: "thredds.xml"})

	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/thredds.xml").Code)
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/catalog.xml").Code)
}

func TestCatalogMissingDirectory(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/nope/catalog.xml").Code)
}

func TestNotFound(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/data/missing.nc").Code)
}

func TestTraversalRejected(t *testing.T) {
	s := newServer(t, fileserver.Config{})

	for _, target := range []string{"/../etc/passwd", "/data/../../etc/passwd", "/data/%2e%2e/%2e%2e/etc/passwd"} {
		rec := do(s, http.MethodGet, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestMiddlewareApplied(t *testing.T) {
	var seen []string
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = append(seen, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
	s, err := fileserver.New(fileserver.Config{Root: newTree(t)}, fileserver.WithMiddleware(mw))
	require.NoError(t, err)

	do(s, http.MethodGet, "/data/a.nc")
	assert.Equal(t, []string{"/data/a.nc"}, seen)
}
