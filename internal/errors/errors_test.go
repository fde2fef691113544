package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"container missing", "E101", "Form container not found", CategoryGuard},
		{"button missing", "E102", "Submit button not found", CategoryGuard},
		{"bad filter", "E201", "Invalid file filter", CategoryConfig},
		{"bad form state", "E301", "Invalid form state", CategoryFormState},
		{"server failed", "E401", "HTTP server failed", CategoryServer},
		{"unknown code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.wantCat, err.Category)
		})
	}
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "E101: Form container not found", New("E101").Error())
	assert.Equal(t, `E101: Form container not found: id "tabs"`, New("E101").WithDetail(`id "tabs"`).Error())
	assert.Equal(t, "root is /x", Newf(CategoryConfig, "root is %s", "/x").Error())
}

func TestWrapAndUnwrap(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := New("E102").Wrap(sentinel)

	assert.ErrorIs(t, err, sentinel)

	wrapped := fmt.Errorf("attach: %w", err)
	var target *Error
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "E102", target.Code)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil, "E301"))

	cause := stderrors.New("yaml: line 2")
	err := FromError(cause, "E301")
	assert.Equal(t, CategoryFormState, err.Category)
	assert.ErrorIs(t, err, cause)
}

func TestRegistryTemplatesComplete(t *testing.T) {
	require.NotEmpty(t, registry)
	for code, tmpl := range registry {
		assert.NotEmpty(t, tmpl.Category, code)
		assert.NotEmpty(t, tmpl.Message, code)
		assert.NotEmpty(t, tmpl.Suggestion, code)
	}
}

func TestWithSuggestion(t *testing.T) {
	err := Newf(CategoryCLI, "invalid --addr %q", "x").WithSuggestion("Use host:port.")
	assert.Equal(t, "Use host:port.", err.Suggestion)
	assert.Equal(t, CategoryCLI, err.Category)
}

func TestFormatWithoutColors(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E201").
		WithDetailf("file_filter_regex %q does not compile", "[").
		Wrap(stderrors.New("missing closing ]"))

	out := err.Format()
	assert.Contains(t, out, "ERROR E201: Invalid file filter")
	assert.Contains(t, out, `file_filter_regex "[" does not compile`)
	assert.Contains(t, out, "Cause: missing closing ]")
	assert.Contains(t, out, "Hint: Check the regular expression syntax")
	assert.NotContains(t, out, "\033[")

	assert.Equal(t, `E201: Invalid file filter: file_filter_regex "[" does not compile (missing closing ])`, err.FormatCompact())
}

func TestFormatWithColors(t *testing.T) {
	EnableColors()
	out := Newf(CategoryCLI, "bad flag").Format()
	assert.Contains(t, out, colorRed)
	assert.Contains(t, out, "bad flag")
}

func TestWrapText(t *testing.T) {
	assert.Nil(t, wrapText("", 10))
	assert.Equal(t, []string{"short"}, wrapText("short", 10))

	lines := wrapText(strings.Repeat("word ", 30), 20)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 20)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, fmt.Errorf("load: %w", New("E202")))
	assert.Contains(t, buf.String(), "ERROR E202: Root directory not found")

	buf.Reset()
	Fprint(&buf, stderrors.New("plain"))
	assert.Equal(t, "\nERROR: plain\n\n", buf.String())
}
