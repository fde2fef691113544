package dom

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"nil", nil, ""},
		{"text escaped", Text(`a<b>&"c"'`), "a&lt;b&gt;&amp;&#34;c&#34;&#39;"},
		{"raw", Raw("<b>x</b>"), "<b>x</b>"},
		{"fragment", Fragment(Text("a"), nil, Text("b")), "ab"},
		{"void element", Input(Type("checkbox"), Name("sst")), `<input name="sst" type="checkbox">`},
		{"boolean true", Input(Checked(true)), `<input checked>`},
		{"boolean false", Input(Checked(false)), `<input>`},
		{"sorted attributes", A(Href("/x"), Class("c")), `<a class="c" href="/x"></a>`},
		{"attribute escaping", Div(Attribute("data-v", "a\"b\n\t<")), `<div data-v="a&#34;b&#10;&#9;&lt;"></div>`},
		{"checked written as string", Input(Attribute("checked", "checked")), `<input checked="checked">`},
		{"empty attribute skipped", Div(Class()), `<div></div>`},
		{"non-string attribute", Td(Attribute("colspan", 3)), `<td colspan="3"></td>`},
		{"nested", Ul(Li("one"), Li("two")), `<ul><li>one</li><li>two</li></ul>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderToString(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderSkipsListeners(t *testing.T) {
	got, err := RenderToString(Button(ID("submit"), OnClick(func(*Event) {}), "Go"))
	require.NoError(t, err)
	assert.Equal(t, `<button id="submit">Go</button>`, got)
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, HTML(Head(Title("t")), Body())))
	assert.Equal(t, "<!DOCTYPE html><html><head><title>t</title></head><body></body></html>", buf.String())
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := RenderToString(&Node{Kind: Kind(99)})
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestRenderPropagatesWriteErrors(t *testing.T) {
	assert.Error(t, Render(failingWriter{}, Div("x")))
	assert.Error(t, RenderPage(failingWriter{}, Div()))
}
