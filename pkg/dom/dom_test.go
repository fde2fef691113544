package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindRaw, "Raw"},
		{Kind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestElementArgs(t *testing.T) {
	var nilNode *Node
	n := Div(
		nil,
		ID("main"),
		[]Attr{Class("a", "b"), {}},
		Span("hi"),
		nilNode,
		[]*Node{P(), nil},
		"tail",
	)

	assert.Equal(t, "div", n.Tag)
	assert.Equal(t, "main", n.ID())
	assert.Equal(t, "a b", n.Props["class"])
	require.Len(t, n.Children, 3)
	assert.Equal(t, "span", n.Children[0].Tag)
	assert.Equal(t, "p", n.Children[1].Tag)
	assert.Equal(t, KindText, n.Children[2].Kind)
}

func TestElementLowercasesTag(t *testing.T) {
	n := Element("INPUT", Type("CheckBox"))
	assert.Equal(t, "input", n.Tag)
	assert.Equal(t, "CheckBox", n.TypeAttr(), "type attribute keeps its case")
	assert.True(t, n.Is("Input"))
	assert.False(t, Text("input").Is("input"))
}

func TestCheckedState(t *testing.T) {
	n := Input(Type("checkbox"))
	assert.False(t, n.IsChecked())

	n.SetChecked(true)
	assert.True(t, n.IsChecked())

	var empty Node
	empty.SetChecked(true)
	assert.True(t, empty.IsChecked())

	var nilNode *Node
	assert.False(t, nilNode.IsChecked())
	assert.Equal(t, "", nilNode.ID())
}

func TestCheckedAttributeForms(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"html form", "checked", true},
		{"empty string", "", true},
		{"string false", "False", false},
		{"other value", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Input(Type("checkbox"), Attribute("checked", tt.value))
			assert.Equal(t, tt.want, n.IsChecked())
		})
	}
	assert.False(t, Input(Type("checkbox"), Attribute("checked", nil)).IsChecked())
}

func TestGetElementByID(t *testing.T) {
	doc := NewDocument(
		Div(ID("outer"),
			Div(ID("tabs"), Input(ID("a"))),
			Button(ID("submit")),
		),
	)

	require.NotNil(t, doc.GetElementByID("tabs"))
	assert.Equal(t, "button", doc.GetElementByID("submit").Tag)
	assert.Equal(t, "input", doc.GetElementByID("a").Tag)
	assert.Nil(t, doc.GetElementByID("missing"))
	assert.Nil(t, doc.GetElementByID(""))

	var nilDoc *Document
	assert.Nil(t, nilDoc.GetElementByID("tabs"))
}

func TestGetElementByIDFirstInDocumentOrder(t *testing.T) {
	first := Span(ID("dup"), "first")
	doc := NewDocument(Div(Div(first), Span(ID("dup"), "second")))
	assert.Same(t, first, doc.GetElementByID("dup"))
}

func TestNewDocumentWrapsSeveralRoots(t *testing.T) {
	doc := NewDocument(Div(ID("a")), Div(ID("b")))
	assert.Equal(t, KindFragment, doc.Root.Kind)
	assert.NotNil(t, doc.GetElementByID("b"))
}

func TestGetElementsByTagName(t *testing.T) {
	a := Input(ID("a"))
	b := Input(ID("b"))
	c := Input(ID("c"))
	root := Div(ID("tabs"),
		a,
		Div(Label(b), Span("text")),
		c,
	)

	got := root.GetElementsByTagName("INPUT")
	assert.Equal(t, []*Node{a, b, c}, got)

	assert.Len(t, root.GetElementsByTagName("input"), 3)
	assert.Len(t, root.GetElementsByTagName("select"), 0)
	assert.Len(t, root.GetElementsByTagName("*"), 6)

	// The root itself is not included.
	assert.Empty(t, a.GetElementsByTagName("input"))

	var nilNode *Node
	assert.Empty(t, nilNode.GetElementsByTagName("input"))
}

func TestDispatchOrderAndPreventDefault(t *testing.T) {
	btn := Button(ID("submit"))
	var calls []string

	btn.AddEventListener("click", func(ev *Event) {
		calls = append(calls, "first")
		assert.Same(t, btn, ev.Target)
	})
	btn.AddEventListener("click", func(ev *Event) {
		calls = append(calls, "second")
		ev.PreventDefault()
	})
	btn.AddEventListener("submit", func(*Event) {
		calls = append(calls, "submit")
	})

	ev := btn.Click()
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, "click", ev.Type)
}

func TestClickWithoutListeners(t *testing.T) {
	ev := Button().Click()
	assert.False(t, ev.DefaultPrevented())
}

func TestRemoveEventListener(t *testing.T) {
	btn := Button()
	count := 0
	id := btn.AddEventListener("click", func(*Event) { count++ })
	btn.AddEventListener("click", func(*Event) { count += 10 })

	assert.Equal(t, 0, int(btn.AddEventListener("click", nil)))
	assert.Equal(t, 2, btn.ListenerCount("click"))

	assert.True(t, btn.RemoveEventListener("click", id))
	assert.False(t, btn.RemoveEventListener("click", id))
	assert.False(t, btn.RemoveEventListener("submit", id))

	btn.Click()
	assert.Equal(t, 10, count)
}

func TestListenerAddedDuringDispatchRunsNextTime(t *testing.T) {
	btn := Button()
	count := 0
	btn.AddEventListener("click", func(*Event) {
		btn.AddEventListener("click", func(*Event) { count++ })
	})

	btn.Click()
	assert.Equal(t, 0, count)
	btn.Click()
	assert.Equal(t, 1, count)
}

func TestFactoryEventHandler(t *testing.T) {
	clicked := false
	btn := Button(OnClick(func(*Event) { clicked = true }))
	btn.Click()
	assert.True(t, clicked)

	submitted := false
	f := Form(OnSubmit(func(ev *Event) { submitted = true }))
	f.Dispatch(NewEvent("submit"))
	assert.True(t, submitted)
}
