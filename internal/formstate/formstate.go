// Package formstate loads snapshots of a variable-selection form so the
// submission guard can be evaluated outside a browser.
package formstate

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	verrors "github.com/opendap-go/varselect/internal/errors"
	"github.com/opendap-go/varselect/pkg/dom"
	"github.com/opendap-go/varselect/pkg/guard"
)

// Snapshot is the state of a form at the moment of a click.
//
//	container: tabs
//	button: submit
//	inputs:
//	  - {type: checkbox, checked: true}
//	  - {type: text}
type Snapshot struct {
	Container string        `yaml:"container"`
	Button    string        `yaml:"button"`
	Inputs    []guard.Input `yaml:"inputs"`
}

// Option configures how a snapshot is read.
type Option func(*defaults)

type defaults struct {
	container string
	button    string
}

// WithDefaultIDs sets the ids used when the snapshot names none. Empty
// arguments keep the guard defaults.
func WithDefaultIDs(container, button string) Option {
	return func(d *defaults) {
		if container != "" {
			d.container = container
		}
		if button != "" {
			d.button = button
		}
	}
}

// Load reads a snapshot file.
func Load(path string, opts ...Option) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, verrors.New("E301").WithDetailf("read %s", path).Wrap(err)
	}
	s, err := Parse(data, opts...)
	if err != nil {
		var ve *verrors.Error
		if errors.As(err, &ve) && ve.Detail == "" {
			ve.Detail = path
		}
		return nil, err
	}
	return s, nil
}

// Parse decodes a YAML (or JSON) snapshot. Unknown fields are rejected.
// Missing ids fall back to WithDefaultIDs, then to the guard defaults.
func Parse(data []byte, opts ...Option) (*Snapshot, error) {
	d := defaults{container: guard.DefaultContainerID, button: guard.DefaultButtonID}
	for _, opt := range opts {
		opt(&d)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, verrors.New("E301").WithDetail("empty document")
		}
		return nil, verrors.FromError(err, "E301")
	}
	if s.Container == "" {
		s.Container = d.container
	}
	if s.Button == "" {
		s.Button = d.button
	}
	return &s, nil
}

// Document builds the form page for the snapshot:
//
//	<form><div id=container>inputs...</div><input type="submit" id=button></form>
func (s *Snapshot) Document() *dom.Document {
	inputs := make([]*dom.Node, 0, len(s.Inputs))
	for _, in := range s.Inputs {
		inputs = append(inputs, dom.Input(dom.Type(in.Type), dom.Checked(in.Checked)))
	}
	return dom.NewDocument(dom.Form(
		dom.Div(dom.ID(s.Container), inputs),
		dom.Input(dom.Type("submit"), dom.ID(s.Button), dom.Value("Download")),
	))
}

// Options returns the guard binding options for the snapshot's ids.
func (s *Snapshot) Options() []guard.BindOption {
	return []guard.BindOption{
		guard.WithContainerID(s.Container),
		guard.WithButtonID(s.Button),
	}
}
