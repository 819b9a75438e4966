package geometry

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/manhattan/grid"
)

// Description is the YAML form of a geometry:
//
//	nodes: [a, b, c]
//	root: a
//	destination: c
//	streets:
//	  - {from: a, to: b, weight: 2}
//	avenues:
//	  - {from: a, to: c, weight: 1}
//
// Streets are east links, avenues are south links. Names must be unique
// within a description because they are the only way to refer to a node.
type Description struct {
	Nodes       []string `yaml:"nodes"`
	Root        string   `yaml:"root"`
	Destination string   `yaml:"destination"`
	Streets     []Link   `yaml:"streets,omitempty"`
	Avenues     []Link   `yaml:"avenues,omitempty"`
}

// Link is one weighted street or avenue segment.
type Link struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Parse decodes a YAML description held in data.
func Parse(data []byte) (*grid.Graph, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML description from r and builds its graph.
// Unknown fields are rejected. Every failure wraps ErrDescription.
func Decode(r io.Reader) (*grid.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Description
	if err := dec.Decode(&d); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrDescription)
		}
		return nil, fmt.Errorf("%w: %w", ErrDescription, err)
	}

	return d.Graph()
}

// Graph builds the graph described by d.
func (d Description) Graph() (*grid.Graph, error) {
	if len(d.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrDescription)
	}

	b := grid.NewBuilder()
	byName := make(map[string]*grid.Node, len(d.Nodes))
	for _, name := range d.Nodes {
		if name == "" {
			return nil, fmt.Errorf("%w: empty node name", ErrDescription)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrDescription, name)
		}
		byName[name] = b.AddNode(name)
	}
	lookup := func(field, name string) (*grid.Node, error) {
		n, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown node %q", ErrDescription, field, name)
		}
		return n, nil
	}

	for i, l := range d.Streets {
		from, to, err := l.endpoints(fmt.Sprintf("streets[%d]", i), lookup)
		if err != nil {
			return nil, err
		}
		b.Street(from, to, l.Weight)
	}
	for i, l := range d.Avenues {
		from, to, err := l.endpoints(fmt.Sprintf("avenues[%d]", i), lookup)
		if err != nil {
			return nil, err
		}
		b.Avenue(from, to, l.Weight)
	}

	root, err := lookup("root", d.Root)
	if err != nil {
		return nil, err
	}
	dest, err := lookup("destination", d.Destination)
	if err != nil {
		return nil, err
	}

	g, err := b.Root(root).Destination(dest).Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDescription, err)
	}

	return g, nil
}

func (l Link) endpoints(field string, lookup func(field, name string) (*grid.Node, error)) (*grid.Node, *grid.Node, error) {
	from, err := lookup(field+".from", l.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := lookup(field+".to", l.To)
	if err != nil {
		return nil, nil, err
	}

	return from, to, nil
}
