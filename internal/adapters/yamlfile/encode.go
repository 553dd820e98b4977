package yamlfile

import (
	"bytes"
	"fmt"

	"github.com/corey/acro/internal/ports"
	"gopkg.in/yaml.v3"
)

// Encode renders the catalog as a mapping of category -> entries, categories
// and entries in catalog order, entry fields in canonical order. Absent fields
// are omitted; explicit empty lists are kept as [].
func Encode(cat *ports.Catalog) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	if cat != nil {
		for _, c := range cat.Categories {
			seq := &yaml.Node{Kind: yaml.SequenceNode}
			for _, e := range c.Entries {
				seq.Content = append(seq.Content, entryNode(e))
			}
			root.Content = append(root.Content, str(c.Name), seq)
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

func entryNode(e *ports.Entry) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range ports.Fields {
		if f.IsList() {
			list := e.Aliases
			if f == ports.FieldRelatedAcronyms {
				list = e.RelatedAcronyms
			}
			if list == nil {
				continue
			}
			seq := &yaml.Node{Kind: yaml.SequenceNode}
			if len(list) == 0 {
				seq.Style = yaml.FlowStyle
			}
			for _, item := range list {
				seq.Content = append(seq.Content, str(item))
			}
			m.Content = append(m.Content, str(string(f)), seq)
			continue
		}
		if text, ok := ports.FieldText(e, f); ok {
			m.Content = append(m.Content, str(string(f)), str(text))
		}
	}
	return m
}

func str(s string) *yaml.Node {
	n := &yaml.Node{}
	n.SetString(s)
	return n
}
