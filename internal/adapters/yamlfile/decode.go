package yamlfile

import (
	"bytes"
	"fmt"

	"github.com/corey/acro/internal/domain/catalog"
	"github.com/corey/acro/internal/ports"
	"gopkg.in/yaml.v3"
)

// Decode parses catalog YAML into its raw shape. The root may be a mapping of
// category -> entries, a bare sequence of entries, or empty. Category values
// that are not entries are reported as ports.RawInvalid and left for the
// normalizer to reject; entry-level defects fail here.
func Decode(data []byte) (ports.RawCatalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return ports.RawMapping{}, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Content) == 0 {
		return ports.RawMapping{}, nil
	}

	root := resolve(doc.Content[0])
	switch root.Kind {
	case yaml.MappingNode:
		return decodeMapping(root)
	case yaml.SequenceNode:
		entries, err := decodeEntries(catalog.DefaultCategory, root)
		if err != nil {
			return nil, err
		}
		return ports.RawList(entries), nil
	case yaml.ScalarNode:
		if isNull(root) {
			return ports.RawMapping{}, nil
		}
	}
	return nil, &catalog.MalformedCatalogError{
		Reason: fmt.Sprintf("document root is a %s, want a mapping or a sequence", kindName(root)),
	}
}

func decodeMapping(root *yaml.Node) (ports.RawMapping, error) {
	out := make(ports.RawMapping, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := resolve(root.Content[i]).Value
		val := resolve(root.Content[i+1])

		var value ports.RawValue
		switch val.Kind {
		case yaml.SequenceNode:
			entries, err := decodeEntries(name, val)
			if err != nil {
				return nil, err
			}
			value = ports.RawEntries(entries)
		case yaml.MappingNode:
			e, err := decodeEntry(val)
			if err != nil {
				return nil, &catalog.MalformedCatalogError{Category: name, Reason: err.Error()}
			}
			value = ports.RawSingle{Entry: e}
		default:
			value = ports.RawInvalid{Kind: kindName(val)}
		}
		out = append(out, ports.RawBucket{Name: name, Value: value})
	}
	return out, nil
}

// decodeEntries reads a sequence of entry mappings. A null item (an empty
// "- " line) is kept as a nil placeholder for the normalizer to drop.
func decodeEntries(category string, seq *yaml.Node) ([]*ports.Entry, error) {
	entries := make([]*ports.Entry, 0, len(seq.Content))
	for i, item := range seq.Content {
		item = resolve(item)
		if isNull(item) {
			entries = append(entries, nil)
			continue
		}
		if item.Kind != yaml.MappingNode {
			return nil, &catalog.MalformedCatalogError{
				Category: category,
				Reason:   fmt.Sprintf("item %d (line %d) is a %s, want an entry mapping", i+1, item.Line, kindName(item)),
			}
		}
		e, err := decodeEntry(item)
		if err != nil {
			return nil, &catalog.MalformedCatalogError{
				Category: category,
				Reason:   fmt.Sprintf("item %d: %v", i+1, err),
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// decodeEntry reads one entry mapping. Null values count as absent. Unknown
// keys are ignored.
func decodeEntry(m *yaml.Node) (*ports.Entry, error) {
	e := &ports.Entry{}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := resolve(m.Content[i]).Value
		val := resolve(m.Content[i+1])

		f, err := ports.ParseField(key)
		if err != nil {
			continue
		}

		if f.IsList() {
			list, err := decodeList(val)
			if err != nil {
				return nil, fmt.Errorf("%s (line %d): %w", key, val.Line, err)
			}
			if f == ports.FieldAliases {
				e.Aliases = list
			} else {
				e.RelatedAcronyms = list
			}
			continue
		}

		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s (line %d): got a %s, want text", key, val.Line, kindName(val))
		}
		if isNull(val) {
			continue
		}
		switch f {
		case ports.FieldAcronym:
			e.Acronym = val.Value
		case ports.FieldDefinition:
			e.Definition = ports.Text(val.Value)
		case ports.FieldCategory:
			e.Category = ports.Text(val.Value)
		case ports.FieldDescription:
			e.Description = ports.Text(val.Value)
		case ports.FieldOrigin:
			e.Origin = ports.Text(val.Value)
		case ports.FieldNotes:
			e.Notes = ports.Text(val.Value)
		}
	}
	return e, nil
}

// decodeList accepts a sequence of scalars, a single scalar (a one-item list)
// or null (absent).
func decodeList(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("list item is a %s, want text", kindName(item))
			}
			if isNull(item) {
				continue
			}
			out = append(out, item.Value)
		}
		return out, nil
	case yaml.ScalarNode:
		if isNull(n) {
			return nil, nil
		}
		return []string{n.Value}, nil
	}
	return nil, fmt.Errorf("got a %s, want a list", kindName(n))
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		if isNull(n) {
			return "null"
		}
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "document"
}
