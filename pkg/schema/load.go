package schema

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// RootKey is the wrapper key schema documents may nest their variable
// mapping under. Bare mappings are accepted too.
const RootKey = "cookiecutter"

// LoadFile reads and parses a schema document from disk.
func LoadFile(path string) (*Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	doc, err := NewDocument(path, raw)
	if err != nil {
		return nil, err
	}
	return Load(doc)
}

// LoadFS reads and parses a schema document from an fs.FS.
func LoadFS(fsys fs.FS, name string) (*Schema, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", name, err)
	}
	doc, err := NewDocument(name, raw)
	if err != nil {
		return nil, err
	}
	return Load(doc)
}

// LoadBytes parses an in-memory schema document. The label stands in for
// a file path in error messages and may be empty.
func LoadBytes(label string, raw []byte) (*Schema, error) {
	doc, err := NewDocument(label, raw)
	if err != nil {
		return nil, err
	}
	return Load(doc)
}

// Load parses a schema document into its ordered variable declarations.
// Documents are JSON objects (comments and trailing commas tolerated) or
// the equivalent YAML mapping; key order is preserved exactly as authored.
func Load(doc Document) (*Schema, error) {
	s, err := Parse(doc.Raw())
	if err != nil {
		return nil, fmt.Errorf("schema: parse %s: %w", doc.Location(), err)
	}
	return s, nil
}

// Parse decodes raw schema bytes. See Load.
func Parse(raw []byte) (*Schema, error) {
	// JSON documents pass through jsonc so authored files may carry
	// comments; YAML input is left untouched.
	if looksLikeJSON(raw) {
		raw = jsonc.ToJSON(raw)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("root must be an object, got %s", nodeKind(mapping))
	}

	// Unwrap {"cookiecutter": {...}} when present.
	if inner, ok := mappingValue(mapping, RootKey); ok && inner.Kind == yaml.MappingNode {
		mapping = inner
	}

	s := &Schema{}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valNode := mapping.Content[i], mapping.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("variable names must be strings, got %s", nodeKind(keyNode))
		}
		value, err := rawFromNode(valNode)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", keyNode.Value, err)
		}
		if keyNode.Value == MarkerPrompts {
			s.Prompts = promptsFromRaw(value)
			continue
		}
		s.Entries = append(s.Entries, Entry{Name: keyNode.Value, Raw: value})
	}
	return s, nil
}

func rawFromNode(node *yaml.Node) (RawValue, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return rawFromNode(node.Alias)
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			return RawValue{Kind: KindNull}, nil
		case "!!bool":
			return Boolean(node.Value == "true" || node.Value == "True" || node.Value == "TRUE"), nil
		case "!!int", "!!float":
			return Number(node.Value), nil
		default:
			return String(node.Value), nil
		}
	case yaml.SequenceNode:
		list := make([]RawValue, 0, len(node.Content))
		for _, elem := range node.Content {
			v, err := rawFromNode(elem)
			if err != nil {
				return RawValue{}, err
			}
			list = append(list, v)
		}
		return RawValue{Kind: KindList, List: list}, nil
	case yaml.MappingNode:
		dict := &Dict{Fields: make([]Field, 0, len(node.Content)/2)}
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return RawValue{}, fmt.Errorf("object keys must be strings, got %s", nodeKind(keyNode))
			}
			v, err := rawFromNode(valNode)
			if err != nil {
				return RawValue{}, err
			}
			dict.Fields = append(dict.Fields, Field{Name: keyNode.Value, Value: v})
		}
		return RawValue{Kind: KindDict, Dict: dict}, nil
	default:
		return RawValue{}, fmt.Errorf("unsupported node kind %d", node.Kind)
	}
}

func mappingValue(mapping *yaml.Node, key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Kind == yaml.ScalarNode && mapping.Content[i].Value == key {
			return mapping.Content[i+1], true
		}
	}
	return nil, false
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "object"
	default:
		return "unknown"
	}
}

func looksLikeJSON(raw []byte) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '/')
}
