// Package frontmatter reads and patches the YAML header block of a note.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const delim = "---"

// ErrMalformed is returned by Merge when a header block is present but is
// not a valid YAML mapping.
var ErrMalformed = errors.New("malformed frontmatter")

// Document is a note split into its header and body
type Document struct {
	// Header is the YAML mapping node, nil when the note has no valid header
	Header *yaml.Node
	// Body is everything after the closing delimiter line
	Body string

	malformed bool
}

// Field is a single key/value pair of a patch
type Field struct {
	Key   string
	Value any
}

// Split separates the leading "---" block from the rest of the note.
// A missing closing delimiter or invalid YAML yields a document with no
// header whose body is the whole input.
func Split(data string) Document {
	block, body, ok := locate(data)
	if !ok {
		return Document{Body: data}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return Document{Body: data, malformed: true}
	}

	// An empty block decodes to a zero node
	if doc.Kind == 0 {
		return Document{Header: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, Body: body}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return Document{Body: data, malformed: true}
	}

	return Document{Header: doc.Content[0], Body: body}
}

// locate finds the header block. The opening delimiter must be the first line.
func locate(data string) (block, body string, ok bool) {
	first, rest, found := strings.Cut(data, "\n")
	if !found || strings.TrimRight(first, " \t\r") != delim {
		return "", "", false
	}

	offset := 0
	for {
		line, next, more := strings.Cut(rest[offset:], "\n")
		if strings.TrimRight(line, " \t\r") == delim {
			return rest[:offset], next, true
		}
		if !more {
			return "", "", false
		}
		offset += len(line) + 1
	}
}

// Value returns the scalar value stored under key
func (d Document) Value(key string) (string, bool) {
	node := d.lookup(key)
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	return node.Value, true
}

// Bool returns the boolean stored under key; anything unparsable is false
func (d Document) Bool(key string) bool {
	v, ok := d.Value(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func (d Document) lookup(key string) *yaml.Node {
	return lookup(d.Header, key)
}

// lookup returns the value node for key in a mapping node
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// Merge applies fields to the header of data. Existing keys are overwritten
// in place, new keys are appended in the order given, and every other key is
// left untouched. A note without a header gets one. An empty patch returns
// data unchanged.
func Merge(data string, fields ...Field) (string, error) {
	if len(fields) == 0 {
		return data, nil
	}

	doc := Split(data)
	if doc.malformed {
		return "", ErrMalformed
	}
	header := doc.Header
	if header == nil {
		header = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}

	for _, f := range fields {
		var value yaml.Node
		if err := value.Encode(f.Value); err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", f.Key, err)
		}

		if existing := lookup(header, f.Key); existing != nil {
			*existing = value
			continue
		}
		header.Content = append(header.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&value,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(header); err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	return delim + "\n" + buf.String() + delim + "\n" + doc.Body, nil
}

// FieldsFromMap converts a map patch to fields in key order
func FieldsFromMap(m map[string]any) []Field {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Key: k, Value: m[k]})
	}
	return fields
}

// ParseValue interprets s as a YAML scalar: "true" becomes a bool, "3" an
// int, and anything that is not a plain scalar stays a string.
func ParseValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	switch v.(type) {
	case nil:
		return s
	case map[string]any, []any:
		return s
	}
	return v
}

// ParseAssignment splits "key=value" into a field
func ParseAssignment(arg string) (Field, error) {
	key, value, ok := strings.Cut(arg, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return Field{}, fmt.Errorf("expected key=value, got %q", arg)
	}
	return Field{Key: key, Value: ParseValue(strings.TrimSpace(value))}, nil
}
