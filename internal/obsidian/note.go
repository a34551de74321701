package obsidian

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Note is a markdown document with YAML frontmatter.
type Note struct {
	Frontmatter *Frontmatter
	Body        string
}

// Frontmatter keeps its keys sorted so notes serialize deterministically.
type Frontmatter struct {
	fields map[string]any
	keys   []string
}

// NewFrontmatter creates a new empty Frontmatter.
func NewFrontmatter() *Frontmatter {
	return &Frontmatter{
		fields: make(map[string]any),
		keys:   []string{},
	}
}

// ParseMarkdown splits content into frontmatter and body.
// Content without a frontmatter block is all body.
func ParseMarkdown(content []byte) (*Note, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	if !strings.HasPrefix(text, "---\n") {
		return &Note{Frontmatter: NewFrontmatter(), Body: text}, nil
	}

	rest := text[len("---\n"):]
	var raw, body string
	switch {
	case strings.HasPrefix(rest, "---\n"):
		body = rest[len("---\n"):]
	default:
		end := strings.Index(rest, "\n---\n")
		if end == -1 {
			return &Note{Frontmatter: NewFrontmatter(), Body: text}, nil
		}
		raw = rest[:end]
		body = rest[end+len("\n---\n"):]
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	fm := NewFrontmatter()
	for key, value := range data {
		fm.Set(key, value)
	}

	return &Note{
		Frontmatter: fm,
		Body:        strings.TrimPrefix(body, "\n"),
	}, nil
}

// Build serializes the note. Tags are written flow-style: [a, b, c].
func (n *Note) Build() ([]byte, error) {
	var buf bytes.Buffer

	if n.Frontmatter != nil && len(n.Frontmatter.keys) > 0 {
		buf.WriteString("---\n")

		frontmatterBytes, err := yaml.Marshal(n.Frontmatter)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
		}

		buf.Write(frontmatterBytes)
		buf.WriteString("---\n\n")
	}

	buf.WriteString(n.Body)

	return buf.Bytes(), nil
}

// Get retrieves a value from frontmatter.
func (f *Frontmatter) Get(key string) (any, bool) {
	val, ok := f.fields[key]
	return val, ok
}

// Set sets a value, keeping keys sorted.
func (f *Frontmatter) Set(key string, value any) {
	if _, exists := f.fields[key]; !exists {
		f.keys = append(f.keys, key)
		sort.Strings(f.keys)
	}
	f.fields[key] = value
}

// SetIf sets key only for non-zero strings and ints.
func (f *Frontmatter) SetIf(key string, value any) {
	switch v := value.(type) {
	case string:
		if v == "" || v == "N/A" {
			return
		}
	case int:
		if v == 0 {
			return
		}
	}
	f.Set(key, value)
}

// GetString retrieves a string value, returning empty string if not found or wrong type.
func (f *Frontmatter) GetString(key string) string {
	str, _ := f.fields[key].(string)
	return str
}

// GetInt retrieves an int value, returning 0 if not found or wrong type.
func (f *Frontmatter) GetInt(key string) int {
	i, _ := f.fields[key].(int)
	return i
}

// GetStringArray retrieves a string list such as tags.
func (f *Frontmatter) GetStringArray(key string) []string {
	return TagsFromAny(f.fields[key])
}

// Keys returns a copy of the sorted frontmatter keys.
func (f *Frontmatter) Keys() []string {
	result := make([]string, len(f.keys))
	copy(result, f.keys)
	return result
}

// MarshalYAML implements yaml.Marshaler with sorted keys and flow-style tags.
func (f *Frontmatter) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, len(f.keys)*2),
	}

	for _, key := range f.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}

		var valueNode *yaml.Node
		if key == "tags" {
			valueNode = &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, tag := range TagsFromAny(f.fields[key]) {
				valueNode.Content = append(valueNode.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: tag})
			}
		} else {
			valueNode = &yaml.Node{}
			if err := valueNode.Encode(f.fields[key]); err != nil {
				return nil, err
			}
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return node, nil
}
