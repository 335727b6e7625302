package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Serializer defines how to read a specific snapshot file format.
type Serializer interface {
	// Parse reads from r and returns the decoded snapshot.
	Parse(r io.Reader) (*Snapshot, error)
}

// DefaultSerializers returns the standard set of serializers.
func DefaultSerializers(strict bool) map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(strict),
		".yaml": NewYAMLSerializer(strict),
		".yml":  NewYAMLSerializer(strict),
		".md":   NewMarkdownSerializer(strict),
	}
}

// --- JSON Serializer ---

// JSONSerializer handles reading JSON snapshots.
type JSONSerializer struct {
	// Strict rejects fields the snapshot schema does not define.
	Strict bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(strict bool) *JSONSerializer {
	return &JSONSerializer{Strict: strict}
}

func (s *JSONSerializer) Parse(r io.Reader) (*Snapshot, error) {
	decoder := json.NewDecoder(r)
	// Keep ids and numbers exact.
	decoder.UseNumber()
	if s.Strict {
		decoder.DisallowUnknownFields()
	}

	var snap Snapshot
	if err := decoder.Decode(&snap); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return &snap, nil
}

// --- YAML Serializer ---

type YAMLSerializer struct {
	// Strict rejects fields the snapshot schema does not define.
	Strict bool
}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer(strict bool) *YAMLSerializer {
	return &YAMLSerializer{Strict: strict}
}

func (s *YAMLSerializer) Parse(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodeYAML(data, s.Strict)
}

func decodeYAML(data []byte, strict bool) (*Snapshot, error) {
	var snap Snapshot
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(strict)
	if err := decoder.Decode(&snap); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document.
			return &snap, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return &snap, nil
}

// --- Markdown Serializer ---

// MarkdownSerializer reads a snapshot from YAML frontmatter.
// The body after the closing delimiter is kept as project notes.
type MarkdownSerializer struct {
	Strict bool
}

// NewMarkdownSerializer creates a new Markdown serializer.
func NewMarkdownSerializer(strict bool) *MarkdownSerializer {
	return &MarkdownSerializer{Strict: strict}
}

func (s *MarkdownSerializer) Parse(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return nil, errors.New("markdown snapshot has no frontmatter")
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("\n---"), 2)
	if len(parts) == 1 {
		return nil, errors.New("frontmatter started but no closing delimiter found")
	}

	snap, err := decodeYAML(parts[0], s.Strict)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	body := bytes.TrimPrefix(parts[1], []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))
	body = bytes.TrimPrefix(body, []byte("\r\n"))
	snap.Notes = string(body)
	return snap, nil
}
