package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the tree file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Loader implements ports.TreeLoader for a YAML or JSON tree file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the tree file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadTree reads, decodes and validates the tree file.
func (l *Loader) LoadTree(_ context.Context) (*domain.Command, error) {
	return Load(l.path)
}

// Load reads a tree file. The format follows the extension: ".json" is JSON,
// anything else is YAML.
func Load(path string) (*domain.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command tree: %w", err)
	}
	format := FormatYAML
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = FormatJSON
	}
	root, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Parse decodes a tree document and validates it.
func Parse(data []byte, format Format) (*domain.Command, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse tree json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse tree yaml: %w", err)
		}
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty tree document", domain.ErrInvalidTree)
	}

	spec, err := decode(raw)
	if err != nil {
		return nil, err
	}

	root := spec.toDomain()
	if err := domain.Validate(root); err != nil {
		return nil, err
	}
	return root, nil
}

func decode(raw map[string]any) (CommandSpec, error) {
	var spec CommandSpec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &spec,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return spec, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return spec, fmt.Errorf("failed to decode command tree: %w", err)
	}
	return spec, nil
}
