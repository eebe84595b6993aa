package typetable

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPSBTFile = "psbttypes.json"
	DefaultPSETFile = "psettypes.json"
)

//go:embed psbttypes.json psettypes.json
var defaults embed.FS

// Load returns the table at path, or the embedded default for the PSBT or PSET flavour
// when path is empty.
func Load(path string, pset bool) (*Table, error) {
	if path != "" {
		return LoadFile(path)
	}
	name := DefaultPSBTFile
	if pset {
		name = DefaultPSETFile
	}
	data, err := defaults.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTypeTableLoad, name, err)
	}
	return ParseJSON(data)
}

// LoadFile reads a table from disk. Files with a .yaml or .yml extension are parsed as
// YAML, everything else as JSON.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTypeTableLoad, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON builds a table from a JSON document keyed by scope.
func ParseJSON(data []byte) (*Table, error) {
	var doc map[string]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrTypeTableLoad, err)
	}
	return buildLoaded(doc)
}

// ParseYAML builds a table from a YAML document with the same layout as ParseJSON.
func ParseYAML(data []byte) (*Table, error) {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %w", ErrTypeTableLoad, err)
	}
	return buildLoaded(doc)
}

func buildLoaded(doc map[string]map[string]any) (*Table, error) {
	t, err := build(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTypeTableLoad, err)
	}
	return t, nil
}
