package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/macsencasaus/jipg-go"
)

// ManifestEntry overrides one output sink's configuration, keyed by the
// header path it applies to — a manifest batches the output
// configuration for several generated packages sharing one jipggen
// invocation's registered schemas.
type ManifestEntry struct {
	Header     string `yaml:"header"`
	Source     string `yaml:"source"`
	Package    string `yaml:"package"`
	SingleFile bool   `yaml:"single_file"`
}

// Manifest is the top-level shape of a --manifest YAML file.
type Manifest struct {
	Schemas []ManifestEntry `yaml:"schemas"`
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", jipg.ErrManifestDecode, path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", jipg.ErrManifestDecode, path, err)
	}
	return &m, nil
}

// find returns the manifest entry whose Header matches headerPath, or
// failing that, whose Package matches packageName — so a manifest can
// key entries by either the conventional types-file path or an
// explicit package name.
func (m *Manifest) find(headerPath, packageName string) (ManifestEntry, bool) {
	for _, e := range m.Schemas {
		if e.Header == headerPath {
			return e, true
		}
	}
	for _, e := range m.Schemas {
		if e.Package != "" && e.Package == packageName {
			return e, true
		}
	}
	return ManifestEntry{}, false
}
