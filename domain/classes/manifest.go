package classes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestName is the dataset manifest written next to the images.
const ManifestName = "data.yaml"

// Manifest is the YOLO dataset description consumed by training tools.
type Manifest struct {
	Path  string         `yaml:"path"`
	Train string         `yaml:"train"`
	Val   string         `yaml:"val"`
	NC    int            `yaml:"nc"`
	Names map[int]string `yaml:"names"`
}

// BuildManifest describes a folder whose images and labels sit side by side.
func BuildManifest(folder string, r *Registry) Manifest {
	m := Manifest{Path: folder, Train: ".", Val: ".", NC: r.nextID(), Names: make(map[int]string)}
	for id := 0; id < m.NC; id++ {
		m.Names[id] = r.Name(id)
	}
	return m
}

// WriteManifest writes the dataset manifest for r to path.
func WriteManifest(path, folder string, r *Registry) error {
	data, err := yaml.Marshal(BuildManifest(folder, r))
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}
