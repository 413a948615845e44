// Package project loads and saves map project documents and resolves a
// layout's page series into concrete pages.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cartoforge/mapidx/models"
)

// Load reads a project document from path.
func Load(path string) (*models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project: %w", err)
	}

	var p models.Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project: %w", err)
	}
	return &p, nil
}

// Save writes the project document back to path.
func Save(path string, p *models.Project) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

// FindLayout returns the named layout, or nil.
func FindLayout(p *models.Project, name string) *models.Layout {
	for i := range p.Layouts {
		if p.Layouts[i].Name == name {
			return &p.Layouts[i]
		}
	}
	return nil
}

// FindMap returns the named map, or nil.
func FindMap(p *models.Project, name string) *models.Map {
	for i := range p.Maps {
		if p.Maps[i].Name == name {
			return &p.Maps[i]
		}
	}
	return nil
}

// ActiveMap returns the project's active map: the one named by activeMap,
// falling back to the first map when the pointer is unset.
func ActiveMap(p *models.Project) *models.Map {
	if p.ActiveMap != "" {
		if m := FindMap(p, p.ActiveMap); m != nil {
			return m
		}
	}
	if len(p.Maps) > 0 {
		return &p.Maps[0]
	}
	return nil
}

// FrameMap returns the map shown by a layout's map frame.
func FrameMap(p *models.Project, layout *models.Layout) (*models.Map, error) {
	m := FindMap(p, layout.MapFrame.Map)
	if m == nil {
		return nil, fmt.Errorf("layout %q references unknown map %q", layout.Name, layout.MapFrame.Map)
	}
	return m, nil
}
