package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cartoforge/mapidx/models"
)

const sampleProject = `version: 1
activeMap: City
maps:
  - name: City
    spatialReference:
      srid: 3857
      name: WGS 84 / Pseudo-Mercator
layouts:
  - name: Atlas
    mapFrame:
      map: City
      widthMM: 250
      heightMM: 180
    series:
      kind: bookmark
      bookmarks:
        - name: A
          extent: {xmin: 0, ymin: 0, xmax: 5000, ymax: 3600}
          scale: 20000
        - name: B
          extent: {xmin: 5000, ymin: 0, xmax: 10000, ymax: 3600}
        - name: C
          extent: {xmin: 10000, ymin: 0, xmax: 15000, ymax: 3600}
  - name: Plain
    mapFrame:
      map: City
      widthMM: 250
      heightMM: 180
`

func writeProject(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test project: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	p, err := Load(writeProject(t, sampleProject))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(p.Maps) != 1 || p.Maps[0].Name != "City" {
		t.Errorf("Maps = %+v, want one map named City", p.Maps)
	}
	if p.Maps[0].SpatialReference.SRID != 3857 {
		t.Errorf("SRID = %d, want 3857", p.Maps[0].SpatialReference.SRID)
	}
	if len(p.Layouts) != 2 {
		t.Fatalf("Layouts = %d, want 2", len(p.Layouts))
	}
	if len(p.Layouts[0].Series.Bookmarks) != 3 {
		t.Errorf("bookmarks = %d, want 3", len(p.Layouts[0].Series.Bookmarks))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() on missing file should fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeProject(t, sampleProject)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	p.Maps[0].Layers = append(p.Maps[0].Layers, models.Layer{
		ID:      "test-id",
		Name:    "added",
		Visible: true,
	})
	if err := Save(path, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() after Save error = %v", err)
	}
	if len(reloaded.Maps[0].Layers) != 1 || reloaded.Maps[0].Layers[0].Name != "added" {
		t.Errorf("layers after roundtrip = %+v, want the added layer", reloaded.Maps[0].Layers)
	}
	if len(reloaded.Layouts[0].Series.Bookmarks) != 3 {
		t.Errorf("bookmarks lost in roundtrip: %d, want 3", len(reloaded.Layouts[0].Series.Bookmarks))
	}
}

func TestFindLayoutAndMap(t *testing.T) {
	p, err := Load(writeProject(t, sampleProject))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if FindLayout(p, "Atlas") == nil {
		t.Error("FindLayout(Atlas) = nil, want layout")
	}
	if FindLayout(p, "missing") != nil {
		t.Error("FindLayout(missing) != nil")
	}
	if FindMap(p, "City") == nil {
		t.Error("FindMap(City) = nil, want map")
	}

	active := ActiveMap(p)
	if active == nil || active.Name != "City" {
		t.Errorf("ActiveMap() = %+v, want City", active)
	}
}

func TestActiveMap_FallsBackToFirst(t *testing.T) {
	p := &models.Project{
		Maps: []models.Map{{Name: "Only"}},
	}
	active := ActiveMap(p)
	if active == nil || active.Name != "Only" {
		t.Errorf("ActiveMap() = %+v, want Only", active)
	}
}

func TestFrameMap_UnknownMap(t *testing.T) {
	p, err := Load(writeProject(t, sampleProject))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	layout := FindLayout(p, "Atlas")
	layout.MapFrame.Map = "missing"

	if _, err := FrameMap(p, layout); err == nil {
		t.Error("FrameMap() with unknown map should fail")
	}
}
