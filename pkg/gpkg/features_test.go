package gpkg

import (
	"testing"

	"github.com/cartoforge/mapidx/models"
)

func pageExtent(i int) models.Extent {
	base := float64(i) * 1000
	return models.Extent{XMin: base, YMin: base, XMax: base + 500, YMax: base + 360}
}

func TestInsertAndReadFeatures(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	fc, err := s.CreateFeatureClass("idx", testSRS())
	if err != nil {
		t.Fatalf("CreateFeatureClass() error = %v", err)
	}

	names := []string{"A", "B", "C"}
	for i, name := range names {
		if err := fc.Insert(pageExtent(i), name, int64(2000*(i+1)), i+1); err != nil {
			t.Fatalf("Insert() page %d error = %v", i+1, err)
		}
	}

	features, err := s.ReadFeatures("idx", 0)
	if err != nil {
		t.Fatalf("ReadFeatures() error = %v", err)
	}
	if len(features) != 3 {
		t.Fatalf("ReadFeatures() returned %d features, want 3", len(features))
	}

	for i, f := range features {
		if f.PageNum != i+1 {
			t.Errorf("feature %d PageNum = %d, want %d", i, f.PageNum, i+1)
		}
		if f.Name != names[i] {
			t.Errorf("feature %d Name = %q, want %q", i, f.Name, names[i])
		}
		if f.Scale != int64(2000*(i+1)) {
			t.Errorf("feature %d Scale = %d, want %d", i, f.Scale, 2000*(i+1))
		}
		if f.Extent != pageExtent(i) {
			t.Errorf("feature %d Extent = %+v, want %+v", i, f.Extent, pageExtent(i))
		}
	}
}

func TestReadFeatures_Limit(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	fc, err := s.CreateFeatureClass("idx", testSRS())
	if err != nil {
		t.Fatalf("CreateFeatureClass() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := fc.Insert(pageExtent(i), "p", 1000, i+1); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	features, err := s.ReadFeatures("idx", 2)
	if err != nil {
		t.Fatalf("ReadFeatures() error = %v", err)
	}
	if len(features) != 2 {
		t.Errorf("ReadFeatures(limit=2) returned %d features, want 2", len(features))
	}
}

func TestUpdateBounds(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	fc, err := s.CreateFeatureClass("idx", testSRS())
	if err != nil {
		t.Fatalf("CreateFeatureClass() error = %v", err)
	}

	bounds := models.Extent{XMin: -10, YMin: -20, XMax: 30, YMax: 40}
	if err := fc.UpdateBounds(bounds); err != nil {
		t.Fatalf("UpdateBounds() error = %v", err)
	}

	tables, err := s.ListTables()
	if err != nil {
		t.Fatalf("ListTables() error = %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("ListTables() returned %d tables, want 1", len(tables))
	}
	if tables[0].Bounds != bounds {
		t.Errorf("contents bounds = %+v, want %+v", tables[0].Bounds, bounds)
	}
}

func TestIndexRows(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	fc, err := s.CreateFeatureClass("grid", testSRS())
	if err != nil {
		t.Fatalf("CreateFeatureClass() error = %v", err)
	}
	for i, name := range []string{"T1", "T2"} {
		if err := fc.Insert(pageExtent(i), name, 5000, i+1); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	rows, err := s.IndexRows("grid", NameField)
	if err != nil {
		t.Fatalf("IndexRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("IndexRows() returned %d rows, want 2", len(rows))
	}
	if rows[0].Label != "T1" || rows[1].Label != "T2" {
		t.Errorf("labels = %q, %q, want T1, T2", rows[0].Label, rows[1].Label)
	}
	if rows[0].Extent != pageExtent(0) {
		t.Errorf("row 0 extent = %+v, want %+v", rows[0].Extent, pageExtent(0))
	}
}

func TestIndexRows_NumericNameField(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	fc, err := s.CreateFeatureClass("grid", testSRS())
	if err != nil {
		t.Fatalf("CreateFeatureClass() error = %v", err)
	}
	if err := fc.Insert(pageExtent(0), "x", 5000, 1); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	// Page numbers are valid label sources for numeric grid ids.
	rows, err := s.IndexRows("grid", PageNumField)
	if err != nil {
		t.Fatalf("IndexRows() error = %v", err)
	}
	if rows[0].Label != "1" {
		t.Errorf("numeric label = %q, want \"1\"", rows[0].Label)
	}
}

func TestIndexRows_NotAFeatureClass(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	if _, err := s.IndexRows("nope", "Name"); err == nil {
		t.Error("IndexRows() on unregistered table should fail")
	}
}
