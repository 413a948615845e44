// Package models defines the map project document and tool configuration.
package models

// Project is the root of a map project document. It is the standalone
// equivalent of a host GIS application's project: maps with layers, layouts
// with map frames, and a pointer to the map currently open for editing.
type Project struct {
	Version   int      `yaml:"version"`
	ActiveMap string   `yaml:"activeMap,omitempty"`
	Maps      []Map    `yaml:"maps"`
	Layouts   []Layout `yaml:"layouts,omitempty"`
}

// Map is a named collection of layers sharing one spatial reference.
type Map struct {
	Name             string           `yaml:"name"`
	SpatialReference SpatialReference `yaml:"spatialReference"`
	Layers           []Layer          `yaml:"layers,omitempty"`
}

// SpatialReference identifies the coordinate reference system of a map.
// SRID is an EPSG code; WKT is optional and carried verbatim into any
// feature store created from the map.
type SpatialReference struct {
	SRID int    `yaml:"srid"`
	Name string `yaml:"name,omitempty"`
	WKT  string `yaml:"wkt,omitempty"`
}

// Layer references a feature table in a GeoPackage plus its presentation.
type Layer struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Source       LayerSource  `yaml:"source"`
	Visible      bool         `yaml:"visible"`
	Symbology    *Symbology   `yaml:"symbology,omitempty"`
	LabelClasses []LabelClass `yaml:"labelClasses,omitempty"`
}

// LayerSource points at a feature table inside a GeoPackage file.
type LayerSource struct {
	Path  string `yaml:"path"`
	Table string `yaml:"table"`
}

// Symbology is simple polygon symbology: fill, outline color and width.
type Symbology struct {
	Fill         Color   `yaml:"fill"`
	Outline      Color   `yaml:"outline"`
	OutlineWidth float64 `yaml:"outlineWidth"`
}

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// LabelClass drives feature labeling on a layer. Expression uses the
// bracketed field syntax, e.g. "[Name]".
type LabelClass struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	Visible    bool   `yaml:"visible"`
}

// Layout is a print layout containing a single map frame and, optionally,
// a page series definition.
type Layout struct {
	Name     string   `yaml:"name"`
	MapFrame MapFrame `yaml:"mapFrame"`
	Series   *Series  `yaml:"series,omitempty"`
}

// MapFrame is the camera surface of a layout: which map it shows and the
// printed size of the frame in millimeters. Scale derivation divides the
// visible extent width (map units, meters) by the paper width.
type MapFrame struct {
	Map      string  `yaml:"map"`
	WidthMM  float64 `yaml:"widthMM"`
	HeightMM float64 `yaml:"heightMM"`
}

// Series is the raw page series block as stored in the document. Kind
// selects the variant; exactly one of Bookmarks or Field is populated.
// Use project.ResolveSeries to get the typed variant.
type Series struct {
	Kind      string       `yaml:"kind"`
	Bookmarks []Bookmark   `yaml:"bookmarks,omitempty"`
	Field     *FieldSeries `yaml:"field,omitempty"`
}

// Bookmark is a named saved view. Scale is the stored camera scale; zero
// means "derive from extent and frame size".
type Bookmark struct {
	Name   string  `yaml:"name"`
	Extent Extent  `yaml:"extent"`
	Scale  float64 `yaml:"scale,omitempty"`
}

// FieldSeries drives pages from rows of an index polygon table in a source
// GeoPackage. NameField designates the attribute used as page label.
// MarginPercent grows each feature envelope before frame fitting.
type FieldSeries struct {
	Source        string  `yaml:"source"`
	Table         string  `yaml:"table"`
	NameField     string  `yaml:"nameField"`
	MarginPercent float64 `yaml:"marginPercent,omitempty"`
}
