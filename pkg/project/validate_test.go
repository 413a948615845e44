package project

import (
	"testing"
)

func TestValidateDocument_Valid(t *testing.T) {
	if err := ValidateDocument(writeProject(t, sampleProject)); err != nil {
		t.Errorf("ValidateDocument() error = %v, want nil", err)
	}
}

func TestValidateDocument_UnknownSeriesKind(t *testing.T) {
	doc := `version: 1
maps:
  - name: City
    spatialReference: {srid: 3857}
layouts:
  - name: Atlas
    mapFrame: {map: City, widthMM: 250, heightMM: 180}
    series:
      kind: spatial
`
	if err := ValidateDocument(writeProject(t, doc)); err == nil {
		t.Error("ValidateDocument() should reject unknown series kind")
	}
}

func TestValidateDocument_MissingMaps(t *testing.T) {
	doc := `version: 1
layouts: []
`
	if err := ValidateDocument(writeProject(t, doc)); err == nil {
		t.Error("ValidateDocument() should require maps")
	}
}

func TestValidateDocument_FieldSeriesRequiresBlock(t *testing.T) {
	doc := `version: 1
maps:
  - name: City
    spatialReference: {srid: 3857}
layouts:
  - name: Grid
    mapFrame: {map: City, widthMM: 250, heightMM: 180}
    series:
      kind: field
`
	if err := ValidateDocument(writeProject(t, doc)); err == nil {
		t.Error("ValidateDocument() should require the field block for field series")
	}
}

func TestValidateDocument_ZeroFrameSize(t *testing.T) {
	doc := `version: 1
maps:
  - name: City
    spatialReference: {srid: 3857}
layouts:
  - name: Atlas
    mapFrame: {map: City, widthMM: 0, heightMM: 180}
`
	if err := ValidateDocument(writeProject(t, doc)); err == nil {
		t.Error("ValidateDocument() should reject a zero-width map frame")
	}
}
