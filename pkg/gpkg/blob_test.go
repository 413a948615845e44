package gpkg

import (
	"testing"

	"github.com/twpayne/go-geom"

	"github.com/cartoforge/mapidx/models"
	"github.com/cartoforge/mapidx/pkg/geometry"
)

func TestGeometryBlobRoundTrip(t *testing.T) {
	e := models.Extent{XMin: 100, YMin: 200, XMax: 300, YMax: 400}
	p := geometry.Polygon(e, 4326)

	blob, err := encodeGeometry(p)
	if err != nil {
		t.Fatalf("encodeGeometry() error = %v", err)
	}

	if blob[0] != 'G' || blob[1] != 'P' {
		t.Errorf("blob magic = %c%c, want GP", blob[0], blob[1])
	}

	g, srid, err := decodeGeometry(blob)
	if err != nil {
		t.Fatalf("decodeGeometry() error = %v", err)
	}
	if srid != 4326 {
		t.Errorf("decoded srid = %d, want 4326", srid)
	}

	poly, ok := g.(*geom.Polygon)
	if !ok {
		t.Fatalf("decoded geometry is %T, want *geom.Polygon", g)
	}
	if got := geometry.EnvelopeOf(poly); got != e {
		t.Errorf("decoded envelope = %+v, want %+v", got, e)
	}
}

func TestDecodeGeometry_RejectsGarbage(t *testing.T) {
	if _, _, err := decodeGeometry([]byte("not a blob")); err == nil {
		t.Error("decodeGeometry() on garbage should fail")
	}
	if _, _, err := decodeGeometry([]byte{'G', 'P', 0}); err == nil {
		t.Error("decodeGeometry() on truncated blob should fail")
	}
}
