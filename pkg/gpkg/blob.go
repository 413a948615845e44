package gpkg

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// GeoPackage geometry blob: "GP" magic, version, flags, srs_id, optional
// envelope, then standard WKB. The tool always writes little-endian blobs
// with an XY envelope (envelope indicator 1).
const (
	blobMagic1  = 0x47 // 'G'
	blobMagic2  = 0x50 // 'P'
	blobVersion = 0

	// flags: bit 0 byte order (1 = little endian), bits 1-3 envelope
	// indicator.
	flagLittleEndian = 0x01
	flagEnvelopeXY   = 0x01 << 1
)

// envelope sizes in bytes, indexed by envelope indicator.
var envelopeSizes = [...]int{0, 32, 48, 48, 64}

// encodeGeometry wraps a polygon in a GeoPackage geometry blob carrying the
// polygon's SRID and XY envelope.
func encodeGeometry(p *geom.Polygon) ([]byte, error) {
	wkbData, err := wkb.Marshal(p, binary.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("failed to encode WKB: %w", err)
	}

	b := p.Bounds()
	buf := new(bytes.Buffer)
	buf.WriteByte(blobMagic1)
	buf.WriteByte(blobMagic2)
	buf.WriteByte(blobVersion)
	buf.WriteByte(flagLittleEndian | flagEnvelopeXY)

	if err := binary.Write(buf, binary.LittleEndian, int32(p.SRID())); err != nil {
		return nil, fmt.Errorf("failed to encode SRID: %w", err)
	}
	envelope := []float64{b.Min(0), b.Max(0), b.Min(1), b.Max(1)}
	if err := binary.Write(buf, binary.LittleEndian, envelope); err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}

	buf.Write(wkbData)
	return buf.Bytes(), nil
}

// decodeGeometry parses a GeoPackage geometry blob and returns the geometry
// and its SRID. Blobs from other writers may use either byte order and any
// envelope indicator.
func decodeGeometry(data []byte) (geom.T, int, error) {
	if len(data) < 8 || data[0] != blobMagic1 || data[1] != blobMagic2 {
		return nil, 0, fmt.Errorf("not a geopackage geometry blob")
	}

	flags := data[3]
	envIndicator := int(flags>>1) & 0x07
	if envIndicator >= len(envelopeSizes) {
		return nil, 0, fmt.Errorf("invalid envelope indicator %d", envIndicator)
	}

	var order binary.ByteOrder = binary.BigEndian
	if flags&flagLittleEndian != 0 {
		order = binary.LittleEndian
	}
	srid := int(int32(order.Uint32(data[4:8])))

	wkbStart := 8 + envelopeSizes[envIndicator]
	if len(data) < wkbStart {
		return nil, 0, fmt.Errorf("truncated geometry blob")
	}

	g, err := wkb.Unmarshal(data[wkbStart:])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode WKB: %w", err)
	}
	return g, srid, nil
}
