// Package geometry converts between map extents and GeoPackage polygon
// geometries, and derives page scales from a map frame's paper size.
package geometry

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"

	"github.com/cartoforge/mapidx/models"
)

// ExpandByPercent grows the extent by pct percent on each axis, keeping the
// center fixed. A zero or negative pct returns the extent unchanged.
func ExpandByPercent(e models.Extent, pct float64) models.Extent {
	if pct <= 0 {
		return e
	}
	dx := e.Width() * pct / 100 / 2
	dy := e.Height() * pct / 100 / 2
	return models.Extent{
		XMin: e.XMin - dx,
		YMin: e.YMin - dy,
		XMax: e.XMax + dx,
		YMax: e.YMax + dy,
	}
}

// FitToFrame grows the extent to match the aspect ratio of a map frame of
// frameW x frameH (any unit, only the ratio matters), keeping the center
// fixed. The result is what the frame's camera actually shows: the source
// extent is always fully contained, never cropped.
func FitToFrame(e models.Extent, frameW, frameH float64) (models.Extent, error) {
	if frameW <= 0 || frameH <= 0 {
		return models.Extent{}, fmt.Errorf("invalid map frame size %gx%g", frameW, frameH)
	}
	if e.IsEmpty() {
		return models.Extent{}, fmt.Errorf("empty extent cannot be fitted to a frame")
	}

	frameAspect := frameW / frameH
	extentAspect := e.Width() / e.Height()
	cx, cy := e.Center()

	fitted := e
	if extentAspect < frameAspect {
		// Too narrow: widen to the frame aspect.
		halfW := e.Height() * frameAspect / 2
		fitted.XMin = cx - halfW
		fitted.XMax = cx + halfW
	} else if extentAspect > frameAspect {
		// Too short: heighten to the frame aspect.
		halfH := e.Width() / frameAspect / 2
		fitted.YMin = cy - halfH
		fitted.YMax = cy + halfH
	}
	return fitted, nil
}

// PageScale derives the camera scale of an extent shown in a frame of
// frameWidthMM millimeters of paper. Map units are assumed to be meters.
func PageScale(e models.Extent, frameWidthMM float64) (float64, error) {
	if frameWidthMM <= 0 {
		return 0, fmt.Errorf("invalid map frame width %gmm", frameWidthMM)
	}
	return e.Width() / (frameWidthMM / 1000), nil
}

// RoundScale rounds a camera scale to the stored integer scale. Ties round
// half away from zero, matching the host convention.
func RoundScale(scale float64) int64 {
	return int64(math.Round(scale))
}

// Polygon builds a closed single-ring polygon covering the extent, tagged
// with the given SRID.
func Polygon(e models.Extent, srid int) *geom.Polygon {
	p := geom.NewPolygon(geom.XY)
	p.MustSetCoords([][]geom.Coord{{
		{e.XMin, e.YMin},
		{e.XMax, e.YMin},
		{e.XMax, e.YMax},
		{e.XMin, e.YMax},
		{e.XMin, e.YMin},
	}})
	p.SetSRID(srid)
	return p
}

// EnvelopeOf returns the bounding extent of any geometry.
func EnvelopeOf(g geom.T) models.Extent {
	b := g.Bounds()
	return models.Extent{
		XMin: b.Min(0),
		YMin: b.Min(1),
		XMax: b.Max(0),
		YMax: b.Max(1),
	}
}
