package project

import (
	"fmt"
	"path/filepath"

	"github.com/cartoforge/mapidx/models"
	"github.com/cartoforge/mapidx/pkg/geometry"
	"github.com/cartoforge/mapidx/pkg/gpkg"
)

// SeriesKind is the tagged variant over the supported page series types.
type SeriesKind int

const (
	SeriesNone SeriesKind = iota
	SeriesBookmark
	SeriesField
)

func (k SeriesKind) String() string {
	switch k {
	case SeriesBookmark:
		return "bookmark"
	case SeriesField:
		return "field"
	default:
		return "none"
	}
}

// KindOf classifies a layout's series block. Anything other than a
// well-formed bookmark or field series is SeriesNone.
func KindOf(layout *models.Layout) SeriesKind {
	s := layout.Series
	if s == nil {
		return SeriesNone
	}
	switch s.Kind {
	case "bookmark":
		if len(s.Bookmarks) > 0 {
			return SeriesBookmark
		}
	case "field":
		if s.Field != nil {
			return SeriesField
		}
	}
	return SeriesNone
}

// UnsupportedSeriesError is the recoverable validation failure: the chosen
// layout has no bookmark- or field-driven page series. It blocks the run
// before any output is created.
type UnsupportedSeriesError struct {
	Layout string
}

func (e *UnsupportedSeriesError) Error() string {
	return fmt.Sprintf("layout %q has no bookmark or index-field page series", e.Layout)
}

// Page is one resolved page of a map series: its 1-based ordinal, label,
// the map frame's visible extent, and the unrounded camera scale.
type Page struct {
	Num    int
	Label  string
	Extent models.Extent
	Scale  float64
}

// ResolvePages turns a layout's series into concrete pages. baseDir anchors
// relative source paths of field-driven series (normally the project file's
// directory). The extent of every page is the series extent fitted to the
// frame's aspect ratio, i.e. what the frame camera shows.
//
// Page iteration is strictly sequential by contract: the series' current
// page is a single cursor, so resolution preserves series order and numbers
// pages densely from 1.
func ResolvePages(p *models.Project, layout *models.Layout, baseDir string) ([]Page, error) {
	frame := layout.MapFrame

	switch KindOf(layout) {
	case SeriesBookmark:
		return bookmarkPages(layout.Series.Bookmarks, frame)
	case SeriesField:
		return fieldPages(layout.Series.Field, frame, baseDir)
	default:
		return nil, &UnsupportedSeriesError{Layout: layout.Name}
	}
}

func bookmarkPages(bookmarks []models.Bookmark, frame models.MapFrame) ([]Page, error) {
	pages := make([]Page, 0, len(bookmarks))
	for i, bm := range bookmarks {
		fitted, err := geometry.FitToFrame(bm.Extent, frame.WidthMM, frame.HeightMM)
		if err != nil {
			return nil, fmt.Errorf("bookmark %q: %w", bm.Name, err)
		}

		scale := bm.Scale
		if scale <= 0 {
			scale, err = geometry.PageScale(fitted, frame.WidthMM)
			if err != nil {
				return nil, fmt.Errorf("bookmark %q: %w", bm.Name, err)
			}
		}

		pages = append(pages, Page{
			Num:    i + 1,
			Label:  bm.Name,
			Extent: fitted,
			Scale:  scale,
		})
	}
	return pages, nil
}

func fieldPages(fs *models.FieldSeries, frame models.MapFrame, baseDir string) ([]Page, error) {
	source := fs.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(baseDir, source)
	}

	store, err := gpkg.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open series source: %w", err)
	}
	defer store.Close()

	rows, err := store.IndexRows(fs.Table, fs.NameField)
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(rows))
	for i, row := range rows {
		extent := geometry.ExpandByPercent(row.Extent, fs.MarginPercent)
		fitted, err := geometry.FitToFrame(extent, frame.WidthMM, frame.HeightMM)
		if err != nil {
			return nil, fmt.Errorf("index row %d: %w", i+1, err)
		}

		scale, err := geometry.PageScale(fitted, frame.WidthMM)
		if err != nil {
			return nil, fmt.Errorf("index row %d: %w", i+1, err)
		}

		pages = append(pages, Page{
			Num:    i + 1,
			Label:  row.Label,
			Extent: fitted,
			Scale:  scale,
		})
	}
	return pages, nil
}
