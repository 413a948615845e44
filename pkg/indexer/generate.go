// Package indexer is the tool's execute routine: it resolves a layout's
// page series, creates an index polygon feature class, appends one row per
// page, and optionally adds the styled result layer to the active map.
package indexer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/cartoforge/mapidx/models"
	"github.com/cartoforge/mapidx/pkg/geometry"
	"github.com/cartoforge/mapidx/pkg/gpkg"
	"github.com/cartoforge/mapidx/pkg/project"
	"github.com/cartoforge/mapidx/pkg/symbology"
)

// Params are the tool parameters: which layout to page through, where the
// output feature class goes, and whether to add it to the active map.
type Params struct {
	ProjectPath string
	Layout      string
	Output      string
	Table       string
	AddToMap    bool
}

// Result summarizes a completed run.
type Result struct {
	Pages  int
	Output string
	Table  string
	Added  bool
}

// ValidationError is a recoverable, user-facing parameter problem. It
// blocks the run before any output exists; everything else that fails is
// fatal and leaves partial output in place (no rollback, no retries).
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// IsValidation reports whether err is a blocked-run validation failure
// rather than a fatal runtime error.
func IsValidation(err error) bool {
	var ve *ValidationError
	var use *project.UnsupportedSeriesError
	return errors.As(err, &ve) || errors.As(err, &use)
}

// Generate runs the tool end to end. Progress messages go to out; cfg
// carries the environment's auto-add setting which, when enabled, overrides
// the AddToMap parameter.
func Generate(params Params, cfg *models.Config, out io.Writer) (*Result, error) {
	if cfg == nil {
		cfg = &models.Config{}
	}

	proj, err := project.Load(params.ProjectPath)
	if err != nil {
		return nil, err
	}

	layout := project.FindLayout(proj, params.Layout)
	if layout == nil {
		return nil, &ValidationError{msg: fmt.Sprintf("project has no layout %q", params.Layout)}
	}
	if project.KindOf(layout) == project.SeriesNone {
		return nil, &project.UnsupportedSeriesError{Layout: layout.Name}
	}

	frameMap, err := project.FrameMap(proj, layout)
	if err != nil {
		return nil, err
	}
	srs := frameMap.SpatialReference
	fmt.Fprintf(out, "Spatial reference: %s (EPSG:%d)\n", srsName(srs), srs.SRID)

	store, err := gpkg.Create(params.Output)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	fc, err := store.CreateFeatureClass(params.Table, srs)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Created feature class %s in %s\n", params.Table, params.Output)

	baseDir := filepath.Dir(params.ProjectPath)
	pages, err := project.ResolvePages(proj, layout, baseDir)
	if err != nil {
		return nil, err
	}

	// Sequential by contract: the series' current page is one cursor.
	var bounds models.Extent
	for _, page := range pages {
		scale := geometry.RoundScale(page.Scale)
		if err := fc.Insert(page.Extent, page.Label, scale, page.Num); err != nil {
			return nil, fmt.Errorf("page %d (%s): %w", page.Num, page.Label, err)
		}
		fmt.Fprintf(out, "Inserted page %d of %d: %s (1:%d)\n", page.Num, len(pages), page.Label, scale)

		if page.Num == 1 {
			bounds = page.Extent
		} else {
			bounds = bounds.Union(page.Extent)
		}
	}

	if len(pages) > 0 {
		if err := fc.UpdateBounds(bounds); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Pages:  len(pages),
		Output: params.Output,
		Table:  params.Table,
	}

	addToMap := params.AddToMap
	if cfg.AutoAddOutputs {
		if !addToMap {
			fmt.Fprintln(out, "Environment adds outputs to the active map; --add-to-map is overridden")
		}
		addToMap = true
	}
	if !addToMap {
		return result, nil
	}

	active := project.ActiveMap(proj)
	if active == nil {
		return nil, fmt.Errorf("project has no map to add the layer to")
	}

	layer := symbology.IndexLayer(params.Table, params.Output, params.Table)
	active.Layers = append(active.Layers, layer)
	if err := project.Save(params.ProjectPath, proj); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Added layer %s to map %s\n", layer.Name, active.Name)
	result.Added = true

	return result, nil
}

func srsName(srs models.SpatialReference) string {
	if srs.Name != "" {
		return srs.Name
	}
	return fmt.Sprintf("EPSG:%d", srs.SRID)
}
