// Package symbology builds the presentation of the generated index layer:
// transparent fill, semi-transparent outline, and a single label class
// showing the page name.
package symbology

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cartoforge/mapidx/models"
	"github.com/cartoforge/mapidx/pkg/gpkg"
)

// Index layer style constants. The fill is fully transparent so underlying
// layers stay visible; the outline is half-transparent gray at a fixed
// width.
var (
	IndexFill    = models.Color{R: 0, G: 0, B: 0, A: 0}
	IndexOutline = models.Color{R: 128, G: 128, B: 128, A: 128}
)

const IndexOutlineWidth = 1.0

// pageLabelClass is the one label class left visible on an index layer.
const pageLabelClass = "Page name"

// IndexLayer builds the layer added to the active map after generation,
// pointing at the produced feature table.
func IndexLayer(name, gpkgPath, table string) models.Layer {
	layer := models.Layer{
		ID:      uuid.New().String(),
		Name:    name,
		Visible: true,
		Source: models.LayerSource{
			Path:  gpkgPath,
			Table: table,
		},
		Symbology: &models.Symbology{
			Fill:         IndexFill,
			Outline:      IndexOutline,
			OutlineWidth: IndexOutlineWidth,
		},
	}
	ApplyIndexLabels(&layer)
	return layer
}

// ApplyIndexLabels hides every label class already on the layer and appends
// a single visible class that derives its text from the Name field.
func ApplyIndexLabels(layer *models.Layer) {
	for i := range layer.LabelClasses {
		layer.LabelClasses[i].Visible = false
	}
	layer.LabelClasses = append(layer.LabelClasses, models.LabelClass{
		Name:       pageLabelClass,
		Expression: fmt.Sprintf("[%s]", gpkg.NameField),
		Visible:    true,
	})
}
