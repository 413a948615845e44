package inspect

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/cartoforge/mapidx/pkg/geometry"
	"github.com/cartoforge/mapidx/pkg/project"
)

// LayoutsAction lists the project's layouts with their series kind and page
// count, the tool's equivalent of the host UI's layout selector.
func LayoutsAction(c *cli.Context) error {
	proj, err := project.Load(c.String("project"))
	if err != nil {
		return err
	}

	if len(proj.Layouts) == 0 {
		fmt.Println("No layouts found")
		return nil
	}

	fmt.Printf("%-30s %-10s %-8s %-20s\n", "Layout", "Series", "Pages", "Map")
	fmt.Println(strings.Repeat("-", 72))

	for i := range proj.Layouts {
		layout := &proj.Layouts[i]
		kind := project.KindOf(layout)

		pageCount := "-"
		if kind != project.SeriesNone {
			baseDir := filepath.Dir(c.String("project"))
			pages, err := project.ResolvePages(proj, layout, baseDir)
			if err == nil {
				pageCount = fmt.Sprintf("%d", len(pages))
			}
		}

		fmt.Printf("%-30s %-10s %-8s %-20s\n", layout.Name, kind, pageCount, layout.MapFrame.Map)
	}

	fmt.Printf("\nTotal: %d layouts\n", len(proj.Layouts))
	fmt.Printf("\nTip: Use 'mapidx pages --layout <name>' to preview a series\n")
	return nil
}

// PagesAction previews the resolved pages of one layout's series without
// writing anything: label, rounded scale, and fitted extent per page.
func PagesAction(c *cli.Context) error {
	projectPath := c.String("project")
	proj, err := project.Load(projectPath)
	if err != nil {
		return err
	}

	layout := project.FindLayout(proj, c.String("layout"))
	if layout == nil {
		return cli.Exit(fmt.Sprintf("Error: project has no layout %q", c.String("layout")), 1)
	}

	pages, err := project.ResolvePages(proj, layout, filepath.Dir(projectPath))
	if err != nil {
		var use *project.UnsupportedSeriesError
		if errors.As(err, &use) {
			return cli.Exit("Error: "+use.Error(), 1)
		}
		return err
	}

	fmt.Printf("%-6s %-24s %-12s %-40s\n", "Page", "Name", "Scale", "Extent")
	fmt.Println(strings.Repeat("-", 86))

	for _, p := range pages {
		extent := fmt.Sprintf("%.1f %.1f %.1f %.1f",
			p.Extent.XMin, p.Extent.YMin, p.Extent.XMax, p.Extent.YMax)
		fmt.Printf("%-6d %-24s 1:%-10d %-40s\n", p.Num, p.Label, geometry.RoundScale(p.Scale), extent)
	}

	fmt.Printf("\nTotal: %d pages\n", len(pages))
	return nil
}
