package store

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/cartoforge/mapidx/pkg/gpkg"
)

// TablesAction lists the feature tables in a GeoPackage.
func TablesAction(c *cli.Context) error {
	s, err := gpkg.Open(c.String("gpkg"))
	if err != nil {
		return fmt.Errorf("failed to open geopackage: %w", err)
	}
	defer s.Close()

	tables, err := s.ListTables()
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		fmt.Println("No feature tables found")
		return nil
	}

	fmt.Printf("%-24s %-10s %-8s %-8s %-40s\n", "Table", "Geometry", "SRID", "Rows", "Bounds")
	fmt.Println(strings.Repeat("-", 94))

	for _, t := range tables {
		bounds := fmt.Sprintf("%.1f %.1f %.1f %.1f",
			t.Bounds.XMin, t.Bounds.YMin, t.Bounds.XMax, t.Bounds.YMax)
		fmt.Printf("%-24s %-10s %-8d %-8d %-40s\n", t.Name, t.GeometryType, t.SRID, t.RowCount, bounds)
	}

	fmt.Printf("\nTotal: %d tables\n", len(tables))
	fmt.Printf("\nTip: Use 'mapidx store rows --table <name>' to see features\n")
	return nil
}

// RowsAction prints the rows of an index feature class in page order.
func RowsAction(c *cli.Context) error {
	s, err := gpkg.Open(c.String("gpkg"))
	if err != nil {
		return fmt.Errorf("failed to open geopackage: %w", err)
	}
	defer s.Close()

	features, err := s.ReadFeatures(c.String("table"), c.Int("limit"))
	if err != nil {
		return err
	}

	if len(features) == 0 {
		fmt.Printf("No features in %s\n", c.String("table"))
		return nil
	}

	fmt.Printf("%-6s %-8s %-24s %-12s %-40s\n", "FID", "Page", "Name", "Scale", "Extent")
	fmt.Println(strings.Repeat("-", 94))

	for _, f := range features {
		extent := fmt.Sprintf("%.1f %.1f %.1f %.1f",
			f.Extent.XMin, f.Extent.YMin, f.Extent.XMax, f.Extent.YMax)
		fmt.Printf("%-6d %-8d %-24s 1:%-10d %-40s\n", f.FID, f.PageNum, f.Name, f.Scale, extent)
	}

	fmt.Printf("\nTotal: %d features\n", len(features))
	return nil
}
