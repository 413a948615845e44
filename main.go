package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cartoforge/mapidx/internal/generate"
	"github.com/cartoforge/mapidx/internal/inspect"
	"github.com/cartoforge/mapidx/internal/store"
	"github.com/cartoforge/mapidx/internal/validate"
	"github.com/cartoforge/mapidx/models"
)

func main() {
	app := &cli.App{
		Name:  "mapidx",
		Usage: "generate an index polygon feature class from a map-series layout",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "create index features for every page of a layout's series",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "project",
						Usage:    "map project document (yaml)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "layout",
						Usage:    "name of the map-series layout",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Usage:    "destination GeoPackage path",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "table",
						Usage: "output feature class name",
						Value: "series_index",
					},
					&cli.BoolFlag{
						Name:  "add-to-map",
						Usage: "add the styled result layer to the active map (overridden when the environment auto-adds outputs)",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "tool config file",
						Value: models.DefaultConfigName,
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: generate.GenerateAction,
			},
			{
				Name:  "layouts",
				Usage: "list layouts and their page series",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "project",
						Usage:    "map project document (yaml)",
						Required: true,
					},
				},
				Action: inspect.LayoutsAction,
			},
			{
				Name:  "pages",
				Usage: "preview the resolved pages of a layout's series",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "project",
						Usage:    "map project document (yaml)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "layout",
						Usage:    "name of the map-series layout",
						Required: true,
					},
				},
				Action: inspect.PagesAction,
			},
			{
				Name:  "store",
				Usage: "inspect a GeoPackage feature store",
				Subcommands: []*cli.Command{
					{
						Name:  "tables",
						Usage: "list feature tables",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "gpkg",
								Usage:    "GeoPackage path",
								Required: true,
							},
						},
						Action: store.TablesAction,
					},
					{
						Name:  "rows",
						Usage: "print index features in page order",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "gpkg",
								Usage:    "GeoPackage path",
								Required: true,
							},
							&cli.StringFlag{
								Name:  "table",
								Usage: "feature class name",
								Value: "series_index",
							},
							&cli.IntFlag{
								Name:  "limit",
								Usage: "max rows to print (0 = all)",
							},
						},
						Action: store.RowsAction,
					},
				},
			},
			{
				Name:  "validate",
				Usage: "validate a project document against the schema",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "project",
						Usage:    "map project document (yaml)",
						Required: true,
					},
				},
				Action: validate.ValidateAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
