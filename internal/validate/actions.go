package validate

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cartoforge/mapidx/pkg/project"
)

// ValidateAction checks a project document against the embedded schema.
func ValidateAction(c *cli.Context) error {
	path := c.String("project")
	if err := project.ValidateDocument(path); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %s", err), 1)
	}

	fmt.Printf("%s is a valid project document\n", path)
	return nil
}
