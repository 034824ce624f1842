package version

import (
	"github.com/cleantech-forge/helio/internal/cmd/base"
	"github.com/cleantech-forge/helio/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: helio version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
