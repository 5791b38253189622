package cli

import (
	"fmt"
)

const Version = "0.1.0"

type VersionCommand struct {
	*Meta
}

func (c *VersionCommand) Help() string {
	return "Usage: ec2fleet version"
}

func (c *VersionCommand) Synopsis() string {
	return "Show version"
}

func (c *VersionCommand) Run(args []string) int {
	c.Ui.Output(fmt.Sprintf("ec2fleet %s", Version))
	return 0
}
