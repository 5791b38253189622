package cli

import (
	"context"
	"fmt"

	"github.com/ryotarai/ec2fleet/fleet"
)

type DescribeCommand struct {
	*Meta
}

func (c *DescribeCommand) Help() string {
	return "Usage: ec2fleet describe [-all] [-selected ID] -region REGION"
}

func (c *DescribeCommand) Synopsis() string {
	return "List fleets visible to the connection"
}

func (c *DescribeCommand) Run(args []string) int {
	flags := c.flagSet("describe")
	conn := connectionFlags(flags)
	showAll := flags.Bool("all", false, "include fleets that are not active or not persistent")
	selected := flags.String("selected", "", "fleet id to always include")
	if !c.parse(flags, args) {
		return 1
	}

	options := fleet.Options{}
	for _, f := range c.registry().All() {
		if err := f.Describe(context.Background(), *conn, &options, *selected, *showAll); err != nil {
			c.Ui.Error(fmt.Sprintf("%s: %s", f.Label(), err))
			return 1
		}
	}

	for _, o := range options {
		mark := " "
		if o.Selected {
			mark = "*"
		}
		c.Ui.Output(fmt.Sprintf("%s %s", mark, o.Label))
	}
	return 0
}
