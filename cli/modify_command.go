package cli

import (
	"context"
	"fmt"
)

type ModifyCommand struct {
	*Meta
}

func (c *ModifyCommand) Help() string {
	return "Usage: ec2fleet modify -region REGION -target N [-min N] [-max N] ID"
}

func (c *ModifyCommand) Synopsis() string {
	return "Set target capacity of a fleet"
}

func (c *ModifyCommand) Run(args []string) int {
	flags := c.flagSet("modify")
	conn := connectionFlags(flags)
	target := flags.Int("target", -1, "target capacity")
	min := flags.Int("min", 0, "minimum size (Auto Scaling Groups only)")
	max := flags.Int("max", -1, "maximum size (Auto Scaling Groups only), defaults to target")
	if !c.parse(flags, args) {
		return 1
	}

	if flags.NArg() != 1 {
		c.Ui.Error("exactly one fleet id is required")
		return 1
	}
	id := flags.Arg(0)

	if *target < 0 {
		c.Ui.Error("-target is required")
		return 1
	}
	if *max < 0 {
		*max = *target
	}
	if *min > *target || *target > *max {
		c.Ui.Error(fmt.Sprintf("-min (%d) <= -target (%d) <= -max (%d) must hold", *min, *target, *max))
		return 1
	}

	f := c.registry().Resolve(id)
	if err := f.Modify(context.Background(), *conn, id, *target, *min, *max); err != nil {
		c.Ui.Error(fmt.Sprint(err))
		return 1
	}

	c.Ui.Info(fmt.Sprintf("%s %s: target capacity set to %d", f.Label(), id, *target))
	return 0
}
