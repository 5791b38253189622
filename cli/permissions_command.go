package cli

import (
	"context"
	"fmt"

	"github.com/ryotarai/ec2fleet/permission"
)

type PermissionsCommand struct {
	*Meta
}

func (c *PermissionsCommand) Help() string {
	return "Usage: ec2fleet permissions -region REGION [ID]\n\n  Without ID, permissions of every backend family are checked."
}

func (c *PermissionsCommand) Synopsis() string {
	return "Check AWS permissions needed to manage a fleet"
}

func (c *PermissionsCommand) Run(args []string) int {
	flags := c.flagSet("permissions")
	conn := connectionFlags(flags)
	if !c.parse(flags, args) {
		return 1
	}

	checker := permission.NewChecker(c.Clients, *conn)
	checker.Logger = c.Logger
	missing, err := checker.MissingPermissions(context.Background(), flags.Arg(0))
	if err != nil {
		c.Ui.Error(fmt.Sprint(err))
		return 1
	}

	if len(missing) == 0 {
		c.Ui.Info("All permissions are granted")
		return 0
	}
	for _, api := range missing {
		c.Ui.Warn(fmt.Sprintf("Missing permission: %s", api))
	}
	return 2
}
