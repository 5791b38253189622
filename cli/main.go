package cli

import (
	"os"

	"github.com/mitchellh/cli"
	"github.com/sirupsen/logrus"
)

const helpHeader = "Inspect and resize EC2 Fleets, Spot Fleets and Auto Scaling Groups."

// Run executes the command named by args and returns the exit status.
func Run(args []string) int {
	c := cli.NewCLI("ec2fleet", Version)
	c.Args = args
	c.Commands = Commands()
	c.HelpFunc = helpFunc
	c.HelpWriter = os.Stdout

	exitCode, err := c.Run()
	if err != nil {
		logrus.WithError(err).Error("Failed to execute command")
		return 1
	}

	return exitCode
}

func helpFunc(commands map[string]cli.CommandFactory) string {
	return helpHeader + "\n\n" + cli.BasicHelpFunc("ec2fleet")(commands)
}
