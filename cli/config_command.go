package cli

import (
	"fmt"

	"github.com/ryotarai/ec2fleet/config"
)

type ConfigCommand struct {
	*Meta
}

func (c *ConfigCommand) Help() string {
	return "Usage: ec2fleet config -config-path PATH"
}

func (c *ConfigCommand) Run(args []string) int {
	flags := c.flagSet("config")
	path := flags.String("config-path", "", "path")
	if !c.parse(flags, args) {
		return 1
	}

	cc, ok := c.loadConfig(*path)
	if !ok {
		return 1
	}

	c.Ui.Output(fmt.Sprintf("%+v", cc))

	return 0
}

func (c *ConfigCommand) Synopsis() string {
	return "Show config in parsed format"
}

func (m *Meta) loadConfig(path string) (*config.Config, bool) {
	if path == "" {
		m.Ui.Error("-config-path is required")
		return nil, false
	}

	cc, err := config.LoadFromYAMLPath(path)
	if err != nil {
		m.Ui.Error(fmt.Sprint(err))
		return nil, false
	}

	err = config.Validate(cc)
	if err != nil {
		m.Ui.Error("Validation error:")
		m.Ui.Error(fmt.Sprint(err))
		return nil, false
	}

	return cc, true
}
