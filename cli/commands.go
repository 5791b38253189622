package cli

import (
	"os"

	"github.com/mitchellh/cli"
	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/sirupsen/logrus"
)

func Commands() map[string]cli.CommandFactory {
	ui := &cli.PrefixedUi{
		Ui: &cli.BasicUi{
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		InfoPrefix:  "INFO:  ",
		ErrorPrefix: "ERROR: ",
		WarnPrefix:  "WARN:  ",
	}

	logger := logrus.New()
	logger.Out = os.Stderr

	return commands(&Meta{
		Ui:      ui,
		Clients: awsclient.NewSessionFactory(),
		Logger:  logger,
	})
}

func commands(m *Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &VersionCommand{Meta: m}, nil
		},
		"config": func() (cli.Command, error) {
			return &ConfigCommand{Meta: m}, nil
		},
		"describe": func() (cli.Command, error) {
			return &DescribeCommand{Meta: m}, nil
		},
		"state": func() (cli.Command, error) {
			return &StateCommand{Meta: m}, nil
		},
		"modify": func() (cli.Command, error) {
			return &ModifyCommand{Meta: m}, nil
		},
		"permissions": func() (cli.Command, error) {
			return &PermissionsCommand{Meta: m}, nil
		},
		"watch": func() (cli.Command, error) {
			return &WatchCommand{Meta: m}, nil
		},
	}
}
