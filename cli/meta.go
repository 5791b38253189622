package cli

import (
	"flag"
	"fmt"
	"io/ioutil"

	"github.com/mitchellh/cli"
	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/ryotarai/ec2fleet/fleet"
	"github.com/sirupsen/logrus"
)

// Meta holds what every command shares.
type Meta struct {
	Ui      cli.Ui
	Clients awsclient.Factory
	Logger  *logrus.Logger

	logLevel string
}

func (m *Meta) flagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(ioutil.Discard)
	flags.StringVar(&m.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return flags
}

func connectionFlags(flags *flag.FlagSet) *awsclient.Connection {
	conn := &awsclient.Connection{}
	flags.StringVar(&conn.CredentialsID, "credentials-id", "", "profile in the shared credentials file")
	flags.StringVar(&conn.Region, "region", "", "AWS region")
	flags.StringVar(&conn.Endpoint, "endpoint", "", "custom AWS endpoint")
	return conn
}

// parse parses args and applies -log-level. It reports errors to the Ui.
func (m *Meta) parse(flags *flag.FlagSet, args []string) bool {
	if err := flags.Parse(args); err != nil {
		m.Ui.Error(fmt.Sprint(err))
		return false
	}

	level, err := logrus.ParseLevel(m.logLevel)
	if err != nil {
		m.Ui.Error(fmt.Sprint(err))
		return false
	}
	m.Logger.SetLevel(level)
	return true
}

func (m *Meta) registry() *fleet.Registry {
	return fleet.NewRegistry(m.Clients, fleet.WithLogger(m.Logger))
}
