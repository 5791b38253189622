package config

import (
	"time"

	"github.com/ryotarai/ec2fleet/awsclient"
)

type Config struct {
	PollInterval   string  `yaml:"pollInterval" validate:"required"`
	HTTPAddr       string  `yaml:"httpAddr"`
	RedisURL       string  `yaml:"redisURL"`
	RedisKeyPrefix string  `yaml:"redisKeyPrefix"`
	Clouds         []Cloud `yaml:"clouds" validate:"required,min=1,dive"`
}

// Cloud is one fleet watched through one AWS connection.
type Cloud struct {
	Name          string `yaml:"name" validate:"required"`
	CredentialsID string `yaml:"credentialsID"`
	Region        string `yaml:"region" validate:"required"`
	Endpoint      string `yaml:"endpoint" validate:"omitempty,url"`
	Fleet         string `yaml:"fleet" validate:"required"`
	Label         string `yaml:"label"`
}

func NewConfig() *Config {
	return &Config{
		PollInterval:   "1m",
		RedisKeyPrefix: "ec2fleet/",
	}
}

func (c *Cloud) Connection() awsclient.Connection {
	return awsclient.Connection{
		CredentialsID: c.CredentialsID,
		Region:        c.Region,
		Endpoint:      c.Endpoint,
	}
}

// PollDuration returns PollInterval parsed. Validate has already rejected
// unparsable values.
func (c *Config) PollDuration() time.Duration {
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return time.Minute
	}
	return d
}
