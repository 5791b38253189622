package config

import (
	"fmt"
	"time"

	"gopkg.in/go-playground/validator.v9"
)

func Validate(c *Config) error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}

	d, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return fmt.Errorf("pollInterval: %s", err)
	}
	if d <= 0 {
		return fmt.Errorf("pollInterval must be positive: %s", c.PollInterval)
	}

	names := map[string]bool{}
	for _, cloud := range c.Clouds {
		if names[cloud.Name] {
			return fmt.Errorf("duplicated cloud name: %s", cloud.Name)
		}
		names[cloud.Name] = true
	}

	return nil
}
