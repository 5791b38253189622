package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// LoadFromYAMLPath reads and parses the file at path. It does not validate.
func LoadFromYAMLPath(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := LoadFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadFromYAML parses data over the defaults of NewConfig. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func LoadFromYAML(data []byte) (*Config, error) {
	c := NewConfig()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
