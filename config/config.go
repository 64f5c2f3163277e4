package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when --config is not
// given.
const EnvVar = "MINIGREP_CONFIG"

// Config holds default option values loaded from an optional YAML file.
// Values act as defaults only: a flag given on the command line cannot be
// turned back off by the file.
type Config struct {
	IgnoreCase bool `yaml:"ignore_case"`
	LineNumber bool `yaml:"line_number"`
	WholeLine  bool `yaml:"whole_line"`
	Invert     bool `yaml:"invert"`
	Count      bool `yaml:"count"`
	ListFiles  bool `yaml:"list_files"`
	Color      bool `yaml:"color"`
	Machine    bool `yaml:"machine"`
	Text       bool `yaml:"text"`
}

// Load reads defaults from path, falling back to $MINIGREP_CONFIG when
// path is empty. A missing file is only an error when it was explicitly
// asked for.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %s", path, err)
	}

	return cfg, nil
}
