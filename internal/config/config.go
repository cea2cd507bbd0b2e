package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	PathEnv        = "STACKFUN_CONFIG"
	defaultPath    = "$HOME/.config/stackfun/config.yaml"
	defaultWorkers = 4
)

func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}

	return os.ExpandEnv(defaultPath)
}

// Load reads the config at path. A missing file is not an error.
func Load(path string) (Config, error) {
	ret := Config{
		Workers: defaultWorkers,
	}

	marshaled, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ret, nil
	}

	if err != nil {
		return ret, err
	}

	if err := yaml.Unmarshal(marshaled, &ret); err != nil {
		return ret, err
	}

	if ret.Workers <= 0 {
		ret.Workers = defaultWorkers
	}

	return ret, nil
}

type Config struct {
	Debug   bool     `yaml:"debug"`
	LogFile string   `yaml:"log_file"`
	Workers int      `yaml:"workers"`
	Tags    []string `yaml:"tags"`
}
