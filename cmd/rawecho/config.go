package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const DEFAULT_QUIT_KEY = "q"

type Config struct {
	// The file to write logs to, if omitted no logs will be written.
	LogFile string `yaml:"log_file"`
	// The key that ends the session. Defaults to q.
	QuitKey string `yaml:"quit_key"`
	// Print the bytes of every key in hex.
	Hex bool `yaml:"hex"`
}

func loadConfigFromFile(homeDir string, config *Config) error {
	file, err := os.Open(path.Join(homeDir, ".rawecho.yaml"))
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	defer file.Close()
	err = yaml.NewDecoder(file).Decode(config)
	if errors.Is(err, io.EOF) {
		// Empty file.
		return nil
	}
	return err
}

func loadConfig(homeDir string) (*Config, error) {
	config := &Config{}
	if homeDir != "" {
		if err := loadConfigFromFile(homeDir, config); err != nil {
			return nil, err
		}
	}
	if config.QuitKey == "" {
		config.QuitKey = DEFAULT_QUIT_KEY
	}
	if utf8.RuneCountInString(config.QuitKey) != 1 {
		return nil, fmt.Errorf("quit_key must be a single character, got %q", config.QuitKey)
	}
	return config, nil
}

func LoadConfig() (*Config, error) {
	// Without a home directory there is no config file, only defaults.
	homeDir, _ := os.UserHomeDir()
	return loadConfig(homeDir)
}
