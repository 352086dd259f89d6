// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const (
	// DefaultConfigFileName is the name of the configuration file in HomeDir
	DefaultConfigFileName = "config.yaml"
	// HomeDir is the directory of the configuration file in the user's home
	HomeDir = ".vditor-bridge"
	// ConfigEnv names the environment variable overriding the configuration file path
	ConfigEnv = "VDITOR_BRIDGE_CONFIG"
)

// Loader loads the configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader loads the file named by ConfigEnv or, when the
// variable is not set, the DefaultConfigFileName in the HomeDir of the user.
// A missing file yields an empty configuration.
type DefaultConfigurationLoader struct{}

// Load implements Loader
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(ConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", ConfigEnv)
		}
		return load(configFilePath)
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return load(filepath.Join(userHomeDir, HomeDir, DefaultConfigFileName))
}

func load(configFilePath string) (*Config, error) {
	stat, err := os.Stat(configFilePath)
	if errors.Is(err, os.ErrNotExist) {
		klog.V(6).Infof("no configuration file at %s", configFilePath)
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %w", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(configFile))
	decoder.KnownFields(true)
	if err = decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid configuration file %s: %w", configFilePath, err)
	}
	klog.V(4).Infof("loaded configuration from %s", configFilePath)
	return config, nil
}
