// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package configuration resolves the docnav configuration file and
// environment overrides for a viper instance
package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const (
	// DefaultConfigFileName is the configuration file looked up in DocnavHomeDir
	DefaultConfigFileName = "config.yaml"
	// DocnavHomeDir is the docnav directory in the user home
	DocnavHomeDir = ".docnav"
	// DocnavConfigEnv names the environment variable pointing to a configuration file
	DocnavConfigEnv = "DOCNAVCONFIG"
	// EnvPrefix prefixes the environment variables overriding options
	EnvPrefix = "DOCNAV"
)

// Loader configures a viper instance
type Loader interface {
	Load(vip *viper.Viper) error
}

// DefaultConfigurationLoader reads the file resolved by File and
// enables DOCNAV_ prefixed environment overrides
type DefaultConfigurationLoader struct{}

// Load implements Loader
func (d *DefaultConfigurationLoader) Load(vip *viper.Viper) error {
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	configFilePath, err := File()
	if err != nil {
		return err
	}
	if configFilePath == "" {
		return nil
	}
	vip.SetConfigFile(configFilePath)
	vip.SetConfigType("yaml")
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", configFilePath, err)
	}
	klog.V(4).Infof("Configuration: %s", vip.ConfigFileUsed())
	return nil
}

// File returns the configuration file path. $DOCNAVCONFIG wins when set,
// else $HOME/.docnav/config.yaml is used if present. An empty path means
// there is no configuration file
func File() (string, error) {
	if configFilePath, found := os.LookupEnv(DocnavConfigEnv); found {
		if configFilePath == "" {
			return "", fmt.Errorf("the provided environment variable %s is set to empty string", DocnavConfigEnv)
		}
		return check(configFilePath)
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		klog.Warningf("failed to get user home directory: %v", err)
		return "", nil
	}
	return check(filepath.Join(userHomeDir, DocnavHomeDir, DefaultConfigFileName))
}

func check(configFilePath string) (string, error) {
	stat, err := os.Stat(configFilePath)
	if os.IsNotExist(err) {
		klog.V(4).Infof("configuration file %s not found", configFilePath)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get file info for configuration file path %s: %w", configFilePath, err)
	}
	if stat.IsDir() {
		return "", fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	return configFilePath, nil
}
