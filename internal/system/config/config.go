/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type CatalogConfig struct {
	CacheTTLMinutes int `yaml:"cache_ttl_minutes"`
}

type RegistrationConfig struct {
	DefaultLanguage string `yaml:"default_language"`
	DefaultLevel    string `yaml:"default_level"`
	DefaultCountry  string `yaml:"default_country"`
}

type Config struct {
	Backend      BackendConfig      `yaml:"backend"`
	Storage      StorageConfig      `yaml:"storage"`
	Log          LogConfig          `yaml:"log"`
	Catalog      CatalogConfig      `yaml:"catalog"`
	Registration RegistrationConfig `yaml:"registration"`
}

// LoadConfig reads the yaml configuration file, expanding environment
// variable references before unmarshalling.
func LoadConfig(filePath string) (*Config, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, err
	}
	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Backend.TimeoutSeconds <= 0 {
		config.Backend.TimeoutSeconds = 30
	}
	if config.Catalog.CacheTTLMinutes <= 0 {
		config.Catalog.CacheTTLMinutes = 60
	}
	if config.Log.LogLevel == "" {
		config.Log.LogLevel = "info"
	}
	if config.Registration.DefaultLanguage == "" {
		config.Registration.DefaultLanguage = "en"
	}
	if config.Registration.DefaultLevel == "" {
		config.Registration.DefaultLevel = "beginner"
	}
}
