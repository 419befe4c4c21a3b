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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deployment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_LoadConfig(t *testing.T) {

	path := writeConfigFile(t, `
backend:
  base_url: "https://backend.example.com/api"
  timeout_seconds: 10
storage:
  path: "data/client.db"
log:
  log_level: "debug"
catalog:
  cache_ttl_minutes: 15
registration:
  default_language: "ar"
  default_level: "intermediate"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://backend.example.com/api", cfg.Backend.BaseURL)
	require.Equal(t, 10, cfg.Backend.TimeoutSeconds)
	require.Equal(t, "data/client.db", cfg.Storage.Path)
	require.Equal(t, "debug", cfg.Log.LogLevel)
	require.Equal(t, 15, cfg.Catalog.CacheTTLMinutes)
	require.Equal(t, "ar", cfg.Registration.DefaultLanguage)
	require.Equal(t, "intermediate", cfg.Registration.DefaultLevel)
}

func Test_LoadConfig_AppliesDefaults(t *testing.T) {

	path := writeConfigFile(t, `
backend:
  base_url: "https://backend.example.com/api"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Backend.TimeoutSeconds)
	require.Equal(t, 60, cfg.Catalog.CacheTTLMinutes)
	require.Equal(t, "info", cfg.Log.LogLevel)
	require.Equal(t, "en", cfg.Registration.DefaultLanguage)
	require.Equal(t, "beginner", cfg.Registration.DefaultLevel)
}

func Test_LoadConfig_ExpandsEnvironmentVariables(t *testing.T) {

	t.Setenv("BACKEND_BASE_URL", "https://env.example.com")
	path := writeConfigFile(t, `
backend:
  base_url: "${BACKEND_BASE_URL}"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", cfg.Backend.BaseURL)
}

func Test_LoadConfig_MissingFile(t *testing.T) {

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
