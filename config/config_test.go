/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/ioc/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.FailFast != config.DefaultFailFast {
		t.Fatalf("FailFast = %v, want %v", got.FailFast, config.DefaultFailFast)
	}
	if got.TagKey != config.DefaultTagKey {
		t.Fatalf("TagKey = %q, want %q", got.TagKey, config.DefaultTagKey)
	}
	if got.DefaultNames != config.DefaultDefaultNames {
		t.Fatalf("DefaultNames = %v, want %v", got.DefaultNames, config.DefaultDefaultNames)
	}
	if got.ScanContracts != config.DefaultScanContracts {
		t.Fatalf("ScanContracts = %v, want %v", got.ScanContracts, config.DefaultScanContracts)
	}
	if got.LogLevel != config.DefaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", got.LogLevel, config.DefaultLogLevel)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithFailFast(t *testing.T) {
	c := config.NewConfig(config.WithFailFast(true))
	if !c.FailFast {
		t.Fatalf("FailFast = %v, want true", c.FailFast)
	}
}

func TestWithTagKey_EmptyResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithTagKey("inject"))
	if c.TagKey != "inject" {
		t.Fatalf("TagKey = %q, want inject", c.TagKey)
	}
	c2 := config.NewConfig(config.WithTagKey(""))
	if c2.TagKey != config.DefaultTagKey {
		t.Fatalf("TagKey = %q, want default %q", c2.TagKey, config.DefaultTagKey)
	}
}

func TestWithMaxUnwrap_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}
}

func TestWithMaxUnwrap_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(-1))
	if c.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithFailFast(true),
		config.WithFailFast(false),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithDefaultNames(false),
		config.WithDefaultNames(true),
		config.WithScanContracts(true),
		config.WithScanContracts(false),
		config.WithLogLevel("warn"),
		config.WithLogLevel("debug"),
	)

	if c.FailFast {
		t.Errorf("FailFast = %v, want false (last option wins)", c.FailFast)
	}
	if c.MaxUnwrap != 5 {
		t.Errorf("MaxUnwrap = %d, want 5 (last option wins)", c.MaxUnwrap)
	}
	if !c.DefaultNames {
		t.Errorf("DefaultNames = %v, want true (last option wins)", c.DefaultNames)
	}
	if c.ScanContracts {
		t.Errorf("ScanContracts = %v, want false (last option wins)", c.ScanContracts)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug (last option wins)", c.LogLevel)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ioc.env")
	body := "IOC_FAIL_FAST=true\nIOC_MAX_UNWRAP=3\nIOC_TAG_KEY=inject\nIOC_LOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if !c.FailFast || c.MaxUnwrap != 3 || c.TagKey != "inject" || c.LogLevel != "debug" {
		t.Fatalf("Load = %+v, want FailFast=true MaxUnwrap=3 TagKey=inject LogLevel=debug", c)
	}
	if c.DefaultNames != config.DefaultDefaultNames {
		t.Fatalf("DefaultNames = %v, want default %v", c.DefaultNames, config.DefaultDefaultNames)
	}
}

func TestLoad_ProcessEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ioc.env")
	if err := os.WriteFile(path, []byte("IOC_SCAN_CONTRACTS=true\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(config.EnvScanContracts, "false")

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if c.ScanContracts {
		t.Fatalf("ScanContracts = %v, want false from process env", c.ScanContracts)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("missing explicit file: expected error, got nil")
	}

	empty := filepath.Join(t.TempDir(), "empty.env")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(config.EnvFailFast, "maybe")
	if _, err := config.Load(empty); err == nil {
		t.Fatalf("bad bool: expected error, got nil")
	}
}

func TestLoad_BadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ioc.env")
	if err := os.WriteFile(path, []byte("IOC_MAX_UNWRAP=lots\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("IOC_MAX_UNWRAP=lots: expected error, got nil")
	}
}

func TestLoad_TOMLAndEnvFilesMerge(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "ioc.toml")
	body := "fail_fast = true\nmax_unwrap = 3\nlog_level = \"debug\"\n"
	if err := os.WriteFile(tomlPath, []byte(body), 0o600); err != nil {
		t.Fatalf("write toml: %v", err)
	}
	envPath := filepath.Join(dir, "override.env")
	if err := os.WriteFile(envPath, []byte("IOC_LOG_LEVEL=warn\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := config.Load(tomlPath, envPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.FailFast || cfg.MaxUnwrap != 3 {
		t.Fatalf("toml values not applied: %+v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn (later file wins)", cfg.LogLevel)
	}
	if cfg.TagKey != config.DefaultTagKey {
		t.Fatalf("TagKey = %q, want default", cfg.TagKey)
	}
}

func TestLoad_TOMLUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ioc.toml")
	if err := os.WriteFile(path, []byte("fail_fats = true\n"), 0o600); err != nil {
		t.Fatalf("write toml: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("Load: expected error for unknown key")
	}
}

func TestLoad_TOMLExtensionIsCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IOC.TOML")
	if err := os.WriteFile(path, []byte("tag_key = \"inject\"\n"), 0o600); err != nil {
		t.Fatalf("write toml: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.TagKey != "inject" {
		t.Fatalf("TagKey = %q, want inject", cfg.TagKey)
	}
}
