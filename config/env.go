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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"dirpx.dev/ioc/apis"
)

// Environment keys read by Load.
const (
	EnvFailFast      = "IOC_FAIL_FAST"
	EnvMaxUnwrap     = "IOC_MAX_UNWRAP"
	EnvTagKey        = "IOC_TAG_KEY"
	EnvDefaultNames  = "IOC_DEFAULT_NAMES"
	EnvScanContracts = "IOC_SCAN_CONTRACTS"
	EnvLogLevel      = "IOC_LOG_LEVEL"
)

// DefaultEnvFile is read by Load when no files are given. It may be absent.
const DefaultEnvFile = ".env"

// Load builds an apis.Config from .env files and the process environment.
// Process variables win over file values, matching godotenv.Load semantics.
// Explicitly named files must exist; the implicit DefaultEnvFile may not.
// Files with a .toml extension are read with the keys of fileConfig.
func Load(files ...string) (apis.Config, error) {
	vals, err := readEnvFiles(files)
	if err != nil {
		return DefaultConfig(), err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	}

	var opts []Option
	if v, ok := lookup(EnvFailFast); ok {
		b, err := parseBool(EnvFailFast, v)
		if err != nil {
			return DefaultConfig(), err
		}
		opts = append(opts, WithFailFast(b))
	}
	if v, ok := lookup(EnvMaxUnwrap); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("ioc(config): %s=%q: %w", EnvMaxUnwrap, v, err)
		}
		opts = append(opts, WithMaxUnwrap(n))
	}
	if v, ok := lookup(EnvTagKey); ok {
		opts = append(opts, WithTagKey(v))
	}
	if v, ok := lookup(EnvDefaultNames); ok {
		b, err := parseBool(EnvDefaultNames, v)
		if err != nil {
			return DefaultConfig(), err
		}
		opts = append(opts, WithDefaultNames(b))
	}
	if v, ok := lookup(EnvScanContracts); ok {
		b, err := parseBool(EnvScanContracts, v)
		if err != nil {
			return DefaultConfig(), err
		}
		opts = append(opts, WithScanContracts(b))
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		opts = append(opts, WithLogLevel(v))
	}
	return NewConfig(opts...), nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		vals, err := godotenv.Read(DefaultEnvFile)
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ioc(config): read %s: %w", DefaultEnvFile, err)
		}
		return vals, nil
	}

	// Later files override earlier ones.
	vals := map[string]string{}
	for _, file := range files {
		fvals, err := readFile(file)
		if err != nil {
			return nil, fmt.Errorf("ioc(config): read %s: %w", file, err)
		}
		maps.Copy(vals, fvals)
	}
	return vals, nil
}

// readFile reads one config file, choosing the decoder by extension.
func readFile(path string) (map[string]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return readTOML(path)
	}
	return godotenv.Read(path)
}

func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("ioc(config): %s=%q: %w", key, v, err)
	}
	return b, nil
}
