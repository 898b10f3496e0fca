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
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the TOML form of the configuration:
//
//	fail_fast = true
//	max_unwrap = 4
//	tag_key = "bean"
//	default_names = true
//	scan_contracts = false
//	log_level = "debug"
//
// Unknown keys are rejected.
type fileConfig struct {
	FailFast      *bool   `toml:"fail_fast"`
	MaxUnwrap     *int    `toml:"max_unwrap"`
	TagKey        *string `toml:"tag_key"`
	DefaultNames  *bool   `toml:"default_names"`
	ScanContracts *bool   `toml:"scan_contracts"`
	LogLevel      *string `toml:"log_level"`
}

// readTOML decodes a TOML file into the same key space as an env file, so
// both kinds merge and parse the same way.
func readTOML(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fc fileConfig
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&fc); err != nil {
		return nil, err
	}

	vals := map[string]string{}
	if fc.FailFast != nil {
		vals[EnvFailFast] = strconv.FormatBool(*fc.FailFast)
	}
	if fc.MaxUnwrap != nil {
		vals[EnvMaxUnwrap] = strconv.Itoa(*fc.MaxUnwrap)
	}
	if fc.TagKey != nil {
		vals[EnvTagKey] = *fc.TagKey
	}
	if fc.DefaultNames != nil {
		vals[EnvDefaultNames] = strconv.FormatBool(*fc.DefaultNames)
	}
	if fc.ScanContracts != nil {
		vals[EnvScanContracts] = strconv.FormatBool(*fc.ScanContracts)
	}
	if fc.LogLevel != nil {
		vals[EnvLogLevel] = *fc.LogLevel
	}
	return vals, nil
}
