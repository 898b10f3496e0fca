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
	"dirpx.dev/ioc/apis"
)

const (
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultFailFast represents the default for FailFast.
	// When false, batch resolution continues past failing classes.
	DefaultFailFast = false
	// DefaultTagKey represents the default for TagKey.
	DefaultTagKey = "bean"
	// DefaultDefaultNames represents the default for DefaultNames.
	DefaultDefaultNames = true
	// DefaultScanContracts represents the default for ScanContracts.
	DefaultScanContracts = true
	// DefaultLogLevel represents the default for LogLevel.
	DefaultLogLevel = "info"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap and TagKey are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.TagKey == "" {
		cfg.TagKey = DefaultTagKey
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxUnwrap:     DefaultMaxUnwrap,
		FailFast:      DefaultFailFast,
		TagKey:        DefaultTagKey,
		DefaultNames:  DefaultDefaultNames,
		ScanContracts: DefaultScanContracts,
		LogLevel:      DefaultLogLevel,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithFailFast sets the FailFast option.
func WithFailFast(failFast bool) Option {
	return func(c *apis.Config) {
		c.FailFast = failFast
	}
}

// WithTagKey sets the TagKey option.
// An empty key resets to the default.
func WithTagKey(key string) Option {
	return func(c *apis.Config) {
		if key == "" {
			key = DefaultTagKey
		}
		c.TagKey = key
	}
}

// WithDefaultNames sets the DefaultNames option.
func WithDefaultNames(enabled bool) Option {
	return func(c *apis.Config) {
		c.DefaultNames = enabled
	}
}

// WithScanContracts sets the ScanContracts option.
func WithScanContracts(enabled bool) Option {
	return func(c *apis.Config) {
		c.ScanContracts = enabled
	}
}

// WithLogLevel sets the LogLevel option.
func WithLogLevel(level string) Option {
	return func(c *apis.Config) {
		c.LogLevel = level
	}
}
