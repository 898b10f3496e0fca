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

package builder

import (
	"io"
	"os"
	"reflect"

	"github.com/charmbracelet/log"

	"dirpx.dev/ioc/apis"
	"dirpx.dev/ioc/binding"
	"dirpx.dev/ioc/introspect"
	"dirpx.dev/ioc/naming"
	"dirpx.dev/ioc/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds an empty bean registry for cfg.
func (b *builder) BuildRegistry(cfg apis.Config) apis.Registry {
	return registry.New(cfg)
}

// BuildIndex builds an empty type binding index.
func (b *builder) BuildIndex(apis.Config) apis.Index {
	return binding.New()
}

// BuildNames builds an empty explicit name table.
func (b *builder) BuildNames(cfg apis.Config) apis.Names {
	return naming.New(cfg)
}

// BuildIntrospector builds the reflection introspector. Its naming chain
// consults BeanNamer, then names, then the struct tag, then the stereotype
// default.
func (b *builder) BuildIntrospector(cfg apis.Config, names apis.Names, contracts []reflect.Type) apis.Introspector {
	return introspect.New(cfg, names, contracts...)
}

// NewLogger returns a logger writing to stderr at cfg.LogLevel. An unknown
// level falls back to info.
func NewLogger(cfg apis.Config) *log.Logger {
	return newLogger(os.Stderr, cfg)
}

func newLogger(w io.Writer, cfg apis.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "ioc",
		Level:  level,
	})
}
