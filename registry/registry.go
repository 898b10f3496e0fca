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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"dirpx.dev/ioc/apis"
	"dirpx.dev/ioc/config"
	uref "dirpx.dev/ioc/utils/reflect"
)

// ErrNilDefinition is returned when Add is called with a nil definition.
var ErrNilDefinition = errors.New("ioc(registry): nil definition provided")

// New constructs a bean Registry that normalizes classes according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a Registry implementation backed by sync.Map. Reads never lock.
type registry struct {
	// cfg is the configuration used for class normalization.
	cfg apis.Config
	// mu serializes writers and guards count.
	mu sync.Mutex
	// m maps the implementation class to its *apis.Definition.
	m sync.Map
	// count tracks the number of registered definitions.
	count int
	// sealed is set once the startup pass is published.
	sealed atomic.Bool
}

// Get returns the definition registered for class. A miss is reported as an
// error wrapping apis.ErrNotFound.
func (r *registry) Get(class reflect.Type) (*apis.Definition, error) {
	if class == nil {
		return nil, apis.ErrNilType
	}
	if def, ok := r.Lookup(class); ok {
		return def, nil
	}
	return nil, fmt.Errorf("%w: %s", apis.ErrNotFound, class)
}

// Lookup returns the definition registered for class if present.
func (r *registry) Lookup(class reflect.Type) (*apis.Definition, bool) {
	if class == nil {
		return nil, false
	}
	key, err := uref.Normalize(class, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.m.Load(key); ok {
		return v.(*apis.Definition), true
	}
	return nil, false
}

// Add registers def under its normalized class. At most one definition per
// class is ever stored.
func (r *registry) Add(def *apis.Definition) error {
	if def == nil {
		return ErrNilDefinition
	}
	if def.Class() == nil {
		return apis.ErrNilType
	}
	key, err := uref.Normalize(def.Class(), r.cfg)
	if err != nil {
		return fmt.Errorf("ioc(registry): %s: %w", def.Class(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return apis.ErrSealed
	}
	if _, ok := r.m.Load(key); ok {
		return fmt.Errorf("%w: %s", apis.ErrDuplicateDefinition, key)
	}
	r.m.Store(key, def)
	r.count++
	return nil
}

// Definitions returns a snapshot ordered by bean name, then class.
func (r *registry) Definitions() []*apis.Definition {
	defs := make([]*apis.Definition, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		defs = append(defs, value.(*apis.Definition))
		return true
	})
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Name() != defs[j].Name() {
			return defs[i].Name() < defs[j].Name()
		}
		return defs[i].Class().String() < defs[j].Class().String()
	})
	return defs
}

// Count returns the number of registered definitions.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Seal makes every later Add fail with apis.ErrSealed.
func (r *registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed.Store(true)
}

// Sealed reports whether Seal has been called.
func (r *registry) Sealed() bool {
	return r.sealed.Load()
}
