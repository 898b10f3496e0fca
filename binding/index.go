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

package binding

import (
	"reflect"
	"sync"

	"dirpx.dev/ioc/apis"
)

// New constructs an empty type binding Index.
func New() apis.Index {
	return &index{bindings: make(map[reflect.Type]map[reflect.Type]struct{})}
}

// index maps an exposed type to the set of implementation classes bound to
// it. Entries are only ever added; nothing is pruned.
type index struct {
	mu       sync.RWMutex
	bindings map[reflect.Type]map[reflect.Type]struct{}
	sealed   bool
}

// Bind adds class to the set bound to typ, creating the set if absent.
func (x *index) Bind(typ, class reflect.Type) error {
	if typ == nil || class == nil {
		return apis.ErrNilType
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.sealed {
		return apis.ErrSealed
	}
	set, ok := x.bindings[typ]
	if !ok {
		set = make(map[reflect.Type]struct{})
		x.bindings[typ] = set
	}
	set[class] = struct{}{}
	return nil
}

// Lookup returns the classes bound to typ, ordered by type string.
func (x *index) Lookup(typ reflect.Type) []reflect.Type {
	x.mu.RLock()
	defer x.mu.RUnlock()

	set := x.bindings[typ]
	out := make([]reflect.Type, 0, len(set))
	for class := range set {
		out = append(out, class)
	}
	return apis.SortedTypes(out)
}

// Types returns every exposed type with at least one binding.
func (x *index) Types() []reflect.Type {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]reflect.Type, 0, len(x.bindings))
	for typ := range x.bindings {
		out = append(out, typ)
	}
	return apis.SortedTypes(out)
}

// Seal makes every later Bind fail with apis.ErrSealed.
func (x *index) Seal() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.sealed = true
}

// Sealed reports whether Seal has been called.
func (x *index) Sealed() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.sealed
}
