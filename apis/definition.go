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

package apis

import (
	"reflect"
	"slices"
	"strings"
)

// Definition is the immutable description of a managed bean: its name, its
// implementation class and the contract metadata extracted for it.
//
// A Definition is built once by the resolver and handed off to a Registry,
// which owns it from then on. All accessors return copies.
type Definition struct {
	name        string
	class       reflect.Type
	exposed     []reflect.Type
	stereotypes []reflect.Type
}

// NewDefinition constructs a Definition. The exposed and stereotype sets are
// copied, de-duplicated and sorted by SortedTypes so that equal inputs always
// produce equal definitions.
func NewDefinition(name string, class reflect.Type, exposed, stereotypes []reflect.Type) *Definition {
	return &Definition{
		name:        name,
		class:       class,
		exposed:     SortedTypes(exposed),
		stereotypes: SortedTypes(stereotypes),
	}
}

// Name returns the bean name.
func (d *Definition) Name() string { return d.name }

// Class returns the implementation class, the registry key of the bean.
func (d *Definition) Class() reflect.Type { return d.class }

// ExposedTypes returns the contracts this bean can be looked up by.
func (d *Definition) ExposedTypes() []reflect.Type {
	return append([]reflect.Type(nil), d.exposed...)
}

// Stereotypes returns the role markers attached to the class.
func (d *Definition) Stereotypes() []reflect.Type {
	return append([]reflect.Type(nil), d.stereotypes...)
}

// Exposes reports whether t is one of the bean's exposed types.
func (d *Definition) Exposes(t reflect.Type) bool {
	return containsType(d.exposed, t)
}

// HasStereotype reports whether the class carries the stereotype t.
func (d *Definition) HasStereotype(t reflect.Type) bool {
	return containsType(d.stereotypes, t)
}

// String implements fmt.Stringer.
func (d *Definition) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.name + "(" + d.class.String() + ")"
}

// SortedTypes returns a de-duplicated copy of types ordered by String(), then
// by PkgPath() for types from distinct packages sharing a name. Nil entries
// are dropped. The result is never nil.
func SortedTypes(types []reflect.Type) []reflect.Type {
	out := make([]reflect.Type, 0, len(types))
	for _, t := range types {
		if t == nil || containsType(out, t) {
			continue
		}
		out = append(out, t)
	}
	slices.SortStableFunc(out, compareTypes)
	return out
}

func compareTypes(a, b reflect.Type) int {
	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}
	return strings.Compare(a.PkgPath(), b.PkgPath())
}

func containsType(types []reflect.Type, t reflect.Type) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}
