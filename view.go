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

package ioc

import (
	"reflect"

	"dirpx.dev/ioc/apis"
)

// View is a read-only handle on a container snapshot.
type View struct {
	s *state
}

// Published reports whether the snapshot was taken after Publish.
func (v View) Published() bool {
	return v.s.published
}

// LookupByType returns the classes bound to typ, ordered by type string.
// Pointers to interfaces are accepted.
func (v View) LookupByType(typ reflect.Type) []reflect.Type {
	if typ != nil && typ.Kind() == reflect.Pointer && typ.Elem().Kind() == reflect.Interface {
		typ = typ.Elem()
	}
	return v.s.idx.Lookup(typ)
}

// Definition returns the definition registered for class, or an error
// matching apis.ErrNotFound.
func (v View) Definition(class reflect.Type) (*apis.Definition, error) {
	return v.s.reg.Get(class)
}

// Definitions returns every registered definition ordered by name.
func (v View) Definitions() []*apis.Definition {
	return v.s.reg.Definitions()
}

// Bindings returns every bound type with its classes.
func (v View) Bindings() map[reflect.Type][]reflect.Type {
	types := v.s.idx.Types()
	out := make(map[reflect.Type][]reflect.Type, len(types))
	for _, t := range types {
		out[t] = v.s.idx.Lookup(t)
	}
	return out
}

// TypeOf returns the reflect.Type of T. For interfaces this is the
// interface type itself.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Lookup returns the definitions of every class bound to T.
func Lookup[T any](c *Container) []*apis.Definition {
	v := c.View()
	classes := v.LookupByType(TypeOf[T]())
	out := make([]*apis.Definition, 0, len(classes))
	for _, class := range classes {
		if def, err := v.Definition(class); err == nil {
			out = append(out, def)
		}
	}
	return out
}
