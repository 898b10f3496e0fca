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

import "reflect"

// Registry holds at most one Definition per implementation class.
// It is written during the startup pass and read-only once sealed.
type Registry interface {
	// Get returns the definition registered for class, or an error
	// matching ErrNotFound.
	Get(class reflect.Type) (*Definition, error)
	// Lookup returns the definition registered for class if present.
	Lookup(class reflect.Type) (def *Definition, ok bool)
	// Add registers def under def.Class(). It fails with ErrDuplicateDefinition
	// if the class is already registered and with ErrSealed after Seal.
	Add(def *Definition) error
	// Definitions returns a snapshot ordered by bean name.
	Definitions() []*Definition
	// Count returns the number of registered definitions.
	Count() int
	// Seal ends the mutation phase.
	Seal()
	// Sealed reports whether Seal has been called.
	Sealed() bool
}

// Index maps exposed types to the implementation classes bound to them.
type Index interface {
	// Bind adds class to the set bound to typ. Binding the same pair twice has
	// no additional effect. It fails with ErrSealed after Seal.
	Bind(typ, class reflect.Type) error
	// Lookup returns the classes bound to typ ordered by type string.
	// The result is empty, never nil, when nothing is bound.
	Lookup(typ reflect.Type) []reflect.Type
	// Types returns every type with at least one binding.
	Types() []reflect.Type
	// Seal ends the mutation phase.
	Seal()
	// Sealed reports whether Seal has been called.
	Sealed() bool
}

// Names provides an explicit, reflection-free name table for bean classes.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Names interface {
	// Register associates a (normalized) class with a fixed bean name.
	// Implementations should be idempotent; conflicting re-registrations fail.
	Register(t reflect.Type, name string) error
	// Lookup returns a name for a class if present.
	Lookup(t reflect.Type) (name string, ok bool)
	// Entries returns a snapshot ordered by name.
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (type, name) association in a Names snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Name is the associated name.
	Name string
}
