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

// Introspector extracts bean metadata from a class. How the metadata is
// obtained (reflection, static tables, generated code) is up to the
// implementation; the resolver only relies on this method set.
type Introspector interface {
	// IsValidCandidate reports whether class is concrete and exposes at
	// least one type.
	IsValidCandidate(class reflect.Type) bool
	// NameOf returns the bean name of class, or "" if it has none.
	NameOf(class reflect.Type) (string, error)
	// ExposedTypesOf returns the contracts class satisfies.
	ExposedTypesOf(class reflect.Type) ([]reflect.Type, error)
	// StereotypesOf returns the role markers attached to class.
	StereotypesOf(class reflect.Type) ([]reflect.Type, error)
}

// ContractLearner is implemented by introspectors that can pick up contract
// (interface) types from a scanned candidate batch.
type ContractLearner interface {
	// LearnContracts records every interface type in types as a contract and
	// returns how many were new.
	LearnContracts(types []reflect.Type) int
}

// NameStrategy is a pluggable naming step. An introspector chains strategies
// in order (e.g., Namer -> Table -> Tag -> Stereotype).
type NameStrategy interface {
	// TryName attempts to derive a bean name for class according to cfg.
	// It returns (name, true, nil) if handled; ("", false, nil) to fall
	// through. A non-nil error reports malformed metadata and stops the chain.
	TryName(class reflect.Type, cfg Config) (name string, handled bool, err error)
}
