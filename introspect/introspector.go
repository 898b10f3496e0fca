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

// Package introspect provides the default reflection-based apis.Introspector.
//
// Exposed types are drawn from a catalog of contract interfaces: a class
// exposes every known contract that T or *T implements, plus whatever it
// declares through apis.Exposer. Contracts are seeded at construction, added
// with AddContracts, or learned from the interface types of a scanned batch.
package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/ioc/apis"
	"dirpx.dev/ioc/strategy"
	uref "dirpx.dev/ioc/utils/reflect"
)

// ErrNotExposable is returned when an apis.Exposer declares a type that is not
// an interface implemented by the class.
var ErrNotExposable = errors.New("ioc(introspect): declared exposed type is not implemented")

// DefaultChain returns the standard naming chain:
// BeanNamer -> name table -> struct tag -> stereotype default.
func DefaultChain(names apis.Names) Chain {
	return NewChain(
		strategy.NewNamerStrategy(),
		strategy.NewTableStrategy(names),
		strategy.NewTagStrategy(),
		strategy.NewStereotypeStrategy(),
	)
}

// Introspector is the default apis.Introspector. It is safe for concurrent use.
type Introspector struct {
	cfg   apis.Config
	chain Chain

	mu        sync.RWMutex
	contracts map[reflect.Type]struct{}
}

// Ensure Introspector implements the introspection contracts.
var (
	_ apis.Introspector    = (*Introspector)(nil)
	_ apis.ContractLearner = (*Introspector)(nil)
)

// New constructs an Introspector using DefaultChain(names).
func New(cfg apis.Config, names apis.Names, contracts ...reflect.Type) *Introspector {
	return NewWithChain(cfg, DefaultChain(names), contracts...)
}

// NewWithChain constructs an Introspector with a custom naming chain.
func NewWithChain(cfg apis.Config, chain Chain, contracts ...reflect.Type) *Introspector {
	in := &Introspector{
		cfg:       cfg,
		chain:     chain,
		contracts: make(map[reflect.Type]struct{}),
	}
	in.AddContracts(contracts...)
	return in
}

// AddContracts records interface types as contracts and returns how many were
// new. Pointers to interfaces are unwrapped; non-interfaces and the empty
// interface are ignored.
func (in *Introspector) AddContracts(types ...reflect.Type) int {
	in.mu.Lock()
	defer in.mu.Unlock()

	added := 0
	for _, t := range types {
		c, err := uref.Normalize(t, in.cfg)
		if err != nil || !uref.IsInterface(c) || c.NumMethod() == 0 {
			continue
		}
		if _, ok := in.contracts[c]; !ok {
			in.contracts[c] = struct{}{}
			added++
		}
	}
	return added
}

// LearnContracts implements apis.ContractLearner.
func (in *Introspector) LearnContracts(types []reflect.Type) int {
	return in.AddContracts(types...)
}

// Contracts returns the known contracts ordered by type string.
func (in *Introspector) Contracts() []reflect.Type {
	in.mu.RLock()
	defer in.mu.RUnlock()

	out := make([]reflect.Type, 0, len(in.contracts))
	for c := range in.contracts {
		out = append(out, c)
	}
	return apis.SortedTypes(out)
}

// IsValidCandidate reports whether class is concrete, not an annotation and
// exposes at least one type.
func (in *Introspector) IsValidCandidate(class reflect.Type) bool {
	c, err := uref.Normalize(class, in.cfg)
	if err != nil || uref.IsAnnotation(c) || !uref.IsConcrete(c) {
		return false
	}
	exposed, err := in.ExposedTypesOf(c)
	return err == nil && len(exposed) > 0
}

// NameOf runs the naming chain for class.
func (in *Introspector) NameOf(class reflect.Type) (string, error) {
	c, err := uref.Normalize(class, in.cfg)
	if err != nil {
		return "", err
	}
	return in.chain.Name(c, in.cfg)
}

// ExposedTypesOf returns the known contracts class implements plus the types
// it declares through apis.Exposer.
func (in *Introspector) ExposedTypesOf(class reflect.Type) ([]reflect.Type, error) {
	c, err := uref.Normalize(class, in.cfg)
	if err != nil {
		return nil, err
	}

	var out []reflect.Type
	in.mu.RLock()
	for contract := range in.contracts {
		if uref.Implements(c, contract) {
			out = append(out, contract)
		}
	}
	in.mu.RUnlock()

	if !uref.IsInterface(c) && uref.Implements(c, apis.ExposerType) {
		declared := uref.Zero(c).(apis.Exposer).ExposedTypes()
		for _, t := range declared {
			if !uref.Implements(c, t) {
				return nil, fmt.Errorf("%w: %s does not implement %v", ErrNotExposable, c, t)
			}
			out = append(out, t)
		}
	}
	return apis.SortedTypes(out), nil
}

// StereotypesOf returns the annotation types class embeds directly.
func (in *Introspector) StereotypesOf(class reflect.Type) ([]reflect.Type, error) {
	c, err := uref.Normalize(class, in.cfg)
	if err != nil {
		return nil, err
	}
	return apis.SortedTypes(uref.Annotations(c)), nil
}
