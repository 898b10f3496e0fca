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

// Package resolver turns candidate classes into bean definitions.
//
// ResolveOne is the create-or-fetch protocol: it first asks the registry for
// an existing definition and only on a miss validates the class, extracts its
// metadata, registers the new definition and binds it under every exposed
// type. ResolveAll filters a batch and resolves each survivor in order.
package resolver

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/charmbracelet/log"

	"dirpx.dev/ioc/apis"
	"dirpx.dev/ioc/filter"
	uref "dirpx.dev/ioc/utils/reflect"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// Resolver is the bean definition resolver. It is safe for concurrent use:
// the registry check and the registration of one class happen under a single
// lock, so concurrent batches never register a class twice.
type Resolver struct {
	cfg apis.Config
	reg apis.Registry
	idx apis.Index
	in  apis.Introspector
	log *log.Logger

	// mu makes fetch-first and construct-and-register one atomic step.
	mu sync.Mutex
}

// New constructs a Resolver over the given collaborators.
func New(cfg apis.Config, reg apis.Registry, idx apis.Index, in apis.Introspector, opts ...Option) (*Resolver, error) {
	if reg == nil || idx == nil || in == nil {
		return nil, ErrMissingCollaborator
	}
	r := &Resolver{
		cfg: cfg,
		reg: reg,
		idx: idx,
		in:  in,
		log: log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ResolveOne returns the definition of class, creating and registering it if
// needed. It returns (nil, nil) when class is a valid candidate without a
// bean name. Every other failure is a *CandidateError; an interface, abstract
// class or class exposing no type fails with apis.ErrInvalidCandidate, while
// malformed metadata keeps its own cause.
//
// Once either the registry or the index is sealed, no new definition is
// created; seal them together.
func (r *Resolver) ResolveOne(class reflect.Type) (*apis.Definition, error) {
	def, _, err := r.resolve(class)
	return def, err
}

// resolve reports whether the returned definition was created by this call.
func (r *Resolver) resolve(class reflect.Type) (*apis.Definition, bool, error) {
	if class == nil {
		return nil, false, apis.ErrNilType
	}
	c, err := uref.Normalize(class, r.cfg)
	if err != nil {
		return nil, false, candidateErr(class, fmt.Errorf("%w: %v", apis.ErrInvalidCandidate, err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if def, ok := r.reg.Lookup(c); ok {
		return def, false, nil
	}
	r.log.Debug("bean not registered, creating it", "class", c)

	if !r.in.IsValidCandidate(c) {
		// Malformed exposed-type metadata also fails validation; report the
		// real cause rather than a plain rejection.
		if _, err := r.in.ExposedTypesOf(c); err != nil {
			return nil, false, candidateErr(class, fmt.Errorf("exposed types: %w", err))
		}
		return nil, false, candidateErr(class, fmt.Errorf("%w: interface, abstract, or implements no exposed type", apis.ErrInvalidCandidate))
	}

	name, err := r.in.NameOf(c)
	if err != nil {
		return nil, false, candidateErr(class, fmt.Errorf("bean name: %w", err))
	}
	if name == "" {
		r.log.Debug("class has no bean name, skipping", "class", c)
		return nil, false, nil
	}

	exposed, err := r.in.ExposedTypesOf(c)
	if err != nil {
		return nil, false, candidateErr(class, fmt.Errorf("exposed types: %w", err))
	}
	stereotypes, err := r.in.StereotypesOf(c)
	if err != nil {
		return nil, false, candidateErr(class, fmt.Errorf("stereotypes: %w", err))
	}

	// Check both seals up front so a definition is never registered without
	// its bindings.
	if r.reg.Sealed() || r.idx.Sealed() {
		return nil, false, candidateErr(class, apis.ErrSealed)
	}

	def := apis.NewDefinition(name, c, exposed, stereotypes)
	r.log.Debug("adding bean", "name", name, "class", c)
	if err := r.reg.Add(def); err != nil {
		return nil, false, candidateErr(class, err)
	}
	for _, t := range def.ExposedTypes() {
		if err := r.idx.Bind(t, c); err != nil {
			return nil, false, candidateErr(class, fmt.Errorf("bind %v: %w", t, err))
		}
	}
	return def, true, nil
}

// ResolveAll filters classes in place and resolves every survivor in order.
// Only the registry and index observe the resulting definitions.
//
// With cfg.FailFast the batch stops at the first failing class and returns
// its error. Otherwise every class is attempted and the failures are
// returned joined; classes that resolved stay registered either way.
func (r *Resolver) ResolveAll(classes []reflect.Type) error {
	_, err := r.ResolveAllReport(classes)
	return err
}

// ResolveAllReport is ResolveAll with a per-class account of the outcome.
func (r *Resolver) ResolveAllReport(classes []reflect.Type) (Report, error) {
	var rep Report
	if len(classes) == 0 {
		return rep, nil
	}

	if learner, ok := r.in.(apis.ContractLearner); ok && r.cfg.ScanContracts {
		if n := learner.LearnContracts(classes); n > 0 {
			r.log.Debug("learned contracts from batch", "count", n)
		}
	}

	total := len(classes)
	classes = filter.Candidates(classes, r.cfg)
	rep.Filtered = total - len(classes)

	var errs []error
	for _, class := range classes {
		def, created, err := r.resolve(class)
		switch {
		case err != nil:
			ce, ok := IsCandidateError(err)
			if !ok {
				ce = candidateErr(class, err)
			}
			rep.Failed = append(rep.Failed, ce)
			r.log.Warn("bean resolution failed", "class", class, "err", ce.Err)
			if r.cfg.FailFast {
				return rep, ce
			}
			errs = append(errs, ce)
		case def == nil:
			rep.Skipped = append(rep.Skipped, class)
		case created:
			rep.Created = append(rep.Created, def)
		default:
			rep.Existing = append(rep.Existing, def)
		}
	}
	return rep, errors.Join(errs...)
}
