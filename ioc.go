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
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"dirpx.dev/ioc/apis"
	"dirpx.dev/ioc/builder"
	"dirpx.dev/ioc/config"
	"dirpx.dev/ioc/resolver"
)

var (
	// ErrPublished is returned by every mutator once the container is published.
	ErrPublished = errors.New("ioc: container already published")
	// ErrNilComponent is returned when a builder returns a nil component.
	ErrNilComponent = errors.New("ioc: builder returned nil component")
)

// Option configures a Container at construction.
type Option func(*options)

type options struct {
	cfg       apis.Config
	bld       apis.Builder
	log       *log.Logger
	contracts []reflect.Type
}

// WithConfig sets the container configuration.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithBuilder replaces the component builder. A nil builder is ignored.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.bld = b
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithContracts seeds the introspector with contract interface types.
func WithContracts(types ...reflect.Type) Option {
	return func(o *options) { o.contracts = append(o.contracts, types...) }
}

// state is an immutable snapshot of the container. Components are shared
// between snapshots; only published flips.
type state struct {
	cfg       apis.Config
	reg       apis.Registry
	idx       apis.Index
	names     apis.Names
	in        apis.Introspector
	res       *resolver.Resolver
	published bool
}

// Container owns one registry and type index and the resolver that fills
// them. It starts in the init phase, where classes are resolved, and becomes
// read-only once published. Reads are lock-free and safe at any time.
type Container struct {
	st atomic.Pointer[state]
	// buildMu serializes mutators and the publish transition.
	buildMu sync.Mutex
	log     *log.Logger
}

// New constructs a Container in the init phase.
func New(opts ...Option) (*Container, error) {
	o := options{cfg: config.DefaultConfig(), bld: builder.New()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = builder.NewLogger(o.cfg)
	}

	s := &state{cfg: o.cfg}
	s.reg = o.bld.BuildRegistry(o.cfg)
	s.idx = o.bld.BuildIndex(o.cfg)
	s.names = o.bld.BuildNames(o.cfg)
	if s.reg == nil || s.idx == nil || s.names == nil {
		return nil, ErrNilComponent
	}
	s.in = o.bld.BuildIntrospector(o.cfg, s.names, o.contracts)
	if s.in == nil {
		return nil, ErrNilComponent
	}
	res, err := resolver.New(o.cfg, s.reg, s.idx, s.in, resolver.WithLogger(o.log))
	if err != nil {
		return nil, err
	}
	s.res = res

	c := &Container{log: o.log}
	c.st.Store(s)
	return c, nil
}

// mutable runs fn under the build lock unless the container is published.
func (c *Container) mutable(fn func(s *state) error) error {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	s := c.st.Load()
	if s.published {
		return ErrPublished
	}
	return fn(s)
}

// RegisterName fixes the bean name of class in the name table.
func (c *Container) RegisterName(class reflect.Type, name string) error {
	return c.mutable(func(s *state) error {
		return s.names.Register(class, name)
	})
}

// AddContracts records contract interfaces with the introspector and returns
// how many were new. Introspectors that cannot learn contracts add none.
func (c *Container) AddContracts(types ...reflect.Type) (int, error) {
	n := 0
	err := c.mutable(func(s *state) error {
		if learner, ok := s.in.(apis.ContractLearner); ok {
			n = learner.LearnContracts(types)
		}
		return nil
	})
	return n, err
}

// ResolveOne resolves a single class. See resolver.Resolver.ResolveOne.
func (c *Container) ResolveOne(class reflect.Type) (*apis.Definition, error) {
	var def *apis.Definition
	err := c.mutable(func(s *state) error {
		var err error
		def, err = s.res.ResolveOne(class)
		return err
	})
	return def, err
}

// ResolveAll resolves a batch. See resolver.Resolver.ResolveAll.
func (c *Container) ResolveAll(classes []reflect.Type) error {
	_, err := c.ResolveAllReport(classes)
	return err
}

// ResolveAllReport resolves a batch and reports the per-class outcome.
func (c *Container) ResolveAllReport(classes []reflect.Type) (resolver.Report, error) {
	var rep resolver.Report
	err := c.mutable(func(s *state) error {
		var err error
		rep, err = s.res.ResolveAllReport(classes)
		return err
	})
	return rep, err
}

// Publish seals the registry and the index and ends the init phase. It is
// idempotent and returns a read-only view of the container.
func (c *Container) Publish() View {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	old := c.st.Load()
	if old.published {
		return View{s: old}
	}
	old.reg.Seal()
	old.idx.Seal()

	next := *old
	next.published = true
	c.st.Store(&next)
	return View{s: &next}
}

// Published reports whether Publish has been called.
func (c *Container) Published() bool {
	return c.st.Load().published
}

// Config returns the container configuration.
func (c *Container) Config() apis.Config {
	return c.st.Load().cfg
}

// View returns a read-only view of the current snapshot.
func (c *Container) View() View {
	return View{s: c.st.Load()}
}

// LookupByType returns the classes bound to typ.
func (c *Container) LookupByType(typ reflect.Type) []reflect.Type {
	return c.View().LookupByType(typ)
}

// Definition returns the definition registered for class.
func (c *Container) Definition(class reflect.Type) (*apis.Definition, error) {
	return c.View().Definition(class)
}

// Definitions returns every registered definition ordered by name.
func (c *Container) Definitions() []*apis.Definition {
	return c.View().Definitions()
}

// Start resolves classes and publishes the container. If resolution fails the
// container stays in the init phase and the error is returned.
func (c *Container) Start(classes []reflect.Type) error {
	c.log.Info("Initializing IoC container", "classes", len(classes))
	rep, err := c.ResolveAllReport(classes)
	if err != nil {
		return err
	}
	c.Publish()
	c.log.Info("Initialized IoC container",
		"created", len(rep.Created),
		"skipped", len(rep.Skipped),
		"beans", c.st.Load().reg.Count(),
	)
	return nil
}

// End marks the end of the container lifecycle.
func (c *Container) End() {
	c.log.Info("IoC container ended", "beans", c.st.Load().reg.Count())
}
