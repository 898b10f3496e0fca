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

package ioc_test

import (
	"errors"
	"io"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"dirpx.dev/ioc"
	"dirpx.dev/ioc/apis"
	"dirpx.dev/ioc/builder"
	"dirpx.dev/ioc/config"
	"dirpx.dev/ioc/stereotype"
)

type UserFinder interface{ FindUser(id string) string }
type Cache interface{ Get(key string) (string, bool) }

type UserService struct {
	stereotype.Service `bean:"users"`
}

func (*UserService) FindUser(id string) string { return id }

type MemoryCache struct {
	stereotype.Component
}

func (MemoryCache) Get(string) (string, bool) { return "", false }

type CachedUsers struct {
	stereotype.Service
}

func (CachedUsers) FindUser(id string) string  { return id }
func (CachedUsers) Get(string) (string, bool) { return "", false }

// Plain has no stereotype and no name.
type Plain struct{}

func (Plain) Get(string) (string, bool) { return "", false }

// Orphan exposes nothing.
type Orphan struct {
	stereotype.Component
}

func newContainer(t *testing.T, opts ...ioc.Option) *ioc.Container {
	t.Helper()
	opts = append([]ioc.Option{ioc.WithLogger(log.New(io.Discard))}, opts...)
	c, err := ioc.New(opts...)
	if err != nil {
		t.Fatalf("ioc.New: %v", err)
	}
	return c
}

func catalog() []reflect.Type {
	return []reflect.Type{
		ioc.TypeOf[UserFinder](),
		ioc.TypeOf[Cache](),
		ioc.TypeOf[*UserService](),
		ioc.TypeOf[MemoryCache](),
		ioc.TypeOf[CachedUsers](),
		ioc.TypeOf[Plain](),
		stereotype.ServiceType,
	}
}

func TestStart_ResolvesAndPublishes(t *testing.T) {
	c := newContainer(t)

	if err := c.Start(catalog()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !c.Published() {
		t.Fatal("container not published after Start")
	}

	defs := c.Definitions()
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name())
	}
	want := []string{"cachedUsers", "memoryCache", "users"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("definition names = %v, want %v", names, want)
	}

	finders := ioc.Lookup[UserFinder](c)
	if len(finders) != 2 {
		t.Fatalf("Lookup[UserFinder] = %v, want 2 definitions", finders)
	}
	caches := c.LookupByType(reflect.TypeOf((*Cache)(nil)))
	wantCaches := []reflect.Type{ioc.TypeOf[CachedUsers](), ioc.TypeOf[MemoryCache]()}
	if !reflect.DeepEqual(caches, wantCaches) {
		t.Fatalf("LookupByType(*Cache) = %v, want %v", caches, wantCaches)
	}
	if _, err := c.Definition(ioc.TypeOf[Plain]()); !errors.Is(err, apis.ErrNotFound) {
		t.Fatalf("Definition(Plain) error = %v, want ErrNotFound", err)
	}
}

func TestPublish_RejectsMutators(t *testing.T) {
	c := newContainer(t, ioc.WithContracts(ioc.TypeOf[Cache]()))
	v1 := c.Publish()
	v2 := c.Publish()
	if !v1.Published() || !v2.Published() {
		t.Fatal("Publish views must be published")
	}

	if err := c.RegisterName(ioc.TypeOf[Plain](), "plain"); !errors.Is(err, ioc.ErrPublished) {
		t.Fatalf("RegisterName error = %v, want ErrPublished", err)
	}
	if _, err := c.AddContracts(ioc.TypeOf[UserFinder]()); !errors.Is(err, ioc.ErrPublished) {
		t.Fatalf("AddContracts error = %v, want ErrPublished", err)
	}
	if _, err := c.ResolveOne(ioc.TypeOf[MemoryCache]()); !errors.Is(err, ioc.ErrPublished) {
		t.Fatalf("ResolveOne error = %v, want ErrPublished", err)
	}
	if err := c.ResolveAll(catalog()); !errors.Is(err, ioc.ErrPublished) {
		t.Fatalf("ResolveAll error = %v, want ErrPublished", err)
	}
	if err := c.Start(nil); !errors.Is(err, ioc.ErrPublished) {
		t.Fatalf("Start error = %v, want ErrPublished", err)
	}
}

func TestStart_FailureKeepsInitPhase(t *testing.T) {
	c := newContainer(t, ioc.WithContracts(ioc.TypeOf[Cache]()))

	err := c.Start([]reflect.Type{ioc.TypeOf[MemoryCache](), ioc.TypeOf[Orphan]()})
	if !errors.Is(err, apis.ErrInvalidCandidate) {
		t.Fatalf("Start error = %v, want ErrInvalidCandidate", err)
	}
	if c.Published() {
		t.Fatal("container published despite failure")
	}
	if _, err := c.Definition(ioc.TypeOf[MemoryCache]()); err != nil {
		t.Fatalf("MemoryCache not kept after partial failure: %v", err)
	}
	// The caller can still finish the init phase.
	if err := c.Start(nil); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if !c.Published() {
		t.Fatal("container not published after second Start")
	}
}

func TestRegisterName_NamesPlainClass(t *testing.T) {
	c := newContainer(t, ioc.WithContracts(ioc.TypeOf[Cache]()))

	if def, err := c.ResolveOne(ioc.TypeOf[Plain]()); def != nil || err != nil {
		t.Fatalf("ResolveOne(Plain) = (%v,%v), want (nil,nil)", def, err)
	}
	if err := c.RegisterName(ioc.TypeOf[*Plain](), "plain"); err != nil {
		t.Fatalf("RegisterName: %v", err)
	}
	def, err := c.ResolveOne(ioc.TypeOf[Plain]())
	if err != nil || def == nil || def.Name() != "plain" {
		t.Fatalf("ResolveOne(Plain) = (%v,%v), want plain", def, err)
	}
}

func TestAddContracts(t *testing.T) {
	c := newContainer(t)

	if _, err := c.ResolveOne(ioc.TypeOf[MemoryCache]()); !errors.Is(err, apis.ErrInvalidCandidate) {
		t.Fatalf("ResolveOne before AddContracts error = %v, want ErrInvalidCandidate", err)
	}
	n, err := c.AddContracts(ioc.TypeOf[Cache](), ioc.TypeOf[Cache](), ioc.TypeOf[Plain]())
	if err != nil || n != 1 {
		t.Fatalf("AddContracts = (%d,%v), want (1,nil)", n, err)
	}
	if _, err := c.ResolveOne(ioc.TypeOf[MemoryCache]()); err != nil {
		t.Fatalf("ResolveOne after AddContracts: %v", err)
	}
}

func TestFailFastConfig(t *testing.T) {
	cfg := config.NewConfig(config.WithFailFast(true))
	c := newContainer(t, ioc.WithConfig(cfg), ioc.WithContracts(ioc.TypeOf[Cache]()))
	if !c.Config().FailFast {
		t.Fatal("Config().FailFast = false, want true")
	}

	rep, err := c.ResolveAllReport([]reflect.Type{ioc.TypeOf[Orphan](), ioc.TypeOf[MemoryCache]()})
	if err == nil || len(rep.Failed) != 1 || len(rep.Created) != 0 {
		t.Fatalf("ResolveAllReport = (%+v,%v), want one failure and no creation", rep, err)
	}
}

func TestView_Bindings(t *testing.T) {
	c := newContainer(t)
	if err := c.Start(catalog()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	b := c.View().Bindings()
	if len(b) != 2 {
		t.Fatalf("Bindings() has %d types, want 2", len(b))
	}
	if got := b[ioc.TypeOf[UserFinder]()]; len(got) != 2 {
		t.Fatalf("Bindings()[UserFinder] = %v, want 2 classes", got)
	}
}

// nilBuilder returns a nil registry.
type nilBuilder struct{ apis.Builder }

func (nilBuilder) BuildRegistry(apis.Config) apis.Registry { return nil }

func TestNew_NilComponent(t *testing.T) {
	_, err := ioc.New(ioc.WithBuilder(nilBuilder{builder.New()}), ioc.WithLogger(log.New(io.Discard)))
	if !errors.Is(err, ioc.ErrNilComponent) {
		t.Fatalf("New error = %v, want ErrNilComponent", err)
	}
}

// Reads run concurrently with resolution and with the publish transition.
func TestConcurrentReadsDuringStart(t *testing.T) {
	c := newContainer(t)

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers + 1)

	go func() {
		defer wg.Done()
		if err := c.Start(catalog()); err != nil {
			t.Errorf("Start: %v", err)
		}
	}()
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				_ = ioc.Lookup[UserFinder](c)
				_ = c.Definitions()
				_ = c.Published()
			}
		}()
	}
	wg.Wait()

	if got := len(ioc.Lookup[UserFinder](c)); got != 2 {
		t.Fatalf("Lookup[UserFinder] after Start = %d, want 2", got)
	}
	c.End()
}
