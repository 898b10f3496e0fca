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

package naming

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"

	"dirpx.dev/ioc/apis"
	"dirpx.dev/ioc/config"
	uref "dirpx.dev/ioc/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("ioc(naming): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("ioc(naming): empty name provided")
	// ErrInvalidName is returned for names holding whitespace or control
	// characters, and for "-", which the tag strategy reads as "no name".
	ErrInvalidName = errors.New("ioc(naming): invalid bean name")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a class with a different name.
	ErrConflictingRegistration = errors.New("ioc(naming): conflicting name registration")
	// ErrNameTaken indicates the name is already held by another class.
	ErrNameTaken = errors.New("ioc(naming): name already registered for another class")
)

// New constructs a Names table that normalizes classes according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Names {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &names{
		cfg:     cfg,
		byClass: make(map[reflect.Type]string),
		byName:  make(map[string]reflect.Type),
	}
}

// names is a two-way table: one name per class, one class per name.
type names struct {
	cfg apis.Config

	mu      sync.RWMutex
	byClass map[reflect.Type]string
	byName  map[string]reflect.Type
}

// ValidName reports why name cannot be used as a bean name, or nil.
func ValidName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if name == "-" {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	if i := strings.IndexFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}); i >= 0 {
		return fmt.Errorf("%w: %q has a blank or control character at %d", ErrInvalidName, name, i)
	}
	return nil
}

// Register associates the normalized class of t with the given bean name.
// It is idempotent for the same (class, name) pair. A class keeps its
// first name and a name keeps its first class.
func (r *names) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	if err := ValidName(name); err != nil {
		return err
	}

	class, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byClass[class]; ok {
		if old == name {
			return nil
		}
		return fmt.Errorf("%w: %s is %q, not %q", ErrConflictingRegistration, class, old, name)
	}
	if owner, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %q belongs to %s, not %s", ErrNameTaken, name, owner, class)
	}

	r.byClass[class] = name
	r.byName[name] = class
	return nil
}

// Lookup returns a name for a class if present.
func (r *names) Lookup(t reflect.Type) (name string, ok bool) {
	if t == nil {
		return "", false
	}
	class, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok = r.byClass[class]
	return name, ok
}

// Entries returns a snapshot ordered by name.
func (r *names) Entries() []apis.Entry {
	r.mu.RLock()
	entries := make([]apis.Entry, 0, len(r.byName))
	for name, class := range r.byName {
		entries = append(entries, apis.Entry{Type: class, Name: name})
	}
	r.mu.RUnlock()

	slices.SortFunc(entries, func(a, b apis.Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// Count returns the number of registered entries.
func (r *names) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byClass)
}

// Reset clears all registered entries.
func (r *names) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.byClass)
	clear(r.byName)
}
