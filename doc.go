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

// Package ioc resolves bean definitions for an inversion-of-control
// container.
//
// A bean is a concrete, named Go type that exposes one or more contract
// interfaces. During startup the container scans a batch of candidate types,
// drops the ones that can never be beans (interfaces, abstract types,
// annotation markers), derives metadata for the rest and records a
// definition per class. Every class is then bound under each contract it
// exposes, so later lookups by contract find all implementations.
//
// # Metadata
//
// Type metadata lives on the Go types themselves:
//
//	type UserService struct {
//	    stereotype.Service `bean:"users"`
//	}
//
//	func (*UserService) Find(id string) (*User, error) { ... }
//
// A struct that directly embeds apis.Annotation is an annotation type;
// embedding one in a class attaches it as a stereotype. Embedding
// apis.Abstract marks a type as abstract. The bean name is taken from the
// first source that has one, in order:
//
//  1. apis.BeanNamer implemented by the class.
//  2. The container's name table (RegisterName).
//  3. A struct tag on a direct field (bean:"name"; bean:"-" means none).
//  4. The lowercased simple type name, when the class has a stereotype.
//
// A valid class without a name is skipped silently.
//
// # Lifecycle
//
// The container has two phases. In the init phase ResolveOne and ResolveAll
// register definitions; both are idempotent per class. Publish seals the
// registry and the index, after which every mutator returns ErrPublished and
// reads need no coordination:
//
//	c, _ := ioc.New(ioc.WithContracts(ioc.TypeOf[UserFinder]()))
//	if err := c.Start(classes); err != nil {
//	    // classes that failed are reported; nothing was published
//	}
//	defs := ioc.Lookup[UserFinder](c)
//
// Internally the container keeps an immutable snapshot behind an atomic
// pointer, so readers never lock; writers serialize on a build mutex.
package ioc
