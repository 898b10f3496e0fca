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
	"errors"
	"reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("ioc: nil reflect.Type provided")
	// ErrNotFound is returned by a Registry lookup miss.
	ErrNotFound = errors.New("ioc: bean not found")
	// ErrDuplicateDefinition is returned when a class is registered twice.
	ErrDuplicateDefinition = errors.New("ioc: duplicate bean definition")
	// ErrSealed is returned by mutators once the startup pass is published.
	ErrSealed = errors.New("ioc: sealed after publish")
	// ErrInvalidCandidate is returned when a class that is abstract, an
	// interface or exposes no type is explicitly resolved.
	ErrInvalidCandidate = errors.New("ioc: invalid bean candidate")
)

// Annotation marks a type as metadata. A struct type that directly embeds
// Annotation is an annotation type: it never becomes a bean, and beans that
// embed it carry it as a stereotype.
//
//	type Audited struct{ apis.Annotation }
//
//	type Ledger struct {
//	    Audited
//	}
type Annotation struct{}

// Abstract marks a struct type as non-concrete when embedded directly.
// Abstract types are filtered out of candidate batches.
type Abstract struct{}

// BeanNamer lets a class choose its own bean name. It is called on a zero
// value, so the name must not depend on instance state.
type BeanNamer interface {
	BeanName() string
}

// Exposer lets a class declare its exposed types explicitly, in addition to
// the known contracts it implements. Every returned type must be an interface
// implemented by the class. It is called on a zero value.
type Exposer interface {
	ExposedTypes() []reflect.Type
}

var (
	// AnnotationType is the reflect.Type of Annotation.
	AnnotationType = reflect.TypeOf(Annotation{})
	// AbstractType is the reflect.Type of Abstract.
	AbstractType = reflect.TypeOf(Abstract{})
	// BeanNamerType is the reflect.Type of the BeanNamer interface.
	BeanNamerType = reflect.TypeOf((*BeanNamer)(nil)).Elem()
	// ExposerType is the reflect.Type of the Exposer interface.
	ExposerType = reflect.TypeOf((*Exposer)(nil)).Elem()
)
