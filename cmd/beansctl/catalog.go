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

package main

import (
	"reflect"

	"dirpx.dev/ioc"
	"dirpx.dev/ioc/apis"
	"dirpx.dev/ioc/stereotype"
)

// Greeter and Store are the sample contracts.
type (
	Greeter interface{ Greet(name string) string }
	Store   interface {
		Put(key, value string)
		Get(key string) (string, bool)
	}
)

// Audited is a sample user-defined annotation.
type Audited struct{ apis.Annotation }

// EnglishGreeter is named by its tag.
type EnglishGreeter struct {
	stereotype.Component `bean:"english"`
}

func (EnglishGreeter) Greet(name string) string { return "Hello, " + name }

// FrenchGreeter takes its stereotype default name.
type FrenchGreeter struct {
	stereotype.Service
	Audited
}

func (*FrenchGreeter) Greet(name string) string { return "Bonjour, " + name }

// MemStore declares its exposed type explicitly.
type MemStore struct {
	stereotype.Repository
	m map[string]string
}

func (s *MemStore) Put(k, v string)             { s.m[k] = v }
func (s *MemStore) Get(k string) (string, bool) { return s.lookup(k) }
func (*MemStore) ExposedTypes() []reflect.Type  { return []reflect.Type{ioc.TypeOf[Store]()} }

func (s *MemStore) lookup(k string) (string, bool) {
	v, ok := s.m[k]
	return v, ok
}

// BaseGreeter is abstract and never becomes a bean.
type BaseGreeter struct{ apis.Abstract }

func (BaseGreeter) Greet(string) string { return "" }

// Draft is a valid class without a bean name.
type Draft struct{}

func (Draft) Greet(string) string { return "" }

// sampleCatalog returns the candidate batch scanned by the resolve command.
func sampleCatalog() []reflect.Type {
	return []reflect.Type{
		ioc.TypeOf[Greeter](),
		ioc.TypeOf[Store](),
		ioc.TypeOf[Audited](),
		ioc.TypeOf[EnglishGreeter](),
		ioc.TypeOf[*FrenchGreeter](),
		ioc.TypeOf[MemStore](),
		ioc.TypeOf[BaseGreeter](),
		ioc.TypeOf[Draft](),
	}
}
