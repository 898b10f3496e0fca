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

package reflect_test

import (
	"reflect"
	"testing"

	"dirpx.dev/ioc/apis"
	uref "dirpx.dev/ioc/utils/reflect"
)

type marker struct{ apis.Annotation }

type base struct{ apis.Abstract }

type box[T any] struct{}

type greeter interface{ Greet() string }

type valueGreeter struct {
	marker
}

func (valueGreeter) Greet() string { return "hi" }

type ptrGreeter struct {
	*marker
	base
}

func (*ptrGreeter) Greet() string { return "hi" }

func TestMarkers(t *testing.T) {
	cases := []struct {
		name       string
		typ        reflect.Type
		annotation bool
		abstract   bool
		concrete   bool
	}{
		{"annotation", reflect.TypeOf(marker{}), true, false, true},
		{"abstract", reflect.TypeOf(base{}), false, true, false},
		{"interface", reflect.TypeOf((*greeter)(nil)).Elem(), false, false, false},
		// Markers are only honored when embedded directly.
		{"embeds annotation", reflect.TypeOf(valueGreeter{}), false, false, true},
		{"embeds abstract base", reflect.TypeOf(ptrGreeter{}), false, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.IsAnnotation(tc.typ); got != tc.annotation {
				t.Errorf("IsAnnotation = %v, want %v", got, tc.annotation)
			}
			if got := uref.IsAbstract(tc.typ); got != tc.abstract {
				t.Errorf("IsAbstract = %v, want %v", got, tc.abstract)
			}
			if got := uref.IsConcrete(tc.typ); got != tc.concrete {
				t.Errorf("IsConcrete = %v, want %v", got, tc.concrete)
			}
		})
	}
}

func TestImplements_ValueAndPointerReceivers(t *testing.T) {
	iface := reflect.TypeOf((*greeter)(nil)).Elem()

	if !uref.Implements(reflect.TypeOf(valueGreeter{}), iface) {
		t.Fatalf("valueGreeter should implement greeter")
	}
	if !uref.Implements(reflect.TypeOf(ptrGreeter{}), iface) {
		t.Fatalf("ptrGreeter should implement greeter through *ptrGreeter")
	}
	if uref.Implements(reflect.TypeOf(marker{}), iface) {
		t.Fatalf("marker should not implement greeter")
	}
	if uref.Implements(reflect.TypeOf(valueGreeter{}), reflect.TypeOf(service{})) {
		t.Fatalf("Implements with a non-interface target must be false")
	}
}

func TestAnnotations(t *testing.T) {
	got := uref.Annotations(reflect.TypeOf(ptrGreeter{}))
	if len(got) != 1 || got[0] != reflect.TypeOf(marker{}) {
		t.Fatalf("Annotations(ptrGreeter) = %v, want [marker]", got)
	}
	if got := uref.Annotations(reflect.TypeOf(0)); len(got) != 0 {
		t.Fatalf("Annotations(int) = %v, want empty", got)
	}
}

func TestNames(t *testing.T) {
	if got := uref.SimpleName(reflect.TypeOf(box[int]{})); got != "box" {
		t.Fatalf("SimpleName(box[int]) = %q, want box", got)
	}
	cases := map[string]string{
		"UserService": "userService",
		"userService": "userService",
		"":            "",
		"X":           "x",
	}
	for in, want := range cases {
		if got := uref.LowerFirst(in); got != want {
			t.Errorf("LowerFirst(%q) = %q, want %q", in, got, want)
		}
	}
}
