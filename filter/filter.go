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

// Package filter removes classes that can never become beans from a
// candidate batch.
package filter

import (
	"reflect"
	"slices"

	"dirpx.dev/ioc/apis"
	uref "dirpx.dev/ioc/utils/reflect"
)

// Candidates removes, in place, every entry that is nil, unnamed, an
// annotation type, an interface or abstract. Survivors keep their relative
// order and are returned unchanged (not normalized).
//
// The caller's backing array is compacted and its tail zeroed; only the
// returned slice is meaningful afterwards.
func Candidates(classes []reflect.Type, cfg apis.Config) []reflect.Type {
	return slices.DeleteFunc(classes, func(t reflect.Type) bool {
		return !IsCandidate(t, cfg)
	})
}

// IsCandidate reports whether t survives filtering.
func IsCandidate(t reflect.Type, cfg apis.Config) bool {
	class, err := uref.Normalize(t, cfg)
	if err != nil {
		return false
	}
	return !uref.IsAnnotation(class) && uref.IsConcrete(class)
}
