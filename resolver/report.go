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

package resolver

import (
	"reflect"

	"dirpx.dev/ioc/apis"
)

// Report accounts for every class of one batch.
type Report struct {
	// Filtered is the number of entries removed before resolution.
	Filtered int
	// Created holds the definitions registered by this batch, in order.
	Created []*apis.Definition
	// Existing holds definitions that were already registered.
	Existing []*apis.Definition
	// Skipped holds valid classes without a bean name.
	Skipped []reflect.Type
	// Failed holds the per-class failures.
	Failed []*CandidateError
}

// Resolved returns the number of classes that have a definition after the batch.
func (r Report) Resolved() int {
	return len(r.Created) + len(r.Existing)
}
