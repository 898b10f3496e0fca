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
	"errors"
	"fmt"
	"reflect"
)

// ErrMissingCollaborator is returned when a Resolver is built without an
// introspector, registry or index.
var ErrMissingCollaborator = errors.New("ioc(resolver): missing collaborator")

// CandidateError reports why a single class could not be resolved. It wraps
// the underlying cause, so errors.Is(err, apis.ErrInvalidCandidate) and
// similar checks work through it.
type CandidateError struct {
	// Class is the class as it was handed to the resolver.
	Class reflect.Type
	// Err is the cause.
	Err error
}

func (e *CandidateError) Error() string {
	return fmt.Sprintf("ioc(resolver): class %v: %v", e.Class, e.Err)
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}

func candidateErr(class reflect.Type, err error) *CandidateError {
	return &CandidateError{Class: class, Err: err}
}

// IsCandidateError reports whether err carries a *CandidateError and returns it.
func IsCandidateError(err error) (*CandidateError, bool) {
	var ce *CandidateError
	ok := errors.As(err, &ce)
	return ce, ok
}
