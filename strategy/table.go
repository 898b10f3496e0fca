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

package strategy

import (
	"reflect"

	"dirpx.dev/ioc/apis"
)

// NewTableStrategy creates an apis.NameStrategy that uses an apis.Names table.
func NewTableStrategy(names apis.Names) apis.NameStrategy {
	return &tableStrategy{names: names}
}

// tableStrategy consults explicitly registered names (reflection-free lookup).
type tableStrategy struct {
	names apis.Names
}

// Ensure tableStrategy implements apis.NameStrategy.
var _ apis.NameStrategy = (*tableStrategy)(nil)

// TryName looks up class in the name table.
func (s *tableStrategy) TryName(class reflect.Type, _ apis.Config) (string, bool, error) {
	if class == nil || s.names == nil {
		return "", false, nil
	}
	name, ok := s.names.Lookup(class)
	return name, ok, nil
}
