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
	uref "dirpx.dev/ioc/utils/reflect"
)

// NewStereotypeStrategy creates an apis.NameStrategy that names classes
// carrying at least one stereotype after their type: UserService ->
// "userService". It only applies when cfg.DefaultNames is set.
func NewStereotypeStrategy() apis.NameStrategy {
	return stereotypeStrategy{}
}

type stereotypeStrategy struct{}

// Ensure stereotypeStrategy implements apis.NameStrategy.
var _ apis.NameStrategy = (*stereotypeStrategy)(nil)

// TryName derives the default name of a stereotyped class.
func (stereotypeStrategy) TryName(class reflect.Type, cfg apis.Config) (string, bool, error) {
	if class == nil || !cfg.DefaultNames || len(uref.Annotations(class)) == 0 {
		return "", false, nil
	}
	return uref.LowerFirst(uref.SimpleName(class)), true, nil
}
