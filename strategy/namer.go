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

// NewNamerStrategy creates an apis.NameStrategy that uses apis.BeanNamer.
func NewNamerStrategy() apis.NameStrategy {
	return &namerStrategy{}
}

// namerStrategy is the fast path: if T or *T implements apis.BeanNamer,
// return BeanName() of a zero value and stop the chain.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.NameStrategy.
var _ apis.NameStrategy = (*namerStrategy)(nil)

// TryName calls BeanName on a zero value of class.
func (*namerStrategy) TryName(class reflect.Type, _ apis.Config) (string, bool, error) {
	if class == nil || uref.IsInterface(class) || !uref.Implements(class, apis.BeanNamerType) {
		return "", false, nil
	}
	n, ok := uref.Zero(class).(apis.BeanNamer)
	if !ok {
		return "", false, nil
	}
	return n.BeanName(), true, nil
}
