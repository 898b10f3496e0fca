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

// Package stereotype provides the stock role annotations. A bean carries a
// stereotype by embedding it:
//
//	type OrderService struct {
//	    stereotype.Service
//	    repo OrderRepository
//	}
//
// A stereotyped class without an explicit name is named after its type
// ("orderService") when DefaultNames is enabled.
package stereotype

import (
	"reflect"

	"dirpx.dev/ioc/apis"
)

// Component is a generic managed component.
type Component struct{ apis.Annotation }

// Service marks business logic.
type Service struct{ apis.Annotation }

// Repository marks data access.
type Repository struct{ apis.Annotation }

// Controller marks request handling.
type Controller struct{ apis.Annotation }

var (
	ComponentType  = reflect.TypeOf(Component{})
	ServiceType    = reflect.TypeOf(Service{})
	RepositoryType = reflect.TypeOf(Repository{})
	ControllerType = reflect.TypeOf(Controller{})
)

// All returns the stock stereotype types.
func All() []reflect.Type {
	return []reflect.Type{ComponentType, ServiceType, RepositoryType, ControllerType}
}
