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

import "reflect"

// Builder composes the container components from a Config.
type Builder interface {
	// BuildRegistry constructs an empty bean Registry for cfg.
	BuildRegistry(cfg Config) Registry
	// BuildIndex constructs an empty type binding Index.
	BuildIndex(cfg Config) Index
	// BuildNames constructs the explicit name table.
	BuildNames(cfg Config) Names
	// BuildIntrospector constructs the metadata introspector for cfg, backed
	// by names and seeded with the given contract types.
	BuildIntrospector(cfg Config, names Names, contracts []reflect.Type) Introspector
}
