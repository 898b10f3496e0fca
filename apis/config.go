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

// Config carries read-only resolution knobs shared by every component.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// MaxUnwrap limits pointer unwrapping depth when a candidate type is
	// normalized to its implementation class (e.g. **T -> T).
	MaxUnwrap int

	// FailFast controls the batch error policy. If true, ResolveAll stops at
	// the first class that fails; otherwise every class is attempted and the
	// failures are reported together.
	FailFast bool

	// TagKey is the struct tag key read by the tag naming strategy,
	// e.g. `bean:"userService"`.
	TagKey string

	// DefaultNames enables the stereotype naming strategy: a class carrying at
	// least one stereotype but no explicit name is named after its type
	// ("UserService" -> "userService").
	DefaultNames bool

	// ScanContracts makes batch resolution learn the interface types found in
	// the candidate batch as exposed-type contracts before filtering them out.
	ScanContracts bool

	// LogLevel is the minimum level of the container logger
	// ("debug", "info", "warn", "error").
	LogLevel string
}
