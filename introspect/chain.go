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

package introspect

import (
	"reflect"

	"dirpx.dev/ioc/apis"
)

// NewChain constructs a naming chain that tries the given strategies in order.
// Nil strategies are ignored. The returned chain is safe for concurrent use
// provided strategies themselves are safe for concurrent TryName calls.
func NewChain(strategies ...apis.NameStrategy) Chain {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.NameStrategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return Chain{strats: out}
}

// Chain is an immutable, order-preserving list of naming strategies.
type Chain struct {
	strats []apis.NameStrategy
}

// Name runs strategies in order until one handles the class.
// Returns an empty string if no strategy produced a name. A strategy error
// stops the chain.
func (c Chain) Name(class reflect.Type, cfg apis.Config) (string, error) {
	for _, s := range c.strats {
		name, ok, err := s.TryName(class, cfg)
		if err != nil {
			return "", err
		}
		if ok {
			return name, nil
		}
	}
	return "", nil
}

// Len returns the number of strategies in the chain.
func (c Chain) Len() int {
	return len(c.strats)
}
