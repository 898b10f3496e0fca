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
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/ioc/apis"
)

// ErrConflictingTags is returned when two fields of one class carry
// different bean names.
var ErrConflictingTags = errors.New("ioc(strategy): conflicting bean name tags")

// NoBeanTag is the tag value that marks a class as explicitly not a bean.
const NoBeanTag = "-"

// NewTagStrategy creates an apis.NameStrategy that reads the bean name from
// a struct tag on a direct field, typically a blank or stereotype field:
//
//	type UserService struct {
//	    stereotype.Service `bean:"users"`
//	}
func NewTagStrategy() apis.NameStrategy {
	return tagStrategy{}
}

// tagStrategy memoizes the parsed tag of each (class, tag key).
type tagStrategy struct{}

// Ensure tagStrategy implements apis.NameStrategy.
var _ apis.NameStrategy = (*tagStrategy)(nil)

// tagKey ensures memoization respects the configured tag key.
type tagKey struct {
	t   reflect.Type
	key string
}

// tagResult is the memoized outcome of scanning one class.
type tagResult struct {
	name    string
	handled bool
	err     error
}

// tagCache caches scan results by (type, tag key).
var tagCache sync.Map // key: tagKey, val: tagResult

// TryName returns the tagged bean name of class. A NoBeanTag value is
// handled and yields "".
func (tagStrategy) TryName(class reflect.Type, cfg apis.Config) (string, bool, error) {
	if class == nil || class.Kind() != reflect.Struct || cfg.TagKey == "" {
		return "", false, nil
	}
	key := tagKey{t: class, key: cfg.TagKey}
	if v, ok := tagCache.Load(key); ok {
		r := v.(tagResult)
		return r.name, r.handled, r.err
	}
	r := scanTags(class, cfg.TagKey)
	tagCache.Store(key, r)
	return r.name, r.handled, r.err
}

func scanTags(class reflect.Type, key string) tagResult {
	var r tagResult
	for i := 0; i < class.NumField(); i++ {
		f := class.Field(i)
		v, ok := f.Tag.Lookup(key)
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if v == NoBeanTag {
			v = ""
		}
		if r.handled && r.name != v {
			return tagResult{err: fmt.Errorf("%w: %s has %q and %q", ErrConflictingTags, class, r.name, v)}
		}
		r.name, r.handled = v, true
	}
	return r
}
