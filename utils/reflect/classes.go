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

package reflect

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/ioc/apis"
)

// IsInterface reports whether t is an interface type.
func IsInterface(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Interface
}

// IsAnnotation reports whether t is an annotation type, i.e. a struct that
// directly embeds apis.Annotation.
func IsAnnotation(t reflect.Type) bool {
	return embedsDirect(t, apis.AnnotationType)
}

// IsAbstract reports whether t is a struct that directly embeds apis.Abstract.
func IsAbstract(t reflect.Type) bool {
	return embedsDirect(t, apis.AbstractType)
}

// IsConcrete reports whether t is neither an interface nor abstract.
func IsConcrete(t reflect.Type) bool {
	return t != nil && !IsInterface(t) && !IsAbstract(t)
}

// Implements reports whether values of t or *t satisfy iface.
func Implements(t, iface reflect.Type) bool {
	if t == nil || !IsInterface(iface) {
		return false
	}
	if t.Implements(iface) {
		return true
	}
	return t.Kind() != reflect.Ptr && !IsInterface(t) && reflect.PointerTo(t).Implements(iface)
}

// Annotations returns the annotation types t embeds directly, in field order.
// Only one level is inspected: annotations of embedded beans are not inherited.
func Annotations(t reflect.Type) []reflect.Type {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var out []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if IsAnnotation(ft) {
			out = append(out, ft)
		}
	}
	return out
}

// Zero returns a pointer to a new zero value of t as any. A pointer is used so
// that both value and pointer receiver methods are reachable.
func Zero(t reflect.Type) any {
	return reflect.New(t).Interface()
}

// SimpleName returns t's name without generic instantiation parameters:
// "T[int,string]" -> "T".
func SimpleName(t reflect.Type) string {
	s := t.Name()
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// LowerFirst lower-cases the first rune of s: "UserService" -> "userService".
func LowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// embedsDirect reports whether struct t has an anonymous field of type marker.
func embedsDirect(t, marker reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == marker {
			return true
		}
	}
	return false
}
