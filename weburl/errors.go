/*
Copyright 2025 Trident Authors

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

package weburl

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every error returned for an argument
// that cannot be parsed or formatted at all, such as a nil value.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError is the error type returned by ParseValue, Format and
// FormatValue. It wraps ErrInvalidArgument.
type ArgumentError struct {
	Func    string
	Message string
}

// Error returns the string representation of the argument error.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("weburl.%s: %s: %s", e.Func, ErrInvalidArgument, e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// newArgumentError builds the error reported by fn for the value v.
func newArgumentError(fn string, v any) *ArgumentError {
	if v == nil {
		return &ArgumentError{Func: fn, Message: "nil value"}
	}
	return &ArgumentError{Func: fn, Message: fmt.Sprintf("%v (%T) is not a URL record", v, v)}
}
