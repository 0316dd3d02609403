// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reduce

import "fmt"

// ErrorKind classifies reduction errors.
type ErrorKind int

const (
	// KindNilInput is returned for a nil input buffer.
	KindNilInput ErrorKind = iota
	// KindEmptyInput is returned for a zero-length input buffer.
	KindEmptyInput
	// KindInvalidRange is returned when [start, end) is empty or out of bounds.
	KindInvalidRange
	// KindPadding is returned when a flat array does not divide into vectors.
	KindPadding
	// KindScheduler is returned when a scheduler fails or skips a chunk.
	KindScheduler
)

// String returns the error kind as a string.
func (k ErrorKind) String() string {
	switch k {
	case KindNilInput:
		return "nil input"
	case KindEmptyInput:
		return "empty input"
	case KindInvalidRange:
		return "invalid range"
	case KindPadding:
		return "bad padding"
	case KindScheduler:
		return "scheduler failure"
	default:
		return "unknown"
	}
}

// Error is the error type returned by this package.
// Use errors.Is with the Err* sentinels to test the kind.
type Error struct {
	Kind ErrorKind
	Op   string // Operation that failed, e.g. "ReduceRange"
	Msg  string
	Err  error // Underlying error if any
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrNilInput     = &Error{Kind: KindNilInput}
	ErrEmptyInput   = &Error{Kind: KindEmptyInput}
	ErrInvalidRange = &Error{Kind: KindInvalidRange}
	ErrPadding      = &Error{Kind: KindPadding}
	ErrScheduler    = &Error{Kind: KindScheduler}
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("reduce: %s: %v", msg, e.Err)
	}
	return "reduce: " + msg
}

// Unwrap allows error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}
