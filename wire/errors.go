// Copyright 2025 The packetd Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wire implements the primitive big-endian codec that every
// higher AMQP 0-9-1 layer (amqptype, method, frame) is built on, and
// the three-outcome error taxonomy that distinguishes a short read
// from a malformed one.
package wire

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned whenever fewer bytes are available than a
// decode step requires. It is never fatal: the caller should buffer
// more bytes and retry the same decode from the start. Decoders pass
// it up, possibly wrapped with context (IsIncomplete sees through the
// wrapping), so the incremental framer can tell a truncated stream
// from a corrupt one. The one place it is replaced is inside a region
// whose length an outer prefix has already fixed (a FieldArray or
// FieldTable body, a frame payload): a short read there is reported
// as a *SyntaxError, since no further input can complete it.
var ErrIncomplete = errors.New("wire: incomplete input")

// SyntaxError reports bytes that can never become valid regardless of
// how much more data arrives: a bad tag byte, an oversized length
// prefix, an unknown class or method id, a wrong frame terminator.
type SyntaxError struct {
	Reason string
}

func (e *SyntaxError) Error() string {
	return "wire: syntax error: " + e.Reason
}

// NewSyntaxError builds a SyntaxError with a formatted reason.
func NewSyntaxError(format string, args ...any) *SyntaxError {
	return &SyntaxError{Reason: fmt.Sprintf(format, args...)}
}

// IsIncomplete reports whether err is (or wraps) ErrIncomplete.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// IsSyntaxError reports whether err is (or wraps) a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
