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

package amqptype

import (
	"github.com/pkg/errors"

	"github.com/packetd/amqpcodec/wire"
)

// maxFieldNameLen is FieldName's own additional cap, tighter than the
// 255-byte ShortStr cap it otherwise shares.
const maxFieldNameLen = 128

// FieldName is a ShortStr used as a field table key, constrained to a
// conventional identifier character set.
type FieldName string

// NewFieldName validates s as a field table key: non-empty, no more
// than 128 bytes, and starting with one of $, #, a-z, A-Z.
func NewFieldName(s string) (FieldName, error) {
	if err := validateFieldName(s); err != nil {
		return "", err
	}
	return FieldName(s), nil
}

func validateFieldName(s string) error {
	if len(s) == 0 {
		return wire.NewSyntaxError("FieldName empty")
	}
	if len(s) > maxFieldNameLen {
		return wire.NewSyntaxError("FieldName too long: %d bytes", len(s))
	}
	c := s[0]
	switch {
	case c == '$' || c == '#':
	case c >= 'a' && c <= 'z':
	case c >= 'A' && c <= 'Z':
	default:
		return wire.NewSyntaxError("FieldName start char error: %q", c)
	}
	return nil
}

func (f FieldName) String() string {
	return string(f)
}

// Encode appends the length-prefixed wire form of f to out.
func (f FieldName) Encode(out []byte) []byte {
	out = wire.EncodeU8(out, uint8(len(f)))
	return append(out, f...)
}

// DecodeFieldName reads a ShortStr from buf and validates it as a
// field name. Unlike the bare ShortStr decode, the length and start
// character constraints here are semantic, not structural, so a wire
// decode can and must reject an otherwise-well-formed ShortStr.
func DecodeFieldName(buf []byte) (remaining []byte, v FieldName, err error) {
	remaining, n, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, "", errors.Wrap(err, "decode FieldName length")
	}
	if int(n) > maxFieldNameLen {
		return buf, "", wire.NewSyntaxError("FieldName too long: %d bytes", n)
	}
	remaining, body, err := wire.TakeBytes(remaining, int(n))
	if err != nil {
		return buf, "", errors.Wrap(err, "decode FieldName bytes")
	}
	s := lossyUTF8(body)
	if err := validateFieldName(s); err != nil {
		return buf, "", err
	}
	return remaining, FieldName(s), nil
}
