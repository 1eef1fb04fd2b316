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

// maxShortStrLen is the ShortStr body cap: it's implied by the 1-byte
// length prefix, so no wire decode can ever violate it, but the
// public constructor still rejects an over-long string up front.
const maxShortStrLen = 255

// ShortStr is a UTF-8 string length-prefixed by a single byte.
type ShortStr string

// NewShortStr validates s against the ShortStr body cap.
func NewShortStr(s string) (ShortStr, error) {
	if len(s) > maxShortStrLen {
		return "", wire.NewSyntaxError("ShortStr too long: %d bytes", len(s))
	}
	return ShortStr(s), nil
}

func (s ShortStr) String() string {
	return string(s)
}

// Encode appends the length-prefixed wire form of s to out.
func (s ShortStr) Encode(out []byte) []byte {
	out = wire.EncodeU8(out, uint8(len(s)))
	return append(out, s...)
}

// DecodeShortStr reads a length-prefixed string from buf.
func DecodeShortStr(buf []byte) (remaining []byte, v ShortStr, err error) {
	remaining, n, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, "", errors.Wrap(err, "decode ShortStr length")
	}
	remaining, body, err := wire.TakeBytes(remaining, int(n))
	if err != nil {
		return buf, "", errors.Wrap(err, "decode ShortStr bytes")
	}
	return remaining, ShortStr(lossyUTF8(body)), nil
}
