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

// maxLongStrLen is this library's own cap, stricter than the 32-bit
// length prefix AMQP allows on the wire.
const maxLongStrLen = 65536

// LongStr is a UTF-8 string length-prefixed by a 32-bit big-endian
// length.
type LongStr string

// NewLongStr validates s against the library's LongStr body cap.
func NewLongStr(s string) (LongStr, error) {
	if len(s) > maxLongStrLen {
		return "", wire.NewSyntaxError("LongStr too long: %d bytes", len(s))
	}
	return LongStr(s), nil
}

func (s LongStr) String() string {
	return string(s)
}

// Encode appends the length-prefixed wire form of s to out.
func (s LongStr) Encode(out []byte) []byte {
	out = wire.EncodeU32(out, uint32(len(s)))
	return append(out, s...)
}

// DecodeLongStr reads a length-prefixed string from buf. A declared
// length exceeding the library cap is a syntax error even when buf
// holds enough bytes to satisfy it — the cap is ours, not the wire's.
func DecodeLongStr(buf []byte) (remaining []byte, v LongStr, err error) {
	remaining, n, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, "", errors.Wrap(err, "decode LongStr length")
	}
	if n > maxLongStrLen {
		return buf, "", wire.NewSyntaxError("LongStr too long: declared %d bytes", n)
	}
	remaining, body, err := wire.TakeBytes(remaining, int(n))
	if err != nil {
		return buf, "", errors.Wrap(err, "decode LongStr bytes")
	}
	return remaining, LongStr(lossyUTF8(body)), nil
}
