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

package wire

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Timestamp is the wire alias for AMQP's 64-bit unsigned timestamp
// field, seconds since the Unix epoch.
type Timestamp = uint64

// TakeBytes consumes the first n bytes of buf. It is the one place,
// besides the scalar decoders below, where Incomplete can originate.
// The decoders built on top wrap the returned error with context;
// IsIncomplete still recognises it through that wrapping.
func TakeBytes(buf []byte, n int) (remaining, taken []byte, err error) {
	if n < 0 {
		return buf, nil, NewSyntaxError("negative length %d", n)
	}
	if len(buf) < n {
		return buf, nil, ErrIncomplete
	}
	return buf[n:], buf[:n], nil
}

func EncodeBool(out []byte, v bool) []byte {
	if v {
		return append(out, 1)
	}
	return append(out, 0)
}

func DecodeBool(buf []byte) (remaining []byte, v bool, err error) {
	remaining, b, err := TakeBytes(buf, 1)
	if err != nil {
		return buf, false, errors.Wrap(err, "decode bool")
	}
	return remaining, b[0] != 0, nil
}

func EncodeU8(out []byte, v uint8) []byte {
	return append(out, v)
}

func DecodeU8(buf []byte) (remaining []byte, v uint8, err error) {
	remaining, b, err := TakeBytes(buf, 1)
	if err != nil {
		return buf, 0, errors.Wrap(err, "decode u8")
	}
	return remaining, b[0], nil
}

func EncodeI8(out []byte, v int8) []byte {
	return append(out, byte(v))
}

func DecodeI8(buf []byte) (remaining []byte, v int8, err error) {
	remaining, b, err := TakeBytes(buf, 1)
	if err != nil {
		return buf, 0, errors.Wrap(err, "decode i8")
	}
	return remaining, int8(b[0]), nil
}

func EncodeU16(out []byte, v uint16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return append(out, tmp[:]...)
}

func DecodeU16(buf []byte) (remaining []byte, v uint16, err error) {
	remaining, b, err := TakeBytes(buf, 2)
	if err != nil {
		return buf, 0, errors.Wrap(err, "decode u16")
	}
	return remaining, binary.BigEndian.Uint16(b), nil
}

func EncodeI16(out []byte, v int16) []byte {
	return EncodeU16(out, uint16(v))
}

func DecodeI16(buf []byte) (remaining []byte, v int16, err error) {
	remaining, u, err := DecodeU16(buf)
	if err != nil {
		return buf, 0, err
	}
	return remaining, int16(u), nil
}

func EncodeU32(out []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(out, tmp[:]...)
}

func DecodeU32(buf []byte) (remaining []byte, v uint32, err error) {
	remaining, b, err := TakeBytes(buf, 4)
	if err != nil {
		return buf, 0, errors.Wrap(err, "decode u32")
	}
	return remaining, binary.BigEndian.Uint32(b), nil
}

func EncodeI32(out []byte, v int32) []byte {
	return EncodeU32(out, uint32(v))
}

func DecodeI32(buf []byte) (remaining []byte, v int32, err error) {
	remaining, u, err := DecodeU32(buf)
	if err != nil {
		return buf, 0, err
	}
	return remaining, int32(u), nil
}

func EncodeU64(out []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(out, tmp[:]...)
}

func DecodeU64(buf []byte) (remaining []byte, v uint64, err error) {
	remaining, b, err := TakeBytes(buf, 8)
	if err != nil {
		return buf, 0, errors.Wrap(err, "decode u64")
	}
	return remaining, binary.BigEndian.Uint64(b), nil
}

func EncodeI64(out []byte, v int64) []byte {
	return EncodeU64(out, uint64(v))
}

func DecodeI64(buf []byte) (remaining []byte, v int64, err error) {
	remaining, u, err := DecodeU64(buf)
	if err != nil {
		return buf, 0, err
	}
	return remaining, int64(u), nil
}

func EncodeF32(out []byte, v float32) []byte {
	return EncodeU32(out, math.Float32bits(v))
}

func DecodeF32(buf []byte) (remaining []byte, v float32, err error) {
	remaining, u, err := DecodeU32(buf)
	if err != nil {
		return buf, 0, err
	}
	return remaining, math.Float32frombits(u), nil
}

func EncodeF64(out []byte, v float64) []byte {
	return EncodeU64(out, math.Float64bits(v))
}

func DecodeF64(buf []byte) (remaining []byte, v float64, err error) {
	remaining, u, err := DecodeU64(buf)
	if err != nil {
		return buf, 0, err
	}
	return remaining, math.Float64frombits(u), nil
}

func EncodeTimestamp(out []byte, v Timestamp) []byte {
	return EncodeU64(out, v)
}

func DecodeTimestamp(buf []byte) (remaining []byte, v Timestamp, err error) {
	return DecodeU64(buf)
}
