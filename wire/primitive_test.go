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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	out := EncodeBool(nil, true)
	out = EncodeU8(out, 0x7F)
	out = EncodeI8(out, -1)
	out = EncodeU16(out, 0xBEEF)
	out = EncodeI16(out, -2)
	out = EncodeU32(out, 0xDEADBEEF)
	out = EncodeI32(out, -3)
	out = EncodeU64(out, 0x1122334455667788)
	out = EncodeI64(out, -4)
	out = EncodeF32(out, 1.5)
	out = EncodeF64(out, 2.5)
	out = EncodeTimestamp(out, 1700000000)

	rest, b, err := DecodeBool(out)
	require.NoError(t, err)
	assert.True(t, b)

	rest, u8, err := DecodeU8(rest)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7F), u8)

	rest, i8, err := DecodeI8(rest)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), i8)

	rest, u16, err := DecodeU16(rest)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)

	rest, i16, err := DecodeI16(rest)
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	rest, u32, err := DecodeU32(rest)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	rest, i32, err := DecodeI32(rest)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), i32)

	rest, u64, err := DecodeU64(rest)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1122334455667788), u64)

	rest, i64, err := DecodeI64(rest)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), i64)

	rest, f32, err := DecodeF32(rest)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)

	rest, f64, err := DecodeF64(rest)
	require.NoError(t, err)
	assert.Equal(t, float64(2.5), f64)

	rest, ts, err := DecodeTimestamp(rest)
	require.NoError(t, err)
	assert.Equal(t, Timestamp(1700000000), ts)

	assert.Empty(t, rest)
}

func TestDecodeIncompletePreservesBuffer(t *testing.T) {
	buf := []byte{0x01, 0x02}
	rest, _, err := DecodeU32(buf)
	assert.True(t, IsIncomplete(err))
	assert.False(t, IsSyntaxError(err))
	assert.Equal(t, buf, rest)
}

func TestTakeBytesNegativeLengthIsSyntaxError(t *testing.T) {
	_, _, err := TakeBytes([]byte{1, 2, 3}, -1)
	assert.True(t, IsSyntaxError(err))
	assert.False(t, IsIncomplete(err))
}

func TestLengthPatchRoundTrip(t *testing.T) {
	out, mark := ReserveU32Length(nil)
	out = append(out, []byte("payload")...)
	PatchU32Length(out, mark)

	rest, n, err := DecodeU32(out)
	require.NoError(t, err)
	assert.Equal(t, uint32(len("payload")), n)
	assert.Equal(t, []byte("payload"), rest)
}
