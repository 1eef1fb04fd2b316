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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetd/amqpcodec/wire"
)

func TestShortStrRoundTrip(t *testing.T) {
	s, err := NewShortStr("hello")
	require.NoError(t, err)

	out := s.Encode(nil)
	assert.Equal(t, []byte{5, 'h', 'e', 'l', 'l', 'o'}, out)

	rest, decoded, err := DecodeShortStr(out)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
	assert.Empty(t, rest)
}

func TestShortStrTooLongIsSyntaxError(t *testing.T) {
	_, err := NewShortStr(strings.Repeat("x", 256))
	assert.True(t, wire.IsSyntaxError(err))
}

func TestShortStrIncompleteBody(t *testing.T) {
	// length says 5 bytes follow, only 2 are present.
	buf := []byte{5, 'h', 'i'}
	_, _, err := DecodeShortStr(buf)
	assert.True(t, wire.IsIncomplete(err))
}

func TestLongStrRoundTrip(t *testing.T) {
	s, err := NewLongStr("payload")
	require.NoError(t, err)

	out := s.Encode(nil)
	rest, decoded, err := DecodeLongStr(out)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
	assert.Empty(t, rest)
}

func TestLongStrTooLongIsSyntaxError(t *testing.T) {
	_, err := NewLongStr(strings.Repeat("x", maxLongStrLen+1))
	assert.True(t, wire.IsSyntaxError(err))
}

func TestLongStrDeclaredLengthOverCapIsSyntaxErrorEvenIfBytesPresent(t *testing.T) {
	out := wire.EncodeU32(nil, maxLongStrLen+1)
	out = append(out, make([]byte, maxLongStrLen+1)...)
	_, _, err := DecodeLongStr(out)
	assert.True(t, wire.IsSyntaxError(err))
}

func TestFieldNameStartCharValidation(t *testing.T) {
	for _, ok := range []string{"abc", "ABC", "$x", "#y"} {
		_, err := NewFieldName(ok)
		assert.NoError(t, err, ok)
	}
	_, err := NewFieldName("1abc")
	assert.True(t, wire.IsSyntaxError(err))

	_, err = NewFieldName("")
	assert.True(t, wire.IsSyntaxError(err))
}

func TestFieldValueRoundTrip(t *testing.T) {
	values := []FieldValue{
		FromBool(true),
		FromI8(-1),
		FromU8(200),
		FromI32(-70000),
		FromU64(123456789),
		FromF64(3.25),
		FromVoid(),
	}
	for _, v := range values {
		out := v.Encode(nil)
		rest, decoded, err := DecodeFieldValue(out)
		require.NoError(t, err)
		assert.Equal(t, v.Kind(), decoded.Kind())
		assert.Empty(t, rest)
	}
}

func TestDecodeFieldValueUnknownTagIsSyntaxError(t *testing.T) {
	_, _, err := DecodeFieldValue([]byte{'?'})
	assert.True(t, wire.IsSyntaxError(err))
}

func TestFieldTableRoundTrip(t *testing.T) {
	tbl := NewFieldTable()
	name, err := NewFieldName("x-match")
	require.NoError(t, err)
	tbl.Set(name, FromLongStr("all"))

	out := tbl.Encode(nil)
	rest, decoded, err := DecodeFieldTable(out)
	require.NoError(t, err)
	assert.Empty(t, rest)

	v, ok := decoded.Get(name)
	require.True(t, ok)
	s, ok := v.AsLongStr()
	require.True(t, ok)
	assert.Equal(t, LongStr("all"), s)
}

func TestFieldTableTruncatedTrailingEntryIsSyntaxError(t *testing.T) {
	name, err := NewFieldName("a")
	require.NoError(t, err)
	var body []byte
	body = name.Encode(body)
	body = append(body, byte(KindU32)) // tag present, 4-byte payload missing

	out := wire.EncodeU32(nil, uint32(len(body)))
	out = append(out, body...)

	_, _, err = DecodeFieldTable(out)
	assert.True(t, wire.IsSyntaxError(err))
	assert.False(t, wire.IsIncomplete(err))
}

func TestFieldTableFingerprintStableAcrossInsertionOrder(t *testing.T) {
	a := NewFieldTable()
	nameX, _ := NewFieldName("x")
	nameY, _ := NewFieldName("y")
	a.Set(nameX, FromU8(1))
	a.Set(nameY, FromU8(2))

	b := NewFieldTable()
	b.Set(nameY, FromU8(2))
	b.Set(nameX, FromU8(1))

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFieldTableUnpack(t *testing.T) {
	tbl := NewFieldTable()
	reason, _ := NewFieldName("reason")
	tbl.Set(reason, FromLongStr("expired"))

	var dst struct {
		Reason string `amqp:"reason"`
	}
	require.NoError(t, tbl.Unpack(&dst))
	assert.Equal(t, "expired", dst.Reason)
}

func TestFieldArrayRoundTrip(t *testing.T) {
	arr := NewFieldArray(FromU8(1), FromU8(2), FromU8(3))
	out := arr.Encode(nil)
	rest, decoded, err := DecodeFieldArray(out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, 3, decoded.Len())
}

func TestDecimalRoundTrip(t *testing.T) {
	d := Decimal{Scale: 2, Value: 12345}
	out := d.Encode(nil)
	rest, decoded, err := DecodeDecimal(out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, d, decoded)
}
