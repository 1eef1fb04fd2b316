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

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetd/amqpcodec/amqptype"
	"github.com/packetd/amqpcodec/method"
	"github.com/packetd/amqpcodec/wire"
)

func TestProtocolHeaderRoundTrip(t *testing.T) {
	h := NewProtocolHeader()
	out := h.Encode(nil)
	assert.Equal(t, []byte{'A', 'M', 'Q', 'P', 0, 0, 9, 1}, out)

	rest, decoded, err := DecodeProtocolHeader(out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, h, decoded)
}

func TestProtocolHeaderBadLiteralIsSyntaxError(t *testing.T) {
	_, _, err := DecodeProtocolHeader([]byte{'X', 'X', 'X', 'X', 0, 0, 9, 1})
	assert.True(t, wire.IsSyntaxError(err))
}

func TestHeartbeatFrameRoundTrip(t *testing.T) {
	f := Frame{Type: TypeHeartbeat, Channel: 0, Payload: HeartbeatPayload{}}
	out := f.Encode(nil)

	rest, decoded, err := DecodeFrame(out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, TypeHeartbeat, decoded.Type)
	assert.Equal(t, HeartbeatPayload{}, decoded.Payload)
}

func TestHeartbeatNonZeroLengthIsSyntaxError(t *testing.T) {
	out := wire.EncodeU8(nil, uint8(TypeHeartbeat))
	out = wire.EncodeU16(out, 0)
	out = wire.EncodeU32(out, 1)
	out = append(out, 0x00)
	out = wire.EncodeU8(out, FrameEnd)

	_, _, err := DecodeFrame(out)
	assert.True(t, wire.IsSyntaxError(err))
}

func TestBadTerminatorIsSyntaxError(t *testing.T) {
	f := Frame{Type: TypeHeartbeat, Channel: 0, Payload: HeartbeatPayload{}}
	out := f.Encode(nil)
	out[len(out)-1] = 0x00

	_, _, err := DecodeFrame(out)
	assert.True(t, wire.IsSyntaxError(err))
}

func TestUnknownFrameTypeIsSyntaxError(t *testing.T) {
	out := wire.EncodeU8(nil, 0x99)
	out = wire.EncodeU16(out, 0)
	out = wire.EncodeU32(out, 0)
	out = wire.EncodeU8(out, FrameEnd)

	_, _, err := DecodeFrame(out)
	assert.True(t, wire.IsSyntaxError(err))
}

func TestMethodFrameRoundTrip(t *testing.T) {
	f := Frame{
		Type:    TypeMethod,
		Channel: 1,
		Payload: MethodPayload{
			Class:    method.ClassQueue,
			MethodID: 51,
			Args:     method.QueueUnbindOk{},
		},
	}
	out := f.Encode(nil)

	rest, decoded, err := DecodeFrame(out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, TypeMethod, decoded.Type)
	mp, ok := decoded.Payload.(MethodPayload)
	require.True(t, ok)
	assert.Equal(t, method.ClassQueue, mp.Class)
	assert.Equal(t, uint16(51), mp.MethodID)
	assert.Equal(t, method.QueueUnbindOk{}, mp.Args)
}

func TestContentHeaderFrameRoundTrip(t *testing.T) {
	var props method.BasicProperties
	props.SetDeliveryMode(2)

	f := Frame{
		Type:    TypeContentHeader,
		Channel: 1,
		Payload: ContentHeaderPayload{
			Class:      method.ClassBasic,
			Weight:     0,
			BodySize:   42,
			Properties: props,
		},
	}
	out := f.Encode(nil)

	rest, decoded, err := DecodeFrame(out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	hp, ok := decoded.Payload.(ContentHeaderPayload)
	require.True(t, ok)
	assert.Equal(t, uint64(42), hp.BodySize)
	bp, ok := hp.Properties.(method.BasicProperties)
	require.True(t, ok)
	assert.Equal(t, uint8(2), bp.DeliveryMode)
}

func TestContentBodyFrameRoundTrip(t *testing.T) {
	f := Frame{Type: TypeContentBody, Channel: 1, Payload: ContentBodyPayload{Data: []byte("hello world")}}
	out := f.Encode(nil)

	rest, decoded, err := DecodeFrame(out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	bp, ok := decoded.Payload.(ContentBodyPayload)
	require.True(t, ok)
	assert.Equal(t, []byte("hello world"), bp.Data)
}

func TestDecodeFrameIncompletePreservesBuffer(t *testing.T) {
	f := Frame{Type: TypeHeartbeat, Channel: 0, Payload: HeartbeatPayload{}}
	full := f.Encode(nil)
	partial := full[:len(full)-2]

	rest, decoded, err := DecodeFrame(partial)
	assert.True(t, wire.IsIncomplete(err))
	assert.Nil(t, decoded)
	assert.Equal(t, partial, rest)
}

func TestDecodeFrameMaxSizeRejectsOversizedDeclaredLength(t *testing.T) {
	out := wire.EncodeU8(nil, uint8(TypeContentBody))
	out = wire.EncodeU16(out, 0)
	out = wire.EncodeU32(out, 1<<20)
	// No payload bytes follow: if the cap weren't enforced first, this
	// would fail as ErrIncomplete instead of a fatal SyntaxError.

	_, _, err := DecodeFrameMaxSize(out, 1024)
	assert.True(t, wire.IsSyntaxError(err))
}

func TestFieldTableTruncatedWithinMethodPayloadIsSyntaxError(t *testing.T) {
	// A method payload whose field-table argument is cut off mid-entry
	// must surface as a fatal error, not ErrIncomplete: the frame's own
	// length prefix already bounded this payload.
	var payload []byte
	payload = wire.EncodeU16(payload, uint16(method.ClassQueue))
	payload = wire.EncodeU16(payload, 50) // Queue.Unbind, no flags byte
	payload = wire.EncodeU16(payload, 0)  // ticket
	name, err := amqptype.NewShortStr("q")
	require.NoError(t, err)
	payload = name.Encode(payload)
	payload = name.Encode(payload)
	payload = name.Encode(payload)
	// truncated field table: length says 5 bytes follow, none present
	payload = wire.EncodeU32(payload, 5)

	out := wire.EncodeU8(nil, uint8(TypeMethod))
	out = wire.EncodeU16(out, 0)
	out = wire.EncodeU32(out, uint32(len(payload)))
	out = append(out, payload...)
	out = wire.EncodeU8(out, FrameEnd)

	_, _, err = DecodeFrame(out)
	assert.True(t, wire.IsSyntaxError(err))
	assert.False(t, wire.IsIncomplete(err))
}

func TestIncrementalDecoderFeedsInSmallChunks(t *testing.T) {
	h := NewProtocolHeader()
	f := Frame{Type: TypeHeartbeat, Channel: 0, Payload: HeartbeatPayload{}}

	stream := h.Encode(nil)
	stream = f.Encode(stream)

	dec := NewDecoder()

	// Feed one byte at a time; every call before the header is
	// complete must report ErrIncomplete without losing bytes.
	var tok Token
	var err error
	for i := 0; i < len(stream); i++ {
		dec.Write(stream[i : i+1])
		tok, err = dec.Next()
		if err == nil {
			break
		}
		require.True(t, wire.IsIncomplete(err))
	}
	require.NoError(t, err)
	require.NotNil(t, tok.Header)
	assert.Equal(t, h, *tok.Header)

	// The heartbeat frame hasn't arrived yet.
	_, err = dec.Next()
	assert.True(t, wire.IsIncomplete(err))

	for i := len(h.Encode(nil)); i < len(stream); i++ {
		dec.Write(stream[i : i+1])
		tok, err = dec.Next()
		if err == nil {
			break
		}
		require.True(t, wire.IsIncomplete(err))
	}
	require.NoError(t, err)
	require.NotNil(t, tok.Frame)
	assert.Equal(t, TypeHeartbeat, tok.Frame.Type)
}

func TestDecoderMaxSizeRejectsOversizedFrame(t *testing.T) {
	h := NewProtocolHeader()
	dec := NewDecoderMaxSize(4)
	dec.Write(h.Encode(nil))
	_, err := dec.Next()
	require.NoError(t, err)

	big := Frame{Type: TypeContentBody, Channel: 0, Payload: ContentBodyPayload{Data: []byte("too big for cap")}}
	dec.Write(big.Encode(nil))
	_, err = dec.Next()
	assert.True(t, wire.IsSyntaxError(err))
}
