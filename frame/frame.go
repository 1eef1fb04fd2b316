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
	"github.com/pkg/errors"

	"github.com/packetd/amqpcodec/method"
	"github.com/packetd/amqpcodec/wire"
)

// Frame is a single AMQP frame: type, channel and a payload whose
// shape depends on the type.
type Frame struct {
	Type    FrameType
	Channel uint16
	Payload Payload
}

func (f Frame) Encode(out []byte) []byte {
	out = wire.EncodeU8(out, uint8(f.Type))
	out = wire.EncodeU16(out, f.Channel)
	out, mark := wire.ReserveU32Length(out)
	out = f.Payload.Encode(out)
	wire.PatchU32Length(out, mark)
	return wire.EncodeU8(out, FrameEnd)
}

// DecodeFrame parses one frame from buf with no cap on payload length.
// See DecodeFrameMaxSize for callers enforcing a negotiated maximum.
func DecodeFrame(buf []byte) (remaining []byte, frame *Frame, err error) {
	return DecodeFrameMaxSize(buf, 0)
}

// DecodeFrameMaxSize parses one frame from buf, rejecting a declared
// payload length greater than maxSize (0 means unbounded) before the
// inner parse runs, so a hostile or corrupt length field can't drive
// an unbounded allocation. On ErrIncomplete, buf is returned
// unmodified: the caller retains every byte and retries once more
// data has arrived. A complete but invalid frame is a fatal
// *wire.SyntaxError or wrapped decode error; no amount of additional
// input would make it valid.
func DecodeFrameMaxSize(buf []byte, maxSize int) (remaining []byte, frame *Frame, err error) {
	orig := buf

	buf, typeByte, err := wire.DecodeU8(buf)
	if err != nil {
		return orig, nil, err
	}
	buf, channel, err := wire.DecodeU16(buf)
	if err != nil {
		return orig, nil, err
	}
	buf, length, err := wire.DecodeU32(buf)
	if err != nil {
		return orig, nil, err
	}
	if maxSize > 0 && int(length) > maxSize {
		return orig, nil, wire.NewSyntaxError("frame length %d exceeds maximum %d", length, maxSize)
	}
	buf, payloadBytes, err := wire.TakeBytes(buf, int(length))
	if err != nil {
		return orig, nil, err
	}
	buf, term, err := wire.DecodeU8(buf)
	if err != nil {
		return orig, nil, err
	}
	if term != FrameEnd {
		return orig, nil, wire.NewSyntaxError("frame terminator %#x, want %#x", term, FrameEnd)
	}

	payload, err := decodePayload(FrameType(typeByte), payloadBytes)
	if err != nil {
		return orig, nil, err
	}
	return buf, &Frame{Type: FrameType(typeByte), Channel: channel, Payload: payload}, nil
}

// boundedWrap converts an ErrIncomplete arising while decoding inside
// a length-prefixed payload into a fatal syntax error: the outer
// length already fixed the byte region, so running out partway
// through means the declared length didn't hold an integral value,
// not that more network bytes are coming.
func boundedWrap(err error, context string) error {
	if err == nil {
		return nil
	}
	if wire.IsIncomplete(err) {
		return wire.NewSyntaxError("%s: truncated within bounded frame payload", context)
	}
	return errors.Wrap(err, context)
}

func decodePayload(t FrameType, buf []byte) (Payload, error) {
	switch t {
	case TypeHeartbeat:
		if len(buf) != 0 {
			return nil, wire.NewSyntaxError("heartbeat payload length %d, want 0", len(buf))
		}
		return HeartbeatPayload{}, nil
	case TypeMethod:
		return decodeMethodPayload(buf)
	case TypeContentHeader:
		return decodeContentHeaderPayload(buf)
	case TypeContentBody:
		data := make([]byte, len(buf))
		copy(data, buf)
		return ContentBodyPayload{Data: data}, nil
	default:
		return nil, wire.NewSyntaxError("unknown frame type %d", uint8(t))
	}
}

func decodeMethodPayload(buf []byte) (Payload, error) {
	buf, classID, err := wire.DecodeU16(buf)
	if err != nil {
		return nil, boundedWrap(err, "decode method payload class id")
	}
	buf, methodID, err := wire.DecodeU16(buf)
	if err != nil {
		return nil, boundedWrap(err, "decode method payload method id")
	}
	class := method.ClassFromID(classID)
	_, args, err := method.DecodeArguments(class, methodID, buf)
	if err != nil {
		return nil, boundedWrap(err, "decode method payload arguments")
	}
	return MethodPayload{Class: class, MethodID: methodID, Args: args}, nil
}

func decodeContentHeaderPayload(buf []byte) (Payload, error) {
	buf, classID, err := wire.DecodeU16(buf)
	if err != nil {
		return nil, boundedWrap(err, "decode content header class id")
	}
	buf, weight, err := wire.DecodeU16(buf)
	if err != nil {
		return nil, boundedWrap(err, "decode content header weight")
	}
	buf, bodySize, err := wire.DecodeU64(buf)
	if err != nil {
		return nil, boundedWrap(err, "decode content header body size")
	}
	class := method.ClassFromID(classID)
	_, props, err := method.DecodeProperties(class, buf)
	if err != nil {
		return nil, boundedWrap(err, "decode content header properties")
	}
	return ContentHeaderPayload{Class: class, Weight: weight, BodySize: bodySize, Properties: props}, nil
}
