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
	"github.com/packetd/amqpcodec/method"
	"github.com/packetd/amqpcodec/wire"
)

// FrameType is the one-byte discriminator at the start of every frame.
type FrameType uint8

const (
	TypeMethod        FrameType = 1
	TypeContentHeader FrameType = 2
	TypeContentBody   FrameType = 3
	TypeHeartbeat     FrameType = 4
)

func (t FrameType) String() string {
	switch t {
	case TypeMethod:
		return "METHOD"
	case TypeContentHeader:
		return "HEADER"
	case TypeContentBody:
		return "BODY"
	case TypeHeartbeat:
		return "HEARTBEAT"
	default:
		return "UNKNOWN"
	}
}

// FrameEnd is the mandatory terminator octet of every frame.
const FrameEnd uint8 = 0xCE

// Payload is implemented by every concrete frame payload kind.
type Payload interface {
	Encode(out []byte) []byte
}

type HeartbeatPayload struct{}

func (HeartbeatPayload) Encode(out []byte) []byte { return out }

// MethodPayload is the payload of a METHOD frame: a class/method id
// pair plus the arguments the catalog decodes for that pair.
type MethodPayload struct {
	Class    method.Class
	MethodID uint16
	Args     method.Arguments
}

func (p MethodPayload) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, uint16(p.Class))
	out = wire.EncodeU16(out, p.MethodID)
	return p.Args.Encode(out)
}

// ContentHeaderPayload is the payload of a HEADER frame: it precedes
// the BODY frames carrying the message a METHOD frame announced.
type ContentHeaderPayload struct {
	Class      method.Class
	Weight     uint16
	BodySize   uint64
	Properties method.Properties
}

func (p ContentHeaderPayload) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, uint16(p.Class))
	out = wire.EncodeU16(out, p.Weight)
	out = wire.EncodeU64(out, p.BodySize)
	return p.Properties.Encode(out)
}

// ContentBodyPayload carries a raw, opaque slice of message data; the
// framer neither interprets nor validates it.
type ContentBodyPayload struct {
	Data []byte
}

func (p ContentBodyPayload) Encode(out []byte) []byte { return append(out, p.Data...) }
