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

// Package frame implements the AMQP 0-9-1 protocol header handshake
// and the frame envelope (type, channel, length, payload, terminator)
// that every method, content-header, content-body and heartbeat frame
// shares.
package frame

import "github.com/packetd/amqpcodec/wire"

const protocolLiteral = "AMQP"

// ProtocolHeader is the 8-byte banner exchanged once at the start of
// a connection, before any framed traffic.
type ProtocolHeader struct {
	MajorID      uint8
	MinorID      uint8
	MajorVersion uint8
	MinorVersion uint8
}

// NewProtocolHeader returns the banner every AMQP 0-9-1 peer sends:
// major/minor id 0, protocol version 9.1.
func NewProtocolHeader() ProtocolHeader {
	return ProtocolHeader{MajorID: 0, MinorID: 0, MajorVersion: 9, MinorVersion: 1}
}

func (h ProtocolHeader) Encode(out []byte) []byte {
	out = append(out, protocolLiteral...)
	out = wire.EncodeU8(out, h.MajorID)
	out = wire.EncodeU8(out, h.MinorID)
	out = wire.EncodeU8(out, h.MajorVersion)
	return wire.EncodeU8(out, h.MinorVersion)
}

// DecodeProtocolHeader rejects any literal other than "AMQP" as a
// syntax error; the id/version bytes are accepted generically since a
// peer proposing a different AMQP revision is a negotiation concern,
// not a framing one.
func DecodeProtocolHeader(buf []byte) ([]byte, ProtocolHeader, error) {
	buf, lit, err := wire.TakeBytes(buf, len(protocolLiteral))
	if err != nil {
		return buf, ProtocolHeader{}, err
	}
	if string(lit) != protocolLiteral {
		return buf, ProtocolHeader{}, wire.NewSyntaxError("protocol header literal %q, want %q", lit, protocolLiteral)
	}
	buf, majorID, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, ProtocolHeader{}, err
	}
	buf, minorID, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, ProtocolHeader{}, err
	}
	buf, majorVersion, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, ProtocolHeader{}, err
	}
	buf, minorVersion, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, ProtocolHeader{}, err
	}
	return buf, ProtocolHeader{MajorID: majorID, MinorID: minorID, MajorVersion: majorVersion, MinorVersion: minorVersion}, nil
}
