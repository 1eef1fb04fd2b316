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

package method

import (
	"github.com/pkg/errors"

	"github.com/packetd/amqpcodec/amqptype"
	"github.com/packetd/amqpcodec/wire"
)

func init() {
	register(ClassAccess, 10, "Request", decodeAccessRequest)
	register(ClassAccess, 11, "Request-Ok", decodeAccessRequestOk)
}

// AccessRequest is deprecated in AMQP 0-9-1; kept only for wire
// compatibility with brokers that still exchange it.
type AccessRequest struct {
	Realm     amqptype.ShortStr
	Exclusive bool
	Passive   bool
	Active    bool
	Write     bool
	Read      bool
}

func (AccessRequest) Class() Class     { return ClassAccess }
func (AccessRequest) MethodID() uint16 { return 10 }

// Encode always emits a zero filler byte after the realm, matching
// the wire form every broker accepts; the filler is never interpreted
// back into the discrete booleans on decode.
func (a AccessRequest) Encode(out []byte) []byte {
	out = a.Realm.Encode(out)
	return wire.EncodeU8(out, 0)
}

func decodeAccessRequest(buf []byte) ([]byte, Arguments, error) {
	buf, realm, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode AccessRequest realm")
	}
	buf, _, err = wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode AccessRequest flags")
	}
	return buf, AccessRequest{Realm: realm}, nil
}

type AccessRequestOk struct {
	Ticket uint16
}

func (AccessRequestOk) Class() Class             { return ClassAccess }
func (AccessRequestOk) MethodID() uint16         { return 11 }
func (a AccessRequestOk) Encode(out []byte) []byte { return wire.EncodeU16(out, a.Ticket) }

func decodeAccessRequestOk(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode AccessRequestOk ticket")
	}
	return buf, AccessRequestOk{Ticket: ticket}, nil
}
