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

// Property bit flags for BasicProperties, descending from bit 15.
const (
	flagContentType     uint32 = 1 << 15
	flagContentEncoding uint32 = 1 << 14
	flagHeaders         uint32 = 1 << 13
	flagDeliveryMode    uint32 = 1 << 12
	flagPriority        uint32 = 1 << 11
	flagCorrelationID   uint32 = 1 << 10
	flagReplyTo         uint32 = 1 << 9
	flagExpiration      uint32 = 1 << 8
	flagMessageID       uint32 = 1 << 7
	flagTimestamp       uint32 = 1 << 6
	flagType            uint32 = 1 << 5
	flagUserID          uint32 = 1 << 4
	flagAppID           uint32 = 1 << 3
	flagClusterID       uint32 = 1 << 2
)

// Properties is implemented by every class's content-header property
// record.
type Properties interface {
	Class() Class
	Encode(out []byte) []byte
}

// BasicProperties is the only class whose property record has a
// conditional field layout; every other class is a bare flag word.
//
// Only setters mutate the corresponding flag bit, so a BasicProperties
// built through them can never carry a field whose flag says it is
// absent, or vice versa.
type BasicProperties struct {
	flags           uint32
	ContentType     amqptype.ShortStr
	ContentEncoding amqptype.ShortStr
	Headers         amqptype.FieldTable
	DeliveryMode    uint8
	Priority        uint8
	CorrelationID   amqptype.ShortStr
	ReplyTo         amqptype.ShortStr
	Expiration      amqptype.ShortStr
	MessageID       amqptype.ShortStr
	Timestamp       wire.Timestamp
	Type            amqptype.ShortStr
	UserID          amqptype.ShortStr
	AppID           amqptype.ShortStr
	ClusterID       amqptype.ShortStr
}

func (BasicProperties) Class() Class { return ClassBasic }

func (p *BasicProperties) SetContentType(v amqptype.ShortStr) {
	p.flags |= flagContentType
	p.ContentType = v
}

func (p *BasicProperties) SetContentEncoding(v amqptype.ShortStr) {
	p.flags |= flagContentEncoding
	p.ContentEncoding = v
}

func (p *BasicProperties) SetHeaders(v amqptype.FieldTable) {
	p.flags |= flagHeaders
	p.Headers = v
}

func (p *BasicProperties) SetDeliveryMode(v uint8) {
	p.flags |= flagDeliveryMode
	p.DeliveryMode = v
}

func (p *BasicProperties) SetPriority(v uint8) {
	p.flags |= flagPriority
	p.Priority = v
}

func (p *BasicProperties) SetCorrelationID(v amqptype.ShortStr) {
	p.flags |= flagCorrelationID
	p.CorrelationID = v
}

func (p *BasicProperties) SetReplyTo(v amqptype.ShortStr) {
	p.flags |= flagReplyTo
	p.ReplyTo = v
}

func (p *BasicProperties) SetExpiration(v amqptype.ShortStr) {
	p.flags |= flagExpiration
	p.Expiration = v
}

func (p *BasicProperties) SetMessageID(v amqptype.ShortStr) {
	p.flags |= flagMessageID
	p.MessageID = v
}

func (p *BasicProperties) SetTimestamp(v wire.Timestamp) {
	p.flags |= flagTimestamp
	p.Timestamp = v
}

func (p *BasicProperties) SetType(v amqptype.ShortStr) {
	p.flags |= flagType
	p.Type = v
}

func (p *BasicProperties) SetUserID(v amqptype.ShortStr) {
	p.flags |= flagUserID
	p.UserID = v
}

func (p *BasicProperties) SetAppID(v amqptype.ShortStr) {
	p.flags |= flagAppID
	p.AppID = v
}

func (p *BasicProperties) SetClusterID(v amqptype.ShortStr) {
	p.flags |= flagClusterID
	p.ClusterID = v
}

// Flags reports the raw property flag word, mostly useful for tests
// asserting on wire layout.
func (p BasicProperties) Flags() uint32 { return p.flags }

func (p BasicProperties) Encode(out []byte) []byte {
	out = wire.EncodeU32(out, p.flags)
	if p.flags&flagContentType != 0 {
		out = p.ContentType.Encode(out)
	}
	if p.flags&flagContentEncoding != 0 {
		out = p.ContentEncoding.Encode(out)
	}
	if p.flags&flagHeaders != 0 {
		out = p.Headers.Encode(out)
	}
	if p.flags&flagDeliveryMode != 0 {
		out = wire.EncodeU8(out, p.DeliveryMode)
	}
	if p.flags&flagPriority != 0 {
		out = wire.EncodeU8(out, p.Priority)
	}
	if p.flags&flagCorrelationID != 0 {
		out = p.CorrelationID.Encode(out)
	}
	if p.flags&flagReplyTo != 0 {
		out = p.ReplyTo.Encode(out)
	}
	if p.flags&flagExpiration != 0 {
		out = p.Expiration.Encode(out)
	}
	if p.flags&flagMessageID != 0 {
		out = p.MessageID.Encode(out)
	}
	if p.flags&flagTimestamp != 0 {
		out = wire.EncodeTimestamp(out, p.Timestamp)
	}
	if p.flags&flagType != 0 {
		out = p.Type.Encode(out)
	}
	if p.flags&flagUserID != 0 {
		out = p.UserID.Encode(out)
	}
	if p.flags&flagAppID != 0 {
		out = p.AppID.Encode(out)
	}
	if p.flags&flagClusterID != 0 {
		out = p.ClusterID.Encode(out)
	}
	return out
}

func DecodeBasicProperties(buf []byte) ([]byte, BasicProperties, error) {
	buf, flags, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties flags")
	}
	var p BasicProperties
	if flags&flagContentType != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties content_type")
		}
		p.SetContentType(v)
	}
	if flags&flagContentEncoding != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties content_encoding")
		}
		p.SetContentEncoding(v)
	}
	if flags&flagHeaders != 0 {
		var v amqptype.FieldTable
		if buf, v, err = amqptype.DecodeFieldTable(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties headers")
		}
		p.SetHeaders(v)
	}
	if flags&flagDeliveryMode != 0 {
		var v uint8
		if buf, v, err = wire.DecodeU8(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties delivery_mode")
		}
		p.SetDeliveryMode(v)
	}
	if flags&flagPriority != 0 {
		var v uint8
		if buf, v, err = wire.DecodeU8(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties priority")
		}
		p.SetPriority(v)
	}
	if flags&flagCorrelationID != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties correlation_id")
		}
		p.SetCorrelationID(v)
	}
	if flags&flagReplyTo != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties reply_to")
		}
		p.SetReplyTo(v)
	}
	if flags&flagExpiration != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties expiration")
		}
		p.SetExpiration(v)
	}
	if flags&flagMessageID != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties message_id")
		}
		p.SetMessageID(v)
	}
	if flags&flagTimestamp != 0 {
		var v wire.Timestamp
		if buf, v, err = wire.DecodeTimestamp(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties timestamp")
		}
		p.SetTimestamp(v)
	}
	if flags&flagType != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties type")
		}
		p.SetType(v)
	}
	if flags&flagUserID != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties user_id")
		}
		p.SetUserID(v)
	}
	if flags&flagAppID != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties app_id")
		}
		p.SetAppID(v)
	}
	if flags&flagClusterID != 0 {
		var v amqptype.ShortStr
		if buf, v, err = amqptype.DecodeShortStr(buf); err != nil {
			return buf, BasicProperties{}, errors.Wrap(err, "decode BasicProperties cluster_id")
		}
		p.SetClusterID(v)
	}
	return buf, p, nil
}

// FlagProperties is the bare u32-flag-word property record every
// non-Basic class uses: no broker sends conditional fields for them.
type FlagProperties struct {
	class Class
	Flags uint32
}

func (p FlagProperties) Class() Class { return p.class }

func (p FlagProperties) Encode(out []byte) []byte { return wire.EncodeU32(out, p.Flags) }

func decodeFlagProperties(class Class, buf []byte) ([]byte, FlagProperties, error) {
	buf, flags, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, FlagProperties{}, errors.Wrapf(err, "decode %s properties flags", class)
	}
	return buf, FlagProperties{class: class, Flags: flags}, nil
}

// DecodeProperties dispatches a content-header property payload to
// BasicProperties for ClassBasic, or a bare FlagProperties for every
// other class.
func DecodeProperties(class Class, buf []byte) ([]byte, Properties, error) {
	if class == ClassBasic {
		buf, p, err := DecodeBasicProperties(buf)
		if err != nil {
			return buf, nil, err
		}
		return buf, p, nil
	}
	buf, p, err := decodeFlagProperties(class, buf)
	if err != nil {
		return buf, nil, err
	}
	return buf, p, nil
}
