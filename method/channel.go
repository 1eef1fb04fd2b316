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
	register(ClassChannel, 10, "Open", decodeChannelOpen)
	register(ClassChannel, 11, "Open-Ok", decodeChannelOpenOk)
	register(ClassChannel, 20, "Flow", decodeChannelFlow)
	register(ClassChannel, 21, "Flow-Ok", decodeChannelFlowOk)
	register(ClassChannel, 40, "Close", decodeChannelClose)
	register(ClassChannel, 41, "Close-Ok", decodeChannelCloseOk)
}

type ChannelOpen struct {
	OutOfBand amqptype.ShortStr
}

func (ChannelOpen) Class() Class     { return ClassChannel }
func (ChannelOpen) MethodID() uint16 { return 10 }
func (a ChannelOpen) Encode(out []byte) []byte { return a.OutOfBand.Encode(out) }

func decodeChannelOpen(buf []byte) ([]byte, Arguments, error) {
	buf, outOfBand, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ChannelOpen out_of_band")
	}
	return buf, ChannelOpen{OutOfBand: outOfBand}, nil
}

type ChannelOpenOk struct {
	ChannelID amqptype.LongStr
}

func (ChannelOpenOk) Class() Class     { return ClassChannel }
func (ChannelOpenOk) MethodID() uint16 { return 11 }
func (a ChannelOpenOk) Encode(out []byte) []byte { return a.ChannelID.Encode(out) }

func decodeChannelOpenOk(buf []byte) ([]byte, Arguments, error) {
	buf, channelID, err := amqptype.DecodeLongStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ChannelOpenOk channel_id")
	}
	return buf, ChannelOpenOk{ChannelID: channelID}, nil
}

type ChannelFlow struct {
	Active bool
}

func (ChannelFlow) Class() Class     { return ClassChannel }
func (ChannelFlow) MethodID() uint16 { return 20 }

func (a ChannelFlow) Encode(out []byte) []byte {
	var f flags8
	f = setFlag(f, 0, a.Active)
	return wire.EncodeU8(out, byte(f))
}

func decodeChannelFlow(buf []byte) ([]byte, Arguments, error) {
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ChannelFlow flags")
	}
	return buf, ChannelFlow{Active: flags8(flagByte).has(0)}, nil
}

type ChannelFlowOk struct {
	Active bool
}

func (ChannelFlowOk) Class() Class     { return ClassChannel }
func (ChannelFlowOk) MethodID() uint16 { return 21 }

func (a ChannelFlowOk) Encode(out []byte) []byte {
	var f flags8
	f = setFlag(f, 0, a.Active)
	return wire.EncodeU8(out, byte(f))
}

func decodeChannelFlowOk(buf []byte) ([]byte, Arguments, error) {
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ChannelFlowOk flags")
	}
	return buf, ChannelFlowOk{Active: flags8(flagByte).has(0)}, nil
}

type ChannelClose struct {
	ReplyCode     uint16
	ReplyText     amqptype.ShortStr
	ClassID       uint16
	MethodIDField uint16
}

func (ChannelClose) Class() Class     { return ClassChannel }
func (ChannelClose) MethodID() uint16 { return 40 }

func (a ChannelClose) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.ReplyCode)
	out = a.ReplyText.Encode(out)
	out = wire.EncodeU16(out, a.ClassID)
	return wire.EncodeU16(out, a.MethodIDField)
}

func decodeChannelClose(buf []byte) ([]byte, Arguments, error) {
	buf, code, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ChannelClose reply_code")
	}
	buf, text, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ChannelClose reply_text")
	}
	buf, classID, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ChannelClose class_id")
	}
	buf, methodID, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ChannelClose method_id")
	}
	return buf, ChannelClose{ReplyCode: code, ReplyText: text, ClassID: classID, MethodIDField: methodID}, nil
}

type ChannelCloseOk struct{}

func (ChannelCloseOk) Class() Class             { return ClassChannel }
func (ChannelCloseOk) MethodID() uint16         { return 41 }
func (ChannelCloseOk) Encode(out []byte) []byte { return out }

func decodeChannelCloseOk(buf []byte) ([]byte, Arguments, error) {
	return buf, ChannelCloseOk{}, nil
}
