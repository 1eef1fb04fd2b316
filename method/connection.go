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
	register(ClassConnection, 10, "Start", decodeConnectionStart)
	register(ClassConnection, 11, "Start-Ok", decodeConnectionStartOk)
	register(ClassConnection, 20, "Secure", decodeConnectionSecure)
	register(ClassConnection, 21, "Secure-Ok", decodeConnectionSecureOk)
	register(ClassConnection, 30, "Tune", decodeConnectionTune)
	register(ClassConnection, 31, "Tune-Ok", decodeConnectionTuneOk)
	register(ClassConnection, 40, "Open", decodeConnectionOpen)
	register(ClassConnection, 41, "Open-Ok", decodeConnectionOpenOk)
	register(ClassConnection, 50, "Close", decodeConnectionClose)
	register(ClassConnection, 51, "Close-Ok", decodeConnectionCloseOk)
}

type ConnectionStart struct {
	VersionMajor     uint8
	VersionMinor     uint8
	ServerProperties amqptype.FieldTable
	Mechanisms       amqptype.LongStr
	Locales          amqptype.LongStr
}

func (ConnectionStart) Class() Class      { return ClassConnection }
func (ConnectionStart) MethodID() uint16  { return 10 }

func (a ConnectionStart) Encode(out []byte) []byte {
	out = wire.EncodeU8(out, a.VersionMajor)
	out = wire.EncodeU8(out, a.VersionMinor)
	out = a.ServerProperties.Encode(out)
	out = a.Mechanisms.Encode(out)
	return a.Locales.Encode(out)
}

func decodeConnectionStart(buf []byte) ([]byte, Arguments, error) {
	buf, major, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionStart version_major")
	}
	buf, minor, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionStart version_minor")
	}
	buf, props, err := amqptype.DecodeFieldTable(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionStart server_properties")
	}
	buf, mechanisms, err := amqptype.DecodeLongStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionStart mechanisms")
	}
	buf, locales, err := amqptype.DecodeLongStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionStart locales")
	}
	return buf, ConnectionStart{VersionMajor: major, VersionMinor: minor, ServerProperties: props, Mechanisms: mechanisms, Locales: locales}, nil
}

type ConnectionStartOk struct {
	ClientProperties amqptype.FieldTable
	Mechanism        amqptype.ShortStr
	Response         amqptype.LongStr
	Locale           amqptype.ShortStr
}

func (ConnectionStartOk) Class() Class     { return ClassConnection }
func (ConnectionStartOk) MethodID() uint16 { return 11 }

func (a ConnectionStartOk) Encode(out []byte) []byte {
	out = a.ClientProperties.Encode(out)
	out = a.Mechanism.Encode(out)
	out = a.Response.Encode(out)
	return a.Locale.Encode(out)
}

func decodeConnectionStartOk(buf []byte) ([]byte, Arguments, error) {
	buf, props, err := amqptype.DecodeFieldTable(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionStartOk client_properties")
	}
	buf, mechanism, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionStartOk mechanism")
	}
	buf, response, err := amqptype.DecodeLongStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionStartOk response")
	}
	buf, locale, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionStartOk locale")
	}
	return buf, ConnectionStartOk{ClientProperties: props, Mechanism: mechanism, Response: response, Locale: locale}, nil
}

type ConnectionSecure struct {
	Challenge amqptype.LongStr
}

func (ConnectionSecure) Class() Class     { return ClassConnection }
func (ConnectionSecure) MethodID() uint16 { return 20 }
func (a ConnectionSecure) Encode(out []byte) []byte { return a.Challenge.Encode(out) }

func decodeConnectionSecure(buf []byte) ([]byte, Arguments, error) {
	buf, challenge, err := amqptype.DecodeLongStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionSecure challenge")
	}
	return buf, ConnectionSecure{Challenge: challenge}, nil
}

type ConnectionSecureOk struct {
	Response amqptype.LongStr
}

func (ConnectionSecureOk) Class() Class     { return ClassConnection }
func (ConnectionSecureOk) MethodID() uint16 { return 21 }
func (a ConnectionSecureOk) Encode(out []byte) []byte { return a.Response.Encode(out) }

func decodeConnectionSecureOk(buf []byte) ([]byte, Arguments, error) {
	buf, response, err := amqptype.DecodeLongStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionSecureOk response")
	}
	return buf, ConnectionSecureOk{Response: response}, nil
}

type ConnectionTune struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (ConnectionTune) Class() Class     { return ClassConnection }
func (ConnectionTune) MethodID() uint16 { return 30 }

func (a ConnectionTune) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.ChannelMax)
	out = wire.EncodeU32(out, a.FrameMax)
	return wire.EncodeU16(out, a.Heartbeat)
}

func decodeConnectionTune(buf []byte) ([]byte, Arguments, error) {
	buf, channelMax, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionTune channel_max")
	}
	buf, frameMax, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionTune frame_max")
	}
	buf, heartbeat, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionTune heartbeat")
	}
	return buf, ConnectionTune{ChannelMax: channelMax, FrameMax: frameMax, Heartbeat: heartbeat}, nil
}

type ConnectionTuneOk struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (ConnectionTuneOk) Class() Class     { return ClassConnection }
func (ConnectionTuneOk) MethodID() uint16 { return 31 }

func (a ConnectionTuneOk) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.ChannelMax)
	out = wire.EncodeU32(out, a.FrameMax)
	return wire.EncodeU16(out, a.Heartbeat)
}

func decodeConnectionTuneOk(buf []byte) ([]byte, Arguments, error) {
	buf, channelMax, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionTuneOk channel_max")
	}
	buf, frameMax, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionTuneOk frame_max")
	}
	buf, heartbeat, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionTuneOk heartbeat")
	}
	return buf, ConnectionTuneOk{ChannelMax: channelMax, FrameMax: frameMax, Heartbeat: heartbeat}, nil
}

type ConnectionOpen struct {
	VHost        amqptype.ShortStr
	Capabilities amqptype.ShortStr
	Insist       bool
}

func (ConnectionOpen) Class() Class     { return ClassConnection }
func (ConnectionOpen) MethodID() uint16 { return 40 }

func (a ConnectionOpen) Encode(out []byte) []byte {
	out = a.VHost.Encode(out)
	out = a.Capabilities.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.Insist)
	return wire.EncodeU8(out, byte(f))
}

func decodeConnectionOpen(buf []byte) ([]byte, Arguments, error) {
	buf, vhost, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionOpen vhost")
	}
	buf, capabilities, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionOpen capabilities")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionOpen flags")
	}
	f := flags8(flagByte)
	return buf, ConnectionOpen{VHost: vhost, Capabilities: capabilities, Insist: f.has(0)}, nil
}

type ConnectionOpenOk struct {
	KnownHosts amqptype.ShortStr
}

func (ConnectionOpenOk) Class() Class     { return ClassConnection }
func (ConnectionOpenOk) MethodID() uint16 { return 41 }
func (a ConnectionOpenOk) Encode(out []byte) []byte { return a.KnownHosts.Encode(out) }

func decodeConnectionOpenOk(buf []byte) ([]byte, Arguments, error) {
	buf, knownHosts, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionOpenOk known_hosts")
	}
	return buf, ConnectionOpenOk{KnownHosts: knownHosts}, nil
}

type ConnectionClose struct {
	ReplyCode uint16
	ReplyText amqptype.ShortStr
	ClassID   uint16
	MethodIDField uint16
}

func (ConnectionClose) Class() Class     { return ClassConnection }
func (ConnectionClose) MethodID() uint16 { return 50 }

func (a ConnectionClose) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.ReplyCode)
	out = a.ReplyText.Encode(out)
	out = wire.EncodeU16(out, a.ClassID)
	return wire.EncodeU16(out, a.MethodIDField)
}

func decodeConnectionClose(buf []byte) ([]byte, Arguments, error) {
	buf, code, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionClose reply_code")
	}
	buf, text, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionClose reply_text")
	}
	buf, classID, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionClose class_id")
	}
	buf, methodID, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConnectionClose method_id")
	}
	return buf, ConnectionClose{ReplyCode: code, ReplyText: text, ClassID: classID, MethodIDField: methodID}, nil
}

type ConnectionCloseOk struct{}

func (ConnectionCloseOk) Class() Class             { return ClassConnection }
func (ConnectionCloseOk) MethodID() uint16         { return 51 }
func (ConnectionCloseOk) Encode(out []byte) []byte { return out }

func decodeConnectionCloseOk(buf []byte) ([]byte, Arguments, error) {
	return buf, ConnectionCloseOk{}, nil
}
