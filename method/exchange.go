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
	register(ClassExchange, 10, "Declare", decodeExchangeDeclare)
	register(ClassExchange, 11, "Declare-Ok", decodeExchangeDeclareOk)
	register(ClassExchange, 20, "Delete", decodeExchangeDelete)
	register(ClassExchange, 21, "Delete-Ok", decodeExchangeDeleteOk)
	register(ClassExchange, 30, "Bind", decodeExchangeBind)
	register(ClassExchange, 31, "Bind-Ok", decodeExchangeBindOk)
	register(ClassExchange, 40, "Unbind", decodeExchangeUnbind)
	// Unbind-Ok carries method id 51 on the wire, not 41. Every broker
	// and client implementation reproduces this gap; it is not a typo.
	register(ClassExchange, 51, "Unbind-Ok", decodeExchangeUnbindOk)
}

type ExchangeDeclare struct {
	Ticket       uint16
	ExchangeName amqptype.ShortStr
	ExchangeType amqptype.ShortStr
	Passive      bool
	Durable      bool
	AutoDelete   bool
	Internal     bool
	NoWait       bool
	Args         amqptype.FieldTable
}

func (ExchangeDeclare) Class() Class     { return ClassExchange }
func (ExchangeDeclare) MethodID() uint16 { return 10 }

func (a ExchangeDeclare) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.ExchangeName.Encode(out)
	out = a.ExchangeType.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.Passive)
	f = setFlag(f, 1, a.Durable)
	f = setFlag(f, 2, a.AutoDelete)
	f = setFlag(f, 3, a.Internal)
	f = setFlag(f, 4, a.NoWait)
	out = wire.EncodeU8(out, byte(f))
	return a.Args.Encode(out)
}

func decodeExchangeDeclare(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeDeclare ticket")
	}
	buf, name, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeDeclare exchange_name")
	}
	buf, typ, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeDeclare exchange_type")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeDeclare flags")
	}
	f := flags8(flagByte)
	buf, args, err := amqptype.DecodeFieldTable(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeDeclare args")
	}
	return buf, ExchangeDeclare{
		Ticket:       ticket,
		ExchangeName: name,
		ExchangeType: typ,
		Passive:      f.has(0),
		Durable:      f.has(1),
		AutoDelete:   f.has(2),
		Internal:     f.has(3),
		NoWait:       f.has(4),
		Args:         args,
	}, nil
}

type ExchangeDeclareOk struct{}

func (ExchangeDeclareOk) Class() Class             { return ClassExchange }
func (ExchangeDeclareOk) MethodID() uint16         { return 11 }
func (ExchangeDeclareOk) Encode(out []byte) []byte { return out }

func decodeExchangeDeclareOk(buf []byte) ([]byte, Arguments, error) {
	return buf, ExchangeDeclareOk{}, nil
}

type ExchangeDelete struct {
	Ticket       uint16
	ExchangeName amqptype.ShortStr
	IfUnused     bool
	NoWait       bool
}

func (ExchangeDelete) Class() Class     { return ClassExchange }
func (ExchangeDelete) MethodID() uint16 { return 20 }

func (a ExchangeDelete) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.ExchangeName.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.IfUnused)
	f = setFlag(f, 1, a.NoWait)
	return wire.EncodeU8(out, byte(f))
}

func decodeExchangeDelete(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeDelete ticket")
	}
	buf, name, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeDelete exchange_name")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeDelete flags")
	}
	f := flags8(flagByte)
	return buf, ExchangeDelete{Ticket: ticket, ExchangeName: name, IfUnused: f.has(0), NoWait: f.has(1)}, nil
}

type ExchangeDeleteOk struct{}

func (ExchangeDeleteOk) Class() Class             { return ClassExchange }
func (ExchangeDeleteOk) MethodID() uint16         { return 21 }
func (ExchangeDeleteOk) Encode(out []byte) []byte { return out }

func decodeExchangeDeleteOk(buf []byte) ([]byte, Arguments, error) {
	return buf, ExchangeDeleteOk{}, nil
}

type ExchangeBind struct {
	Ticket      uint16
	Destination amqptype.ShortStr
	Source      amqptype.ShortStr
	RoutingKey  amqptype.ShortStr
	NoWait      bool
	Args        amqptype.FieldTable
}

func (ExchangeBind) Class() Class     { return ClassExchange }
func (ExchangeBind) MethodID() uint16 { return 30 }

func (a ExchangeBind) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.Destination.Encode(out)
	out = a.Source.Encode(out)
	out = a.RoutingKey.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.NoWait)
	out = wire.EncodeU8(out, byte(f))
	return a.Args.Encode(out)
}

func decodeExchangeBind(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeBind ticket")
	}
	buf, dest, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeBind destination")
	}
	buf, src, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeBind source")
	}
	buf, rk, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeBind routing_key")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeBind flags")
	}
	f := flags8(flagByte)
	buf, args, err := amqptype.DecodeFieldTable(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeBind args")
	}
	return buf, ExchangeBind{Ticket: ticket, Destination: dest, Source: src, RoutingKey: rk, NoWait: f.has(0), Args: args}, nil
}

type ExchangeBindOk struct{}

func (ExchangeBindOk) Class() Class             { return ClassExchange }
func (ExchangeBindOk) MethodID() uint16         { return 31 }
func (ExchangeBindOk) Encode(out []byte) []byte { return out }

func decodeExchangeBindOk(buf []byte) ([]byte, Arguments, error) {
	return buf, ExchangeBindOk{}, nil
}

type ExchangeUnbind struct {
	Ticket      uint16
	Destination amqptype.ShortStr
	Source      amqptype.ShortStr
	RoutingKey  amqptype.ShortStr
	NoWait      bool
	Args        amqptype.FieldTable
}

func (ExchangeUnbind) Class() Class     { return ClassExchange }
func (ExchangeUnbind) MethodID() uint16 { return 40 }

func (a ExchangeUnbind) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.Destination.Encode(out)
	out = a.Source.Encode(out)
	out = a.RoutingKey.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.NoWait)
	out = wire.EncodeU8(out, byte(f))
	return a.Args.Encode(out)
}

func decodeExchangeUnbind(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeUnbind ticket")
	}
	buf, dest, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeUnbind destination")
	}
	buf, src, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeUnbind source")
	}
	buf, rk, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeUnbind routing_key")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeUnbind flags")
	}
	f := flags8(flagByte)
	buf, args, err := amqptype.DecodeFieldTable(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ExchangeUnbind args")
	}
	return buf, ExchangeUnbind{Ticket: ticket, Destination: dest, Source: src, RoutingKey: rk, NoWait: f.has(0), Args: args}, nil
}

// ExchangeUnbindOk is registered under method id 51, matching the
// on-wire gap after Unbind's 40.
type ExchangeUnbindOk struct{}

func (ExchangeUnbindOk) Class() Class             { return ClassExchange }
func (ExchangeUnbindOk) MethodID() uint16         { return 51 }
func (ExchangeUnbindOk) Encode(out []byte) []byte { return out }

func decodeExchangeUnbindOk(buf []byte) ([]byte, Arguments, error) {
	return buf, ExchangeUnbindOk{}, nil
}
