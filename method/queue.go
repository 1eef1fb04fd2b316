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
	register(ClassQueue, 10, "Declare", decodeQueueDeclare)
	register(ClassQueue, 11, "Declare-Ok", decodeQueueDeclareOk)
	register(ClassQueue, 20, "Bind", decodeQueueBind)
	register(ClassQueue, 21, "Bind-Ok", decodeQueueBindOk)
	register(ClassQueue, 30, "Purge", decodeQueuePurge)
	register(ClassQueue, 31, "Purge-Ok", decodeQueuePurgeOk)
	register(ClassQueue, 40, "Delete", decodeQueueDelete)
	register(ClassQueue, 41, "Delete-Ok", decodeQueueDeleteOk)
	register(ClassQueue, 50, "Unbind", decodeQueueUnbind)
	register(ClassQueue, 51, "Unbind-Ok", decodeQueueUnbindOk)
}

type QueueDeclare struct {
	Ticket     uint16
	QueueName  amqptype.ShortStr
	Passive    bool
	Durable    bool
	Exclusive  bool
	AutoDelete bool
	NoWait     bool
	Args       amqptype.FieldTable
}

func (QueueDeclare) Class() Class     { return ClassQueue }
func (QueueDeclare) MethodID() uint16 { return 10 }

func (a QueueDeclare) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.QueueName.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.Passive)
	f = setFlag(f, 1, a.Durable)
	f = setFlag(f, 2, a.Exclusive)
	f = setFlag(f, 3, a.AutoDelete)
	f = setFlag(f, 4, a.NoWait)
	out = wire.EncodeU8(out, byte(f))
	return a.Args.Encode(out)
}

func decodeQueueDeclare(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDeclare ticket")
	}
	buf, name, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDeclare queue_name")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDeclare flags")
	}
	f := flags8(flagByte)
	buf, args, err := amqptype.DecodeFieldTable(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDeclare args")
	}
	return buf, QueueDeclare{
		Ticket:     ticket,
		QueueName:  name,
		Passive:    f.has(0),
		Durable:    f.has(1),
		Exclusive:  f.has(2),
		AutoDelete: f.has(3),
		NoWait:     f.has(4),
		Args:       args,
	}, nil
}

type QueueDeclareOk struct {
	QueueName     amqptype.ShortStr
	MessageCount  uint32
	ConsumerCount uint32
}

func (QueueDeclareOk) Class() Class     { return ClassQueue }
func (QueueDeclareOk) MethodID() uint16 { return 11 }

func (a QueueDeclareOk) Encode(out []byte) []byte {
	out = a.QueueName.Encode(out)
	out = wire.EncodeU32(out, a.MessageCount)
	return wire.EncodeU32(out, a.ConsumerCount)
}

func decodeQueueDeclareOk(buf []byte) ([]byte, Arguments, error) {
	buf, name, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDeclareOk queue_name")
	}
	buf, msgCount, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDeclareOk message_count")
	}
	buf, consCount, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDeclareOk consumer_count")
	}
	return buf, QueueDeclareOk{QueueName: name, MessageCount: msgCount, ConsumerCount: consCount}, nil
}

type QueueBind struct {
	Ticket       uint16
	QueueName    amqptype.ShortStr
	ExchangeName amqptype.ShortStr
	RoutingKey   amqptype.ShortStr
	NoWait       bool
	Args         amqptype.FieldTable
}

func (QueueBind) Class() Class     { return ClassQueue }
func (QueueBind) MethodID() uint16 { return 20 }

func (a QueueBind) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.QueueName.Encode(out)
	out = a.ExchangeName.Encode(out)
	out = a.RoutingKey.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.NoWait)
	out = wire.EncodeU8(out, byte(f))
	return a.Args.Encode(out)
}

func decodeQueueBind(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueBind ticket")
	}
	buf, name, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueBind queue_name")
	}
	buf, exch, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueBind exchange_name")
	}
	buf, rk, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueBind routing_key")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueBind flags")
	}
	f := flags8(flagByte)
	buf, args, err := amqptype.DecodeFieldTable(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueBind args")
	}
	return buf, QueueBind{Ticket: ticket, QueueName: name, ExchangeName: exch, RoutingKey: rk, NoWait: f.has(0), Args: args}, nil
}

type QueueBindOk struct{}

func (QueueBindOk) Class() Class             { return ClassQueue }
func (QueueBindOk) MethodID() uint16         { return 21 }
func (QueueBindOk) Encode(out []byte) []byte { return out }

func decodeQueueBindOk(buf []byte) ([]byte, Arguments, error) {
	return buf, QueueBindOk{}, nil
}

type QueuePurge struct {
	Ticket    uint16
	QueueName amqptype.ShortStr
	NoWait    bool
}

func (QueuePurge) Class() Class     { return ClassQueue }
func (QueuePurge) MethodID() uint16 { return 30 }

func (a QueuePurge) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.QueueName.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.NoWait)
	return wire.EncodeU8(out, byte(f))
}

func decodeQueuePurge(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueuePurge ticket")
	}
	buf, name, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueuePurge queue_name")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueuePurge flags")
	}
	f := flags8(flagByte)
	return buf, QueuePurge{Ticket: ticket, QueueName: name, NoWait: f.has(0)}, nil
}

type QueuePurgeOk struct {
	MessageCount uint32
}

func (QueuePurgeOk) Class() Class     { return ClassQueue }
func (QueuePurgeOk) MethodID() uint16 { return 31 }

func (a QueuePurgeOk) Encode(out []byte) []byte { return wire.EncodeU32(out, a.MessageCount) }

func decodeQueuePurgeOk(buf []byte) ([]byte, Arguments, error) {
	buf, count, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueuePurgeOk message_count")
	}
	return buf, QueuePurgeOk{MessageCount: count}, nil
}

type QueueDelete struct {
	Ticket    uint16
	QueueName amqptype.ShortStr
	IfUnused  bool
	IfEmpty   bool
	NoWait    bool
}

func (QueueDelete) Class() Class     { return ClassQueue }
func (QueueDelete) MethodID() uint16 { return 40 }

func (a QueueDelete) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.QueueName.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.IfUnused)
	f = setFlag(f, 1, a.IfEmpty)
	f = setFlag(f, 2, a.NoWait)
	return wire.EncodeU8(out, byte(f))
}

func decodeQueueDelete(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDelete ticket")
	}
	buf, name, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDelete queue_name")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDelete flags")
	}
	f := flags8(flagByte)
	return buf, QueueDelete{Ticket: ticket, QueueName: name, IfUnused: f.has(0), IfEmpty: f.has(1), NoWait: f.has(2)}, nil
}

type QueueDeleteOk struct {
	MessageCount uint32
}

func (QueueDeleteOk) Class() Class     { return ClassQueue }
func (QueueDeleteOk) MethodID() uint16 { return 41 }

func (a QueueDeleteOk) Encode(out []byte) []byte { return wire.EncodeU32(out, a.MessageCount) }

func decodeQueueDeleteOk(buf []byte) ([]byte, Arguments, error) {
	buf, count, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueDeleteOk message_count")
	}
	return buf, QueueDeleteOk{MessageCount: count}, nil
}

// QueueUnbind carries no flags byte, unlike ExchangeUnbind — the
// wire layout goes straight from routing_key into the argument table.
type QueueUnbind struct {
	Ticket       uint16
	QueueName    amqptype.ShortStr
	ExchangeName amqptype.ShortStr
	RoutingKey   amqptype.ShortStr
	Args         amqptype.FieldTable
}

func (QueueUnbind) Class() Class     { return ClassQueue }
func (QueueUnbind) MethodID() uint16 { return 50 }

func (a QueueUnbind) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.QueueName.Encode(out)
	out = a.ExchangeName.Encode(out)
	out = a.RoutingKey.Encode(out)
	return a.Args.Encode(out)
}

func decodeQueueUnbind(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueUnbind ticket")
	}
	buf, name, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueUnbind queue_name")
	}
	buf, exch, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueUnbind exchange_name")
	}
	buf, rk, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueUnbind routing_key")
	}
	buf, args, err := amqptype.DecodeFieldTable(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode QueueUnbind args")
	}
	return buf, QueueUnbind{Ticket: ticket, QueueName: name, ExchangeName: exch, RoutingKey: rk, Args: args}, nil
}

type QueueUnbindOk struct{}

func (QueueUnbindOk) Class() Class             { return ClassQueue }
func (QueueUnbindOk) MethodID() uint16         { return 51 }
func (QueueUnbindOk) Encode(out []byte) []byte { return out }

func decodeQueueUnbindOk(buf []byte) ([]byte, Arguments, error) {
	return buf, QueueUnbindOk{}, nil
}
