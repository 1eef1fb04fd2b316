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
	register(ClassBasic, 10, "Qos", decodeBasicQos)
	register(ClassBasic, 11, "Qos-Ok", decodeBasicQosOk)
	register(ClassBasic, 20, "Consume", decodeBasicConsume)
	register(ClassBasic, 21, "Consume-Ok", decodeBasicConsumeOk)
	register(ClassBasic, 30, "Cancel", decodeBasicCancel)
	register(ClassBasic, 31, "Cancel-Ok", decodeBasicCancelOk)
	register(ClassBasic, 40, "Publish", decodeBasicPublish)
	register(ClassBasic, 50, "Return", decodeBasicReturn)
	register(ClassBasic, 60, "Deliver", decodeBasicDeliver)
	register(ClassBasic, 70, "Get", decodeBasicGet)
	register(ClassBasic, 71, "Get-Ok", decodeBasicGetOk)
	register(ClassBasic, 72, "Get-Empty", decodeBasicGetEmpty)
	register(ClassBasic, 80, "Ack", decodeBasicAck)
	register(ClassBasic, 90, "Reject", decodeBasicReject)
	register(ClassBasic, 100, "Recover-Async", decodeBasicRecoverAsync)
	register(ClassBasic, 110, "Recover", decodeBasicRecover)
	register(ClassBasic, 111, "Recover-Ok", decodeBasicRecoverOk)
	register(ClassBasic, 120, "Nack", decodeBasicNack)
}

type BasicQos struct {
	PrefetchSize  uint32
	PrefetchCount uint16
	Global        bool
}

func (BasicQos) Class() Class     { return ClassBasic }
func (BasicQos) MethodID() uint16 { return 10 }

func (a BasicQos) Encode(out []byte) []byte {
	out = wire.EncodeU32(out, a.PrefetchSize)
	out = wire.EncodeU16(out, a.PrefetchCount)
	var f flags8
	f = setFlag(f, 0, a.Global)
	return wire.EncodeU8(out, byte(f))
}

func decodeBasicQos(buf []byte) ([]byte, Arguments, error) {
	buf, size, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicQos prefetch_size")
	}
	buf, count, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicQos prefetch_count")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicQos flags")
	}
	f := flags8(flagByte)
	return buf, BasicQos{PrefetchSize: size, PrefetchCount: count, Global: f.has(0)}, nil
}

type BasicQosOk struct{}

func (BasicQosOk) Class() Class             { return ClassBasic }
func (BasicQosOk) MethodID() uint16         { return 11 }
func (BasicQosOk) Encode(out []byte) []byte { return out }

func decodeBasicQosOk(buf []byte) ([]byte, Arguments, error) {
	return buf, BasicQosOk{}, nil
}

type BasicConsume struct {
	Ticket      uint16
	QueueName   amqptype.ShortStr
	ConsumerTag amqptype.ShortStr
	NoLocal     bool
	NoAck       bool
	Exclusive   bool
	NoWait      bool
	Args        amqptype.FieldTable
}

func (BasicConsume) Class() Class     { return ClassBasic }
func (BasicConsume) MethodID() uint16 { return 20 }

func (a BasicConsume) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.QueueName.Encode(out)
	out = a.ConsumerTag.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.NoLocal)
	f = setFlag(f, 1, a.NoAck)
	f = setFlag(f, 2, a.Exclusive)
	f = setFlag(f, 3, a.NoWait)
	out = wire.EncodeU8(out, byte(f))
	return a.Args.Encode(out)
}

func decodeBasicConsume(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicConsume ticket")
	}
	buf, queue, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicConsume queue_name")
	}
	buf, tag, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicConsume consumer_tag")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicConsume flags")
	}
	f := flags8(flagByte)
	buf, args, err := amqptype.DecodeFieldTable(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicConsume args")
	}
	return buf, BasicConsume{
		Ticket:      ticket,
		QueueName:   queue,
		ConsumerTag: tag,
		NoLocal:     f.has(0),
		NoAck:       f.has(1),
		Exclusive:   f.has(2),
		NoWait:      f.has(3),
		Args:        args,
	}, nil
}

type BasicConsumeOk struct {
	ConsumerTag amqptype.ShortStr
}

func (BasicConsumeOk) Class() Class     { return ClassBasic }
func (BasicConsumeOk) MethodID() uint16 { return 21 }

func (a BasicConsumeOk) Encode(out []byte) []byte { return a.ConsumerTag.Encode(out) }

func decodeBasicConsumeOk(buf []byte) ([]byte, Arguments, error) {
	buf, tag, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicConsumeOk consumer_tag")
	}
	return buf, BasicConsumeOk{ConsumerTag: tag}, nil
}

type BasicCancel struct {
	ConsumerTag amqptype.ShortStr
	NoWait      bool
}

func (BasicCancel) Class() Class     { return ClassBasic }
func (BasicCancel) MethodID() uint16 { return 30 }

func (a BasicCancel) Encode(out []byte) []byte {
	out = a.ConsumerTag.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.NoWait)
	return wire.EncodeU8(out, byte(f))
}

func decodeBasicCancel(buf []byte) ([]byte, Arguments, error) {
	buf, tag, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicCancel consumer_tag")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicCancel flags")
	}
	f := flags8(flagByte)
	return buf, BasicCancel{ConsumerTag: tag, NoWait: f.has(0)}, nil
}

type BasicCancelOk struct {
	ConsumerTag amqptype.ShortStr
}

func (BasicCancelOk) Class() Class     { return ClassBasic }
func (BasicCancelOk) MethodID() uint16 { return 31 }

func (a BasicCancelOk) Encode(out []byte) []byte { return a.ConsumerTag.Encode(out) }

func decodeBasicCancelOk(buf []byte) ([]byte, Arguments, error) {
	buf, tag, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicCancelOk consumer_tag")
	}
	return buf, BasicCancelOk{ConsumerTag: tag}, nil
}

type BasicPublish struct {
	Ticket       uint16
	ExchangeName amqptype.ShortStr
	RoutingKey   amqptype.ShortStr
	Mandatory    bool
	Immediate    bool
}

func (BasicPublish) Class() Class     { return ClassBasic }
func (BasicPublish) MethodID() uint16 { return 40 }

func (a BasicPublish) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.ExchangeName.Encode(out)
	out = a.RoutingKey.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.Mandatory)
	f = setFlag(f, 1, a.Immediate)
	return wire.EncodeU8(out, byte(f))
}

func decodeBasicPublish(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicPublish ticket")
	}
	buf, exch, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicPublish exchange_name")
	}
	buf, rk, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicPublish routing_key")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicPublish flags")
	}
	f := flags8(flagByte)
	return buf, BasicPublish{Ticket: ticket, ExchangeName: exch, RoutingKey: rk, Mandatory: f.has(0), Immediate: f.has(1)}, nil
}

type BasicReturn struct {
	ReplyCode    uint16
	ReplyText    amqptype.ShortStr
	ExchangeName amqptype.ShortStr
	RoutingKey   amqptype.ShortStr
}

func (BasicReturn) Class() Class     { return ClassBasic }
func (BasicReturn) MethodID() uint16 { return 50 }

func (a BasicReturn) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.ReplyCode)
	out = a.ReplyText.Encode(out)
	out = a.ExchangeName.Encode(out)
	return a.RoutingKey.Encode(out)
}

func decodeBasicReturn(buf []byte) ([]byte, Arguments, error) {
	buf, code, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicReturn reply_code")
	}
	buf, text, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicReturn reply_text")
	}
	buf, exch, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicReturn exchange_name")
	}
	buf, rk, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicReturn routing_key")
	}
	return buf, BasicReturn{ReplyCode: code, ReplyText: text, ExchangeName: exch, RoutingKey: rk}, nil
}

type BasicDeliver struct {
	ConsumerTag  amqptype.ShortStr
	DeliveryTag  uint64
	Redelivered  bool
	ExchangeName amqptype.ShortStr
	RoutingKey   amqptype.ShortStr
}

func (BasicDeliver) Class() Class     { return ClassBasic }
func (BasicDeliver) MethodID() uint16 { return 60 }

func (a BasicDeliver) Encode(out []byte) []byte {
	out = a.ConsumerTag.Encode(out)
	out = wire.EncodeU64(out, a.DeliveryTag)
	var f flags8
	f = setFlag(f, 0, a.Redelivered)
	out = wire.EncodeU8(out, byte(f))
	out = a.ExchangeName.Encode(out)
	return a.RoutingKey.Encode(out)
}

func decodeBasicDeliver(buf []byte) ([]byte, Arguments, error) {
	buf, tag, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicDeliver consumer_tag")
	}
	buf, deliveryTag, err := wire.DecodeU64(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicDeliver delivery_tag")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicDeliver flags")
	}
	f := flags8(flagByte)
	buf, exch, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicDeliver exchange_name")
	}
	buf, rk, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicDeliver routing_key")
	}
	return buf, BasicDeliver{ConsumerTag: tag, DeliveryTag: deliveryTag, Redelivered: f.has(0), ExchangeName: exch, RoutingKey: rk}, nil
}

type BasicGet struct {
	Ticket    uint16
	QueueName amqptype.ShortStr
	NoAck     bool
}

func (BasicGet) Class() Class     { return ClassBasic }
func (BasicGet) MethodID() uint16 { return 70 }

func (a BasicGet) Encode(out []byte) []byte {
	out = wire.EncodeU16(out, a.Ticket)
	out = a.QueueName.Encode(out)
	var f flags8
	f = setFlag(f, 0, a.NoAck)
	return wire.EncodeU8(out, byte(f))
}

func decodeBasicGet(buf []byte) ([]byte, Arguments, error) {
	buf, ticket, err := wire.DecodeU16(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicGet ticket")
	}
	buf, queue, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicGet queue_name")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicGet flags")
	}
	f := flags8(flagByte)
	return buf, BasicGet{Ticket: ticket, QueueName: queue, NoAck: f.has(0)}, nil
}

type BasicGetOk struct {
	DeliveryTag  uint64
	Redelivered  bool
	ExchangeName amqptype.ShortStr
	RoutingKey   amqptype.ShortStr
	MessageCount uint32
}

func (BasicGetOk) Class() Class     { return ClassBasic }
func (BasicGetOk) MethodID() uint16 { return 71 }

func (a BasicGetOk) Encode(out []byte) []byte {
	out = wire.EncodeU64(out, a.DeliveryTag)
	var f flags8
	f = setFlag(f, 0, a.Redelivered)
	out = wire.EncodeU8(out, byte(f))
	out = a.ExchangeName.Encode(out)
	out = a.RoutingKey.Encode(out)
	return wire.EncodeU32(out, a.MessageCount)
}

func decodeBasicGetOk(buf []byte) ([]byte, Arguments, error) {
	buf, deliveryTag, err := wire.DecodeU64(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicGetOk delivery_tag")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicGetOk flags")
	}
	f := flags8(flagByte)
	buf, exch, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicGetOk exchange_name")
	}
	buf, rk, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicGetOk routing_key")
	}
	buf, count, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicGetOk message_count")
	}
	return buf, BasicGetOk{DeliveryTag: deliveryTag, Redelivered: f.has(0), ExchangeName: exch, RoutingKey: rk, MessageCount: count}, nil
}

type BasicGetEmpty struct {
	ClusterID amqptype.ShortStr
}

func (BasicGetEmpty) Class() Class     { return ClassBasic }
func (BasicGetEmpty) MethodID() uint16 { return 72 }

func (a BasicGetEmpty) Encode(out []byte) []byte { return a.ClusterID.Encode(out) }

func decodeBasicGetEmpty(buf []byte) ([]byte, Arguments, error) {
	buf, cluster, err := amqptype.DecodeShortStr(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicGetEmpty cluster_id")
	}
	return buf, BasicGetEmpty{ClusterID: cluster}, nil
}

type BasicAck struct {
	DeliveryTag uint64
	Multiple    bool
}

func (BasicAck) Class() Class     { return ClassBasic }
func (BasicAck) MethodID() uint16 { return 80 }

func (a BasicAck) Encode(out []byte) []byte {
	out = wire.EncodeU64(out, a.DeliveryTag)
	var f flags8
	f = setFlag(f, 0, a.Multiple)
	return wire.EncodeU8(out, byte(f))
}

func decodeBasicAck(buf []byte) ([]byte, Arguments, error) {
	buf, tag, err := wire.DecodeU64(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicAck delivery_tag")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicAck flags")
	}
	f := flags8(flagByte)
	return buf, BasicAck{DeliveryTag: tag, Multiple: f.has(0)}, nil
}

type BasicReject struct {
	DeliveryTag uint64
	Requeue     bool
}

func (BasicReject) Class() Class     { return ClassBasic }
func (BasicReject) MethodID() uint16 { return 90 }

func (a BasicReject) Encode(out []byte) []byte {
	out = wire.EncodeU64(out, a.DeliveryTag)
	var f flags8
	f = setFlag(f, 0, a.Requeue)
	return wire.EncodeU8(out, byte(f))
}

func decodeBasicReject(buf []byte) ([]byte, Arguments, error) {
	buf, tag, err := wire.DecodeU64(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicReject delivery_tag")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicReject flags")
	}
	f := flags8(flagByte)
	return buf, BasicReject{DeliveryTag: tag, Requeue: f.has(0)}, nil
}

type BasicRecoverAsync struct {
	Requeue bool
}

func (BasicRecoverAsync) Class() Class     { return ClassBasic }
func (BasicRecoverAsync) MethodID() uint16 { return 100 }

func (a BasicRecoverAsync) Encode(out []byte) []byte {
	var f flags8
	f = setFlag(f, 0, a.Requeue)
	return wire.EncodeU8(out, byte(f))
}

func decodeBasicRecoverAsync(buf []byte) ([]byte, Arguments, error) {
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicRecoverAsync flags")
	}
	f := flags8(flagByte)
	return buf, BasicRecoverAsync{Requeue: f.has(0)}, nil
}

type BasicRecover struct {
	Requeue bool
}

func (BasicRecover) Class() Class     { return ClassBasic }
func (BasicRecover) MethodID() uint16 { return 110 }

func (a BasicRecover) Encode(out []byte) []byte {
	var f flags8
	f = setFlag(f, 0, a.Requeue)
	return wire.EncodeU8(out, byte(f))
}

func decodeBasicRecover(buf []byte) ([]byte, Arguments, error) {
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicRecover flags")
	}
	f := flags8(flagByte)
	return buf, BasicRecover{Requeue: f.has(0)}, nil
}

type BasicRecoverOk struct{}

func (BasicRecoverOk) Class() Class             { return ClassBasic }
func (BasicRecoverOk) MethodID() uint16         { return 111 }
func (BasicRecoverOk) Encode(out []byte) []byte { return out }

func decodeBasicRecoverOk(buf []byte) ([]byte, Arguments, error) {
	return buf, BasicRecoverOk{}, nil
}

type BasicNack struct {
	DeliveryTag uint64
	Multiple    bool
	Requeue     bool
}

func (BasicNack) Class() Class     { return ClassBasic }
func (BasicNack) MethodID() uint16 { return 120 }

func (a BasicNack) Encode(out []byte) []byte {
	out = wire.EncodeU64(out, a.DeliveryTag)
	var f flags8
	f = setFlag(f, 0, a.Multiple)
	f = setFlag(f, 1, a.Requeue)
	return wire.EncodeU8(out, byte(f))
}

func decodeBasicNack(buf []byte) ([]byte, Arguments, error) {
	buf, tag, err := wire.DecodeU64(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicNack delivery_tag")
	}
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode BasicNack flags")
	}
	f := flags8(flagByte)
	return buf, BasicNack{DeliveryTag: tag, Multiple: f.has(0), Requeue: f.has(1)}, nil
}
