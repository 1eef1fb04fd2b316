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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetd/amqpcodec/amqptype"
)

// roundTrip encodes args, dispatches the bytes back through the
// catalog for (args.Class(), args.MethodID()), and asserts the
// decoded value matches.
func roundTrip(t *testing.T, args Arguments) Arguments {
	t.Helper()
	out := args.Encode(nil)
	rest, decoded, err := DecodeArguments(args.Class(), args.MethodID(), out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, args, decoded)
	return decoded
}

func TestConnectionMethodsRoundTrip(t *testing.T) {
	props := amqptype.NewFieldTable()
	mechanisms, _ := amqptype.NewLongStr("PLAIN")
	locales, _ := amqptype.NewLongStr("en_US")

	roundTrip(t, ConnectionStart{VersionMajor: 0, VersionMinor: 9, ServerProperties: props, Mechanisms: mechanisms, Locales: locales})
	roundTrip(t, ConnectionTune{ChannelMax: 2047, FrameMax: 131072, Heartbeat: 60})
	roundTrip(t, ConnectionOpen{VHost: mustShortStr(t, "/"), Insist: true})
	roundTrip(t, ConnectionClose{ReplyCode: 200, ReplyText: mustShortStr(t, "bye"), ClassID: 10, MethodIDField: 40})
	roundTrip(t, ConnectionCloseOk{})
}

func TestChannelMethodsRoundTrip(t *testing.T) {
	roundTrip(t, ChannelOpen{})
	roundTrip(t, ChannelFlow{Active: true})
	roundTrip(t, ChannelClose{ReplyCode: 504, ReplyText: mustShortStr(t, "channel error"), ClassID: 60, MethodIDField: 40})
	roundTrip(t, ChannelCloseOk{})
}

func TestAccessRequestDropsFillerIntoZeroFlags(t *testing.T) {
	args := AccessRequest{Realm: mustShortStr(t, "/data")}
	out := args.Encode(nil)
	rest, decoded, err := DecodeArguments(ClassAccess, 10, out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, args, decoded)

	roundTrip(t, AccessRequestOk{Ticket: 1})
}

func TestBasicMethodsRoundTrip(t *testing.T) {
	roundTrip(t, BasicQos{PrefetchSize: 0, PrefetchCount: 10, Global: false})
	roundTrip(t, BasicConsume{
		Ticket:      0,
		QueueName:   mustShortStr(t, "q"),
		ConsumerTag: mustShortStr(t, "tag-1"),
		NoAck:       true,
		Args:        amqptype.NewFieldTable(),
	})
	roundTrip(t, BasicPublish{ExchangeName: mustShortStr(t, "ex"), RoutingKey: mustShortStr(t, "rk"), Mandatory: true})
	roundTrip(t, BasicDeliver{
		ConsumerTag: mustShortStr(t, "tag-1"),
		DeliveryTag: 42,
		Redelivered: true,
		ExchangeName: mustShortStr(t, "ex"),
		RoutingKey:   mustShortStr(t, "rk"),
	})
	roundTrip(t, BasicAck{DeliveryTag: 7, Multiple: true})
	roundTrip(t, BasicNack{DeliveryTag: 7, Multiple: false, Requeue: true})
}

func TestConfirmAndTxMethodsRoundTrip(t *testing.T) {
	roundTrip(t, ConfirmSelect{NoWait: true})
	roundTrip(t, ConfirmSelectOk{})
	roundTrip(t, TxSelect{})
	roundTrip(t, TxCommit{})
	roundTrip(t, TxRollbackOk{})
}
