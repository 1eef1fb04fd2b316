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
	"github.com/packetd/amqpcodec/wire"
)

func mustShortStr(t *testing.T, s string) amqptype.ShortStr {
	t.Helper()
	v, err := amqptype.NewShortStr(s)
	require.NoError(t, err)
	return v
}

func TestExchangeUnbindOkWireID51(t *testing.T) {
	assert.Equal(t, uint16(51), ExchangeUnbindOk{}.MethodID())

	_, args, err := DecodeArguments(ClassExchange, 51, nil)
	require.NoError(t, err)
	assert.Equal(t, ExchangeUnbindOk{}, args)

	// Method id 41 is not registered for Exchange: Unbind-Ok does not
	// take the id that would follow its request's 40.
	_, _, err = DecodeArguments(ClassExchange, 41, nil)
	assert.True(t, wire.IsSyntaxError(err))
}

func TestQueueUnbindHasNoFlagsByte(t *testing.T) {
	args := QueueUnbind{
		Ticket:       0,
		QueueName:    mustShortStr(t, "q"),
		ExchangeName: mustShortStr(t, "ex"),
		RoutingKey:   mustShortStr(t, "rk"),
		Args:         amqptype.NewFieldTable(),
	}
	out := args.Encode(nil)

	// ticket(2) + queue_name(1+1) + exchange_name(1+2) + routing_key(1+2) + empty table(4)
	assert.Equal(t, 2+2+3+3+4, len(out))

	rest, decoded, err := DecodeArguments(ClassQueue, 50, out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, args, decoded)
}

func TestQueueAndExchangeUnbindOkShareID51(t *testing.T) {
	_, qArgs, err := DecodeArguments(ClassQueue, 51, nil)
	require.NoError(t, err)
	assert.Equal(t, QueueUnbindOk{}, qArgs)

	_, eArgs, err := DecodeArguments(ClassExchange, 51, nil)
	require.NoError(t, err)
	assert.Equal(t, ExchangeUnbindOk{}, eArgs)
}

func TestDecodeArgumentsUnknownMethodIsSyntaxError(t *testing.T) {
	_, _, err := DecodeArguments(ClassBasic, 9999, nil)
	assert.True(t, wire.IsSyntaxError(err))
}

func TestClassFromIDUnknown(t *testing.T) {
	assert.Equal(t, ClassUnknown, ClassFromID(0x7777))
	assert.Equal(t, "unknown", ClassUnknown.String())
}

func TestBasicPropertiesSelectedFlagsRoundTrip(t *testing.T) {
	var p BasicProperties
	p.SetContentType(mustShortStr(t, "text/plain"))
	p.SetDeliveryMode(2)
	p.SetMessageID(mustShortStr(t, "msg-1"))

	// ContentType (bit 15) | DeliveryMode (bit 12) | MessageID (bit 7)
	assert.Equal(t, uint32(1<<15|1<<12|1<<7), p.Flags())

	out := p.Encode(nil)
	rest, decoded, err := DecodeBasicProperties(out)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, p, decoded)

	// Fields whose flag bit was never set must decode to their zero
	// value, never to leftover bytes from a neighboring field.
	assert.Equal(t, amqptype.ShortStr(""), decoded.ContentEncoding)
	assert.Equal(t, uint8(0), decoded.Priority)
}

func TestDecodePropertiesDispatchesByClass(t *testing.T) {
	flagProps := FlagProperties{Flags: 0x1234}
	_, decoded, err := DecodeProperties(ClassChannel, flagProps.Encode(nil))
	require.NoError(t, err)
	fp, ok := decoded.(FlagProperties)
	require.True(t, ok)
	assert.Equal(t, ClassChannel, fp.Class())
	assert.Equal(t, uint32(0x1234), fp.Flags)

	var basic BasicProperties
	basic.SetAppID(mustShortStr(t, "svc"))
	_, decoded, err = DecodeProperties(ClassBasic, basic.Encode(nil))
	require.NoError(t, err)
	bp, ok := decoded.(BasicProperties)
	require.True(t, ok)
	assert.Equal(t, amqptype.ShortStr("svc"), bp.AppID)
}
