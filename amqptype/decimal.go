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

package amqptype

import (
	"github.com/pkg/errors"

	"github.com/packetd/amqpcodec/wire"
)

// Decimal represents value * 10^-scale.
type Decimal struct {
	Scale uint8
	Value uint32
}

func (d Decimal) Encode(out []byte) []byte {
	out = wire.EncodeU8(out, d.Scale)
	return wire.EncodeU32(out, d.Value)
}

func DecodeDecimal(buf []byte) (remaining []byte, v Decimal, err error) {
	remaining, scale, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, Decimal{}, errors.Wrap(err, "decode Decimal scale")
	}
	remaining, value, err := wire.DecodeU32(remaining)
	if err != nil {
		return buf, Decimal{}, errors.Wrap(err, "decode Decimal value")
	}
	return remaining, Decimal{Scale: scale, Value: value}, nil
}
