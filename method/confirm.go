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

	"github.com/packetd/amqpcodec/wire"
)

func init() {
	register(ClassConfirm, 10, "Select", decodeConfirmSelect)
	register(ClassConfirm, 11, "Select-Ok", decodeConfirmSelectOk)
}

type ConfirmSelect struct {
	NoWait bool
}

func (ConfirmSelect) Class() Class     { return ClassConfirm }
func (ConfirmSelect) MethodID() uint16 { return 10 }

func (a ConfirmSelect) Encode(out []byte) []byte {
	var f flags8
	f = setFlag(f, 0, a.NoWait)
	return wire.EncodeU8(out, byte(f))
}

func decodeConfirmSelect(buf []byte) ([]byte, Arguments, error) {
	buf, flagByte, err := wire.DecodeU8(buf)
	if err != nil {
		return buf, nil, errors.Wrap(err, "decode ConfirmSelect flags")
	}
	f := flags8(flagByte)
	return buf, ConfirmSelect{NoWait: f.has(0)}, nil
}

type ConfirmSelectOk struct{}

func (ConfirmSelectOk) Class() Class             { return ClassConfirm }
func (ConfirmSelectOk) MethodID() uint16         { return 11 }
func (ConfirmSelectOk) Encode(out []byte) []byte { return out }

func decodeConfirmSelectOk(buf []byte) ([]byte, Arguments, error) {
	return buf, ConfirmSelectOk{}, nil
}
