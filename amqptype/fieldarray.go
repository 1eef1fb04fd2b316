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

// FieldArray is a byte-length-prefixed sequence of FieldValue
// records.
type FieldArray struct {
	items []FieldValue
}

func NewFieldArray(items ...FieldValue) FieldArray {
	return FieldArray{items: items}
}

func (a FieldArray) Items() []FieldValue {
	return a.items
}

func (a FieldArray) Len() int {
	return len(a.items)
}

// Encode uses the two-pass reserve/patch strategy: the 4-byte length
// prefix can't be known until every item (including any nested
// table/array closure) has been written.
func (a FieldArray) Encode(out []byte) []byte {
	out, mark := wire.ReserveU32Length(out)
	for _, item := range a.items {
		out = item.Encode(out)
	}
	wire.PatchU32Length(out, mark)
	return out
}

// DecodeFieldArray reads the length prefix, slices exactly that many
// bytes, and decodes FieldValue records until the slice is exhausted.
// A trailing partial record is a syntax error: the outer length fixed
// the byte region already, so there is nothing more to wait for.
func DecodeFieldArray(buf []byte) (remaining []byte, v FieldArray, err error) {
	remaining, n, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, FieldArray{}, errors.Wrap(err, "decode FieldArray length")
	}
	remaining, body, err := wire.TakeBytes(remaining, int(n))
	if err != nil {
		return buf, FieldArray{}, errors.Wrap(err, "decode FieldArray bytes")
	}
	var items []FieldValue
	for len(body) > 0 {
		rest, item, err := DecodeFieldValue(body)
		if err != nil {
			if wire.IsIncomplete(err) {
				return buf, FieldArray{}, wire.NewSyntaxError("FieldArray truncated trailing item")
			}
			return buf, FieldArray{}, errors.Wrap(err, "decode FieldArray item")
		}
		items = append(items, item)
		body = rest
	}
	return remaining, FieldArray{items: items}, nil
}
