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
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/packetd/amqpcodec/wire"
)

// FieldTable is a byte-length-prefixed mapping from FieldName to
// FieldValue. Encoding order is unspecified: two encodings of the
// same table may differ byte-for-byte, but each decodes back to an
// equal mapping.
type FieldTable struct {
	entries map[FieldName]FieldValue
}

func NewFieldTable() FieldTable {
	return FieldTable{entries: make(map[FieldName]FieldValue)}
}

// Set stores v under name, overwriting any existing entry — this is
// also what decode does on a duplicate key, and the behavior must
// match.
func (t *FieldTable) Set(name FieldName, v FieldValue) {
	if t.entries == nil {
		t.entries = make(map[FieldName]FieldValue)
	}
	t.entries[name] = v
}

func (t FieldTable) Get(name FieldName) (FieldValue, bool) {
	v, ok := t.entries[name]
	return v, ok
}

func (t FieldTable) Len() int {
	return len(t.entries)
}

func (t FieldTable) Entries() map[FieldName]FieldValue {
	return t.entries
}

// sortedNames returns the table's keys in a stable order, used by
// Encode (so repeated encodes of an unchanged table produce identical
// bytes, which is convenient though not required) and by Fingerprint
// (where a stable order is required for a stable hash).
func (t FieldTable) sortedNames() []FieldName {
	names := make([]FieldName, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Encode uses the same two-pass reserve/patch strategy as FieldArray.
func (t FieldTable) Encode(out []byte) []byte {
	out, mark := wire.ReserveU32Length(out)
	for _, name := range t.sortedNames() {
		out = name.Encode(out)
		out = t.entries[name].Encode(out)
	}
	wire.PatchU32Length(out, mark)
	return out
}

// DecodeFieldTable reads the length prefix, slices exactly that many
// bytes, and decodes (FieldName, FieldValue) pairs until the slice is
// exhausted.
func DecodeFieldTable(buf []byte) (remaining []byte, v FieldTable, err error) {
	remaining, n, err := wire.DecodeU32(buf)
	if err != nil {
		return buf, FieldTable{}, errors.Wrap(err, "decode FieldTable length")
	}
	remaining, body, err := wire.TakeBytes(remaining, int(n))
	if err != nil {
		return buf, FieldTable{}, errors.Wrap(err, "decode FieldTable bytes")
	}
	entries := make(map[FieldName]FieldValue)
	for len(body) > 0 {
		rest, name, err := DecodeFieldName(body)
		if err != nil {
			if wire.IsIncomplete(err) {
				return buf, FieldTable{}, wire.NewSyntaxError("FieldTable truncated trailing name")
			}
			return buf, FieldTable{}, errors.Wrap(err, "decode FieldTable name")
		}
		rest, val, err := DecodeFieldValue(rest)
		if err != nil {
			if wire.IsIncomplete(err) {
				return buf, FieldTable{}, wire.NewSyntaxError("FieldTable truncated trailing value")
			}
			return buf, FieldTable{}, errors.Wrap(err, "decode FieldTable value")
		}
		entries[name] = val
		body = rest
	}
	return remaining, FieldTable{entries: entries}, nil
}

// ToMap converts t to a plain map[string]any, recursing into nested
// tables and arrays via FieldValue.Native.
func (t FieldTable) ToMap() map[string]any {
	out := make(map[string]any, len(t.entries))
	for name, v := range t.entries {
		out[string(name)] = v.Native()
	}
	return out
}

// Unpack decodes t into dst (typically a pointer to a struct) via
// mapstructure, the same way a caller would read RabbitMQ's
// well-known headers (x-death, x-delay, ...) into a typed shape
// instead of walking FieldValue by hand.
func (t FieldTable) Unpack(dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
		TagName:          "amqp",
	})
	if err != nil {
		return errors.Wrap(err, "build FieldTable decoder")
	}
	return dec.Decode(t.ToMap())
}

// Fingerprint hashes t's entries in a stable order so that two tables
// equal as mappings (regardless of the random order Go maps iterate
// in) fingerprint identically. Used by the dump CLI to deduplicate
// repeated identical headers across a long capture.
func (t FieldTable) Fingerprint() uint64 {
	h := xxhash.New()
	for _, name := range t.sortedNames() {
		_, _ = h.WriteString(string(name))
		v := t.entries[name]
		_, _ = h.Write([]byte{byte(v.kind)})
		fingerprintValue(h, v)
	}
	return h.Sum64()
}

func fingerprintValue(h *xxhash.Digest, v FieldValue) {
	switch v.kind {
	case KindFieldTable:
		for _, name := range v.tbl.sortedNames() {
			_, _ = h.WriteString(string(name))
			inner := v.tbl.entries[name]
			_, _ = h.Write([]byte{byte(inner.kind)})
			fingerprintValue(h, inner)
		}
	case KindFieldArray:
		for _, item := range v.arr.items {
			_, _ = h.Write([]byte{byte(item.kind)})
			fingerprintValue(h, item)
		}
	default:
		_, _ = h.WriteString(nativeString(v))
	}
}

func nativeString(v FieldValue) string {
	switch n := v.Native().(type) {
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", n)
	}
}
