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

// Kind identifies the wire tag of a FieldValue. The tag letters here
// follow this library's table exactly, including its deliberate
// inversions of the public AMQP 0-9-1 baseline (I/i, l/L) — interop
// with other implementations requires the same table on both ends.
type Kind byte

const (
	KindBool       Kind = 't'
	KindI8         Kind = 'b'
	KindU8         Kind = 'B'
	KindI16        Kind = 's'
	KindU16        Kind = 'u'
	KindI32        Kind = 'I'
	KindU32        Kind = 'i'
	KindI64        Kind = 'l'
	KindU64        Kind = 'L'
	KindF32        Kind = 'f'
	KindF64        Kind = 'd'
	KindTimestamp  Kind = 'T'
	KindDecimal    Kind = 'D'
	KindLongStr    Kind = 'S'
	KindFieldArray Kind = 'A'
	KindFieldTable Kind = 'F'
	KindBytesArray Kind = 'x'
	KindVoid       Kind = 'V'
)

// FieldValue is the tagged sum type field tables and arrays hold.
// Exactly one of its payload fields is meaningful, selected by Kind.
type FieldValue struct {
	kind Kind
	b    bool
	i8   int8
	u8   uint8
	i16  int16
	u16  uint16
	i32  int32
	u32  uint32
	i64  int64
	u64  uint64
	f32  float32
	f64  float64
	ts   wire.Timestamp
	dec  Decimal
	str  LongStr
	arr  FieldArray
	tbl  FieldTable
}

func (v FieldValue) Kind() Kind { return v.kind }

func FromBool(b bool) FieldValue             { return FieldValue{kind: KindBool, b: b} }
func FromI8(i int8) FieldValue               { return FieldValue{kind: KindI8, i8: i} }
func FromU8(i uint8) FieldValue              { return FieldValue{kind: KindU8, u8: i} }
func FromI16(i int16) FieldValue             { return FieldValue{kind: KindI16, i16: i} }
func FromU16(i uint16) FieldValue            { return FieldValue{kind: KindU16, u16: i} }
func FromI32(i int32) FieldValue             { return FieldValue{kind: KindI32, i32: i} }
func FromU32(i uint32) FieldValue            { return FieldValue{kind: KindU32, u32: i} }
func FromI64(i int64) FieldValue             { return FieldValue{kind: KindI64, i64: i} }
func FromU64(i uint64) FieldValue            { return FieldValue{kind: KindU64, u64: i} }
func FromF32(f float32) FieldValue           { return FieldValue{kind: KindF32, f32: f} }
func FromF64(f float64) FieldValue           { return FieldValue{kind: KindF64, f64: f} }
func FromTimestamp(t wire.Timestamp) FieldValue { return FieldValue{kind: KindTimestamp, ts: t} }
func FromDecimal(d Decimal) FieldValue       { return FieldValue{kind: KindDecimal, dec: d} }
func FromLongStr(s LongStr) FieldValue       { return FieldValue{kind: KindLongStr, str: s} }
func FromBytesArray(s LongStr) FieldValue    { return FieldValue{kind: KindBytesArray, str: s} }
func FromFieldArray(a FieldArray) FieldValue { return FieldValue{kind: KindFieldArray, arr: a} }
func FromFieldTable(t FieldTable) FieldValue { return FieldValue{kind: KindFieldTable, tbl: t} }
func FromVoid() FieldValue                   { return FieldValue{kind: KindVoid} }

func (v FieldValue) AsBool() (bool, bool)             { return v.b, v.kind == KindBool }
func (v FieldValue) AsI8() (int8, bool)               { return v.i8, v.kind == KindI8 }
func (v FieldValue) AsU8() (uint8, bool)              { return v.u8, v.kind == KindU8 }
func (v FieldValue) AsI16() (int16, bool)             { return v.i16, v.kind == KindI16 }
func (v FieldValue) AsU16() (uint16, bool)            { return v.u16, v.kind == KindU16 }
func (v FieldValue) AsI32() (int32, bool)             { return v.i32, v.kind == KindI32 }
func (v FieldValue) AsU32() (uint32, bool)            { return v.u32, v.kind == KindU32 }
func (v FieldValue) AsI64() (int64, bool)             { return v.i64, v.kind == KindI64 }
func (v FieldValue) AsU64() (uint64, bool)            { return v.u64, v.kind == KindU64 }
func (v FieldValue) AsF32() (float32, bool)           { return v.f32, v.kind == KindF32 }
func (v FieldValue) AsF64() (float64, bool)           { return v.f64, v.kind == KindF64 }
func (v FieldValue) AsTimestamp() (wire.Timestamp, bool) { return v.ts, v.kind == KindTimestamp }
func (v FieldValue) AsDecimal() (Decimal, bool)       { return v.dec, v.kind == KindDecimal }
func (v FieldValue) AsLongStr() (LongStr, bool)       { return v.str, v.kind == KindLongStr }
func (v FieldValue) AsBytesArray() (LongStr, bool)    { return v.str, v.kind == KindBytesArray }
func (v FieldValue) AsFieldArray() (FieldArray, bool) { return v.arr, v.kind == KindFieldArray }
func (v FieldValue) AsFieldTable() (FieldTable, bool) { return v.tbl, v.kind == KindFieldTable }

// Native converts v to a plain Go value suitable for mapstructure
// decoding or generic inspection: bool, the matching int/uint/float
// kind, a Decimal, a string (LongStr and BytesArray both, since they
// share a wire form), []any for FieldArray, map[string]any for
// FieldTable, or nil for Void.
func (v FieldValue) Native() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindI8:
		return v.i8
	case KindU8:
		return v.u8
	case KindI16:
		return v.i16
	case KindU16:
		return v.u16
	case KindI32:
		return v.i32
	case KindU32:
		return v.u32
	case KindI64:
		return v.i64
	case KindU64:
		return v.u64
	case KindF32:
		return v.f32
	case KindF64:
		return v.f64
	case KindTimestamp:
		return v.ts
	case KindDecimal:
		return v.dec
	case KindLongStr, KindBytesArray:
		return string(v.str)
	case KindFieldArray:
		out := make([]any, len(v.arr.items))
		for i, item := range v.arr.items {
			out[i] = item.Native()
		}
		return out
	case KindFieldTable:
		return v.tbl.ToMap()
	case KindVoid:
		return nil
	default:
		return nil
	}
}

// Encode writes the tag byte followed by the kind-specific payload.
func (v FieldValue) Encode(out []byte) []byte {
	out = append(out, byte(v.kind))
	switch v.kind {
	case KindBool:
		out = wire.EncodeBool(out, v.b)
	case KindI8:
		out = wire.EncodeI8(out, v.i8)
	case KindU8:
		out = wire.EncodeU8(out, v.u8)
	case KindI16:
		out = wire.EncodeI16(out, v.i16)
	case KindU16:
		out = wire.EncodeU16(out, v.u16)
	case KindI32:
		out = wire.EncodeI32(out, v.i32)
	case KindU32:
		out = wire.EncodeU32(out, v.u32)
	case KindI64:
		out = wire.EncodeI64(out, v.i64)
	case KindU64:
		out = wire.EncodeU64(out, v.u64)
	case KindF32:
		out = wire.EncodeF32(out, v.f32)
	case KindF64:
		out = wire.EncodeF64(out, v.f64)
	case KindTimestamp:
		out = wire.EncodeTimestamp(out, v.ts)
	case KindDecimal:
		out = v.dec.Encode(out)
	case KindLongStr, KindBytesArray:
		out = v.str.Encode(out)
	case KindFieldArray:
		out = v.arr.Encode(out)
	case KindFieldTable:
		out = v.tbl.Encode(out)
	case KindVoid:
		// no payload
	}
	return out
}

// DecodeFieldValue reads one tag byte and dispatches to the matching
// payload decoder. An unrecognized tag is a syntax error: no amount
// of additional data makes an unknown tag byte valid.
func DecodeFieldValue(buf []byte) (remaining []byte, v FieldValue, err error) {
	remaining, tagB, err := wire.TakeBytes(buf, 1)
	if err != nil {
		return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue tag")
	}
	tag := Kind(tagB[0])
	switch tag {
	case KindBool:
		r, b, err := wire.DecodeBool(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue bool")
		}
		return r, FromBool(b), nil
	case KindI8:
		r, i, err := wire.DecodeI8(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue i8")
		}
		return r, FromI8(i), nil
	case KindU8:
		r, i, err := wire.DecodeU8(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue u8")
		}
		return r, FromU8(i), nil
	case KindI16:
		r, i, err := wire.DecodeI16(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue i16")
		}
		return r, FromI16(i), nil
	case KindU16:
		r, i, err := wire.DecodeU16(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue u16")
		}
		return r, FromU16(i), nil
	case KindI32:
		r, i, err := wire.DecodeI32(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue i32")
		}
		return r, FromI32(i), nil
	case KindU32:
		r, i, err := wire.DecodeU32(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue u32")
		}
		return r, FromU32(i), nil
	case KindI64:
		r, i, err := wire.DecodeI64(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue i64")
		}
		return r, FromI64(i), nil
	case KindU64:
		r, i, err := wire.DecodeU64(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue u64")
		}
		return r, FromU64(i), nil
	case KindF32:
		r, f, err := wire.DecodeF32(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue f32")
		}
		return r, FromF32(f), nil
	case KindF64:
		r, f, err := wire.DecodeF64(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue f64")
		}
		return r, FromF64(f), nil
	case KindTimestamp:
		r, t, err := wire.DecodeTimestamp(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue timestamp")
		}
		return r, FromTimestamp(t), nil
	case KindDecimal:
		r, d, err := DecodeDecimal(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue decimal")
		}
		return r, FromDecimal(d), nil
	case KindLongStr:
		r, s, err := DecodeLongStr(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue long string")
		}
		return r, FromLongStr(s), nil
	case KindBytesArray:
		r, s, err := DecodeLongStr(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue bytes array")
		}
		return r, FromBytesArray(s), nil
	case KindFieldArray:
		r, a, err := DecodeFieldArray(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue field array")
		}
		return r, FromFieldArray(a), nil
	case KindFieldTable:
		r, t, err := DecodeFieldTable(remaining)
		if err != nil {
			return buf, FieldValue{}, errors.Wrap(err, "decode FieldValue field table")
		}
		return r, FromFieldTable(t), nil
	case KindVoid:
		return remaining, FromVoid(), nil
	default:
		return buf, FieldValue{}, wire.NewSyntaxError("unknown FieldValue tag: %q", byte(tag))
	}
}
