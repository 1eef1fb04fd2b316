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

package wire

import "encoding/binary"

// ReserveU32Length appends four zero bytes as a placeholder for a
// length prefix to be patched in later by PatchU32Length, and returns
// the offset the placeholder starts at. This is the reserve half of
// the two-pass strategy FieldArray and FieldTable use: the outer
// length must include the full closure of any nested table/array
// lengths, which isn't known until the body has been written.
func ReserveU32Length(out []byte) (next []byte, mark int) {
	mark = len(out)
	return append(out, 0, 0, 0, 0), mark
}

// PatchU32Length overwrites the placeholder reserved at mark with the
// big-endian byte count of everything written to out since.
func PatchU32Length(out []byte, mark int) {
	n := len(out) - mark - 4
	binary.BigEndian.PutUint32(out[mark:mark+4], uint32(n))
}
