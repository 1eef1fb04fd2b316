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

// flags8 packs up to eight booleans into a single wire byte, bit 0
// (value 1) being the first field listed for a given method. Unused
// high bits are ignored on decode and always written zero on encode.
type flags8 byte

func (f flags8) has(bit uint) bool {
	return f&(1<<bit) != 0
}

func setFlag(f flags8, bit uint, v bool) flags8 {
	if v {
		return f | (1 << bit)
	}
	return f &^ (1 << bit)
}
