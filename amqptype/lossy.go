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

// Package amqptype implements the composite AMQP 0-9-1 type system:
// length-prefixed strings, the tagged FieldValue sum type, and the
// recursive FieldArray/FieldTable containers built from it.
package amqptype

import "strings"

// lossyUTF8 mirrors Rust's String::from_utf8_lossy: invalid byte
// sequences become the replacement character rather than an error.
// AMQP declares field strings byte-opaque with UTF-8 a convention
// only, so rejecting non-UTF-8 bytes would drop otherwise-valid
// interop traffic.
func lossyUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
