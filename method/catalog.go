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

import "github.com/packetd/amqpcodec/wire"

// Arguments is implemented by every concrete METHOD-frame argument
// struct in this package.
type Arguments interface {
	Class() Class
	MethodID() uint16
	Encode(out []byte) []byte
}

type argDecoder func(buf []byte) (remaining []byte, args Arguments, err error)

// decoders and methodNames are populated by each per-class file's
// init(), keyed by (class, method id) exactly as the wire carries it
// — including Exchange.UnbindOk's asymmetric id 51.
var (
	decoders    = map[classMethod]argDecoder{}
	methodNames = map[classMethod]string{}
)

func register(c Class, methodID uint16, name string, dec argDecoder) {
	key := classMethod{Class: c, MethodID: methodID}
	decoders[key] = dec
	methodNames[key] = name
}

// MethodName resolves a (class, method id) pair to its catalog name,
// or "" if the pair is not registered.
func MethodName(c Class, methodID uint16) string {
	return methodNames[classMethod{Class: c, MethodID: methodID}]
}

// DecodeArguments dispatches a METHOD frame payload (after the
// class_id/method_id header has already been consumed) to the
// concrete argument decoder the catalog has registered for
// (class, methodID). An unregistered pair is a syntax error: the
// class may be known while the method id is not, or the class itself
// may be unrecognized — both are equally fatal at this boundary.
func DecodeArguments(c Class, methodID uint16, buf []byte) (remaining []byte, args Arguments, err error) {
	dec, ok := decoders[classMethod{Class: c, MethodID: methodID}]
	if !ok {
		return buf, nil, wire.NewSyntaxError("unknown method %d for class %s (%d)", methodID, c, uint16(c))
	}
	return dec(buf)
}
