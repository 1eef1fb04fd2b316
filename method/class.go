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

// Package method holds the AMQP 0-9-1 (class, method) catalog: every
// concrete argument and property structure, their wire field order,
// and the registry that dispatches a decoded (class_id, method_id)
// pair to the right decoder.
package method

// Class is the 16-bit class identifier carried by METHOD and HEADER
// frames.
type Class uint16

const (
	ClassConnection Class = 10
	ClassChannel    Class = 20
	ClassAccess     Class = 30
	ClassExchange   Class = 40
	ClassQueue      Class = 50
	ClassBasic      Class = 60
	ClassConfirm    Class = 85
	ClassTx         Class = 90
	ClassUnknown    Class = 0xffff
)

var classNames = map[Class]string{
	ClassConnection: "connection",
	ClassChannel:    "channel",
	ClassAccess:     "access",
	ClassExchange:   "exchange",
	ClassQueue:      "queue",
	ClassBasic:      "basic",
	ClassConfirm:    "confirm",
	ClassTx:         "tx",
}

// ClassFromID maps a wire class id to its Class, or ClassUnknown if
// the id isn't one of the eight recognized classes.
func ClassFromID(id uint16) Class {
	c := Class(id)
	if _, ok := classNames[c]; ok {
		return c
	}
	return ClassUnknown
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// classMethod is a (class, method) pair used as a registry key.
type classMethod struct {
	Class    Class
	MethodID uint16
}
