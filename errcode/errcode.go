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

// Package errcode holds the AMQP 0-9-1 reply-code registry. These are
// values the wire carries in Connection.Close/Channel.Close arguments
// and that a caller interpreting a decoded frame will want resolved
// to a symbolic name; the codec itself never emits or inspects them.
package errcode

// Code is a 16-bit AMQP reply code.
type Code uint16

const (
	ReplySuccess      Code = 200
	ContentTooLarge   Code = 311
	NoConsumers       Code = 313
	ConnectionForced  Code = 320
	InvalidPath       Code = 402
	AccessRefused     Code = 403
	NotFound          Code = 404
	ResourceLocked    Code = 405
	PreconditionFail  Code = 406
	FrameError        Code = 501
	SyntaxError       Code = 502
	CommandInvalid    Code = 503
	ChannelError      Code = 504
	UnexpectedFrame   Code = 505
	ResourceError     Code = 506
	NotAllowed        Code = 530
	NotImplemented    Code = 540
	InternalError     Code = 541
)

var names = map[Code]string{
	ReplySuccess:     "REPLY_SUCCESS",
	ContentTooLarge:  "CONTENT_TOO_LARGE",
	NoConsumers:      "NO_CONSUMERS",
	ConnectionForced: "CONNECTION_FORCED",
	InvalidPath:      "INVALID_PATH",
	AccessRefused:    "ACCESS_REFUSED",
	NotFound:         "NOT_FOUND",
	ResourceLocked:   "RESOURCE_LOCKED",
	PreconditionFail: "PRECONDITION_FAILED",
	FrameError:       "FRAME_ERROR",
	SyntaxError:      "SYNTAX_ERROR",
	CommandInvalid:   "COMMAND_INVALID",
	ChannelError:     "CHANNEL_ERROR",
	UnexpectedFrame:  "UNEXPECTED_FRAME",
	ResourceError:    "RESOURCE_ERROR",
	NotAllowed:       "NOT_ALLOWED",
	NotImplemented:   "NOT_IMPLEMENTED",
	InternalError:    "INTERNAL_ERROR",
}

// Name resolves code to its symbolic name, or "UNKNOWN" if code isn't
// in the registry — broker extensions are free to use reply codes
// this library doesn't know about.
func Name(code uint16) string {
	if name, ok := names[Code(code)]; ok {
		return name
	}
	return "UNKNOWN"
}
