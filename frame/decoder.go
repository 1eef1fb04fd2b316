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

package frame

import (
	"github.com/packetd/amqpcodec/internal/bufbytes"
)

// Decoder turns a byte stream that may arrive in arbitrarily small or
// large chunks into a sequence of Tokens. It carries exactly one piece
// of cross-call state: whether the protocol header has been received
// yet. Everything else is re-derived from the buffered bytes on every
// call.
type Decoder struct {
	buf            *bufbytes.Bytes
	headerReceived bool
	maxFrameSize   int
}

// NewDecoder returns a Decoder ready to receive the protocol header as
// its first token, with no cap on frame payload length.
func NewDecoder() *Decoder {
	return &Decoder{buf: bufbytes.New(4096)}
}

// NewDecoderMaxSize is like NewDecoder but rejects any frame whose
// declared payload length exceeds maxSize, matching a connection's
// negotiated frame_max.
func NewDecoderMaxSize(maxSize int) *Decoder {
	return &Decoder{buf: bufbytes.New(4096), maxFrameSize: maxSize}
}

// Write feeds newly-arrived bytes into the decoder's accumulator. It
// never fails: a write can't be invalid, only what's later decoded
// from it.
func (d *Decoder) Write(p []byte) {
	d.buf.Write(p)
}

// Token is whatever Next produced: exactly one of Header or
// Frame is non-nil.
type Token struct {
	Header *ProtocolHeader
	Frame  *Frame
}

// Next attempts to decode one token from the buffered bytes. It
// returns wire.ErrIncomplete, leaving every buffered byte in place,
// when fewer bytes are available than the next token requires. A
// non-nil, non-incomplete error is fatal: the stream can never
// resynchronize and the connection must be torn down.
func (d *Decoder) Next() (Token, error) {
	if !d.headerReceived {
		buf, header, err := DecodeProtocolHeader(d.buf.Bytes())
		if err != nil {
			return Token{}, err
		}
		d.buf.Advance(len(d.buf.Bytes()) - len(buf))
		d.headerReceived = true
		h := header
		return Token{Header: &h}, nil
	}

	remaining, fr, err := DecodeFrameMaxSize(d.buf.Bytes(), d.maxFrameSize)
	if err != nil {
		return Token{}, err
	}
	d.buf.Advance(len(d.buf.Bytes()) - len(remaining))
	return Token{Frame: fr}, nil
}
