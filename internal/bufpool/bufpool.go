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

// Package bufpool pools the growable buffers the dump command renders
// each capture file's decoded output into, so every concurrent worker
// fills its own buffer and hands it back once the output is written.
// The frame and method encoders append to plain []byte and do not use
// it.
package bufpool

import "github.com/valyala/bytebufferpool"

var pool bytebufferpool.Pool

// Get returns a zero-length buffer from the pool.
func Get() *bytebufferpool.ByteBuffer {
	return pool.Get()
}

// Put returns buf to the pool for reuse. Callers must not touch buf
// after calling Put.
func Put(buf *bytebufferpool.ByteBuffer) {
	pool.Put(buf)
}
