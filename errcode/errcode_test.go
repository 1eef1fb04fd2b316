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

package errcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameResolvesKnownCodes(t *testing.T) {
	assert.Equal(t, "REPLY_SUCCESS", Name(200))
	assert.Equal(t, "CHANNEL_ERROR", Name(uint16(ChannelError)))
	assert.Equal(t, "NOT_FOUND", Name(uint16(NotFound)))
}

func TestNameUnknownCodeIsUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", Name(9999))
}
