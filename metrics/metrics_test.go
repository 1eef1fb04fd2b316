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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFramesDecodedCountsByType(t *testing.T) {
	before := testutil.ToFloat64(FramesDecoded.WithLabelValues("METHOD"))
	FramesDecoded.WithLabelValues("METHOD").Inc()
	after := testutil.ToFloat64(FramesDecoded.WithLabelValues("METHOD"))
	assert.Equal(t, before+1, after)
}

func TestDecodeErrorsCountsByKind(t *testing.T) {
	before := testutil.ToFloat64(DecodeErrors.WithLabelValues("syntax"))
	DecodeErrors.WithLabelValues("syntax").Inc()
	after := testutil.ToFloat64(DecodeErrors.WithLabelValues("syntax"))
	assert.Equal(t, before+1, after)
}

func TestBytesProcessedAccumulates(t *testing.T) {
	before := testutil.ToFloat64(BytesProcessed)
	BytesProcessed.Add(128)
	after := testutil.ToFloat64(BytesProcessed)
	assert.Equal(t, before+128, after)
}
