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

// Package metrics exposes the Prometheus counters the CLI's dump and
// serve commands maintain while driving the frame decoder over a live
// or captured byte stream. The codec packages themselves never import
// this package: counting belongs to the orchestration layer, not to
// the pure byte-slice-in, byte-slice-out decoders.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/packetd/amqpcodec/common"
)

var (
	// FramesDecoded counts successfully decoded frames by their type
	// name (METHOD, HEADER, BODY, HEARTBEAT).
	FramesDecoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "frames_decoded_total",
			Help:      "Frames decoded total",
		},
		[]string{"type"},
	)

	// DecodeErrors counts fatal decode errors by kind. wire.ErrIncomplete
	// is never counted here: it isn't an error, only a request for more
	// bytes.
	DecodeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "decode_errors_total",
			Help:      "Fatal decode errors total",
		},
		[]string{"kind"},
	)

	// BytesProcessed counts the bytes fed into the decoder, regardless
	// of whether they ultimately formed a complete frame.
	BytesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: common.App,
			Name:      "bytes_processed_total",
			Help:      "Bytes processed total",
		},
	)

	// Uptime reports seconds since process start. The serve command
	// refreshes it on a timer; callers that never run a server simply
	// never update it.
	Uptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: common.App,
			Name:      "uptime_seconds",
			Help:      "Seconds since process start",
		},
	)
)
