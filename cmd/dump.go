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

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/packetd/amqpcodec/common"
	"github.com/packetd/amqpcodec/frame"
	"github.com/packetd/amqpcodec/internal/bufpool"
	"github.com/packetd/amqpcodec/logger"
	"github.com/packetd/amqpcodec/metrics"
	"github.com/packetd/amqpcodec/method"
	"github.com/packetd/amqpcodec/wire"
)

var dumpJSON bool
var dumpTraceID string

var dumpCmd = &cobra.Command{
	Use:   "dump <file> [file...]",
	Short: "Decode one or more raw AMQP 0-9-1 byte captures and print their frames",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asJSON := dumpJSON || settings.Output.Format == "json"
		if err := dumpFiles(args, asJSON, dumpTraceID); err != nil {
			fmt.Fprintf(os.Stderr, "dump failed: %v\n", err)
			os.Exit(1)
		}
	},
	Example: "# amqpcodec dump capture.bin other.bin --json --trace-id 4bf92f3577b34da6a3ce929d0e0e4736",
}

// dumpFiles decodes every path concurrently, bounded to common.Concurrency()
// workers, and writes each file's output to stdout in argument order once
// every worker has finished — a bad capture in the middle of a batch
// doesn't stop the rest from being dumped, and concurrent workers never
// interleave one another's lines because each renders into its own
// pooled buffer first.
func dumpFiles(paths []string, asJSON bool, traceIDHex string) error {
	type outcome struct {
		buf *bytebufferpool.ByteBuffer
		err error
	}
	results := make([]outcome, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := common.Concurrency()
	if workers > len(paths) {
		workers = len(paths)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				buf := bufpool.Get()
				data, err := os.ReadFile(paths[i])
				if err != nil {
					results[i] = outcome{err: fmt.Errorf("%s: %w", paths[i], err)}
					bufpool.Put(buf)
					continue
				}
				if err := runDump(data, asJSON, traceIDHex, buf); err != nil {
					results[i] = outcome{err: fmt.Errorf("%s: %w", paths[i], err)}
					bufpool.Put(buf)
					continue
				}
				results[i] = outcome{buf: buf}
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var errs error
	for _, res := range results {
		if res.err != nil {
			errs = multierror.Append(errs, res.err)
			continue
		}
		os.Stdout.Write(res.buf.Bytes())
		bufpool.Put(res.buf)
	}
	return errs
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "Print decoded frames as JSON")
	dumpCmd.Flags().StringVar(&dumpTraceID, "trace-id", "", "W3C trace id (32 hex chars) to correlate this dump with an upstream trace")
	rootCmd.AddCommand(dumpCmd)
}

// frameRecord is the text/JSON-rendered shape of one decoded frame,
// tagged with the capture's correlation id for cross-frame log
// correlation.
type frameRecord struct {
	Correlation string `json:"correlation"`
	Channel     uint16 `json:"channel"`
	Type        string `json:"type"`
	Detail      string `json:"detail,omitempty"`
}

// correlationFromTraceID parses an inbound W3C trace id the same way
// tracekit parses the traceparent header, so a dump triggered by an
// upstream span carries that span's id instead of a fresh one.
func correlationFromTraceID(hex string) (string, bool) {
	if hex == "" {
		return "", false
	}
	id, err := trace.TraceIDFromHex(hex)
	if err != nil || !id.IsValid() {
		return "", false
	}
	return id.String(), true
}

func runDump(data []byte, asJSON bool, traceIDHex string, w io.Writer) error {
	correlation, fromTrace := correlationFromTraceID(traceIDHex)
	if !fromTrace {
		correlation = uuid.New().String()
	}

	tracer := otel.GetTracerProvider().Tracer("amqpcodec/dump")
	_, span := tracer.Start(context.Background(), "amqpcodec.dump",
		trace.WithAttributes(
			attribute.String("amqpcodec.correlation", correlation),
			attribute.Int("amqpcodec.capture_bytes", len(data)),
			attribute.Bool("amqpcodec.correlation_from_trace", fromTrace),
		),
	)
	defer span.End()

	dec := frame.NewDecoderMaxSize(settings.Frame.MaxSize)
	dec.Write(data)
	metrics.BytesProcessed.Add(float64(len(data)))

	var lastHeaderFingerprint uint64
	var haveLastHeaderFingerprint bool
	var frameCount, headerCount int

	for {
		tok, err := dec.Next()

		if err != nil {
			if wire.IsIncomplete(err) {
				break
			}
			logger.Warnf("syntax error while dumping capture (correlation=%s): %v", correlation, err)
			metrics.DecodeErrors.WithLabelValues(errKind(err)).Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		if tok.Header != nil {
			headerCount++
			printRecord(w, frameRecord{
				Correlation: correlation,
				Type:        "PROTOCOL-HEADER",
				Detail:      fmt.Sprintf("%d-%d-%d-%d", tok.Header.MajorID, tok.Header.MinorID, tok.Header.MajorVersion, tok.Header.MinorVersion),
			}, asJSON)
			continue
		}

		fr := tok.Frame
		frameCount++
		metrics.FramesDecoded.WithLabelValues(fr.Type.String()).Inc()

		rec := frameRecord{
			Correlation: correlation,
			Channel:     fr.Channel,
			Type:        fr.Type.String(),
		}

		switch p := fr.Payload.(type) {
		case frame.MethodPayload:
			rec.Detail = fmt.Sprintf("%s.%s", p.Class, method.MethodName(p.Class, p.MethodID))
		case frame.ContentHeaderPayload:
			rec.Detail = headerDetail(p, &lastHeaderFingerprint, &haveLastHeaderFingerprint)
		case frame.ContentBodyPayload:
			rec.Detail = fmt.Sprintf("%d bytes", len(p.Data))
		}

		printRecord(w, rec, asJSON)
	}

	span.SetAttributes(
		attribute.Int("amqpcodec.frames_decoded", frameCount),
		attribute.Int("amqpcodec.protocol_headers", headerCount),
	)
	span.SetStatus(codes.Ok, "")
	return nil
}

func headerDetail(p frame.ContentHeaderPayload, lastFingerprint *uint64, have *bool) string {
	basic, ok := p.Properties.(method.BasicProperties)
	if !ok {
		return fmt.Sprintf("body_size=%d", p.BodySize)
	}
	fp := basic.Headers.Fingerprint()
	if *have && fp == *lastFingerprint {
		return fmt.Sprintf("body_size=%d headers=<unchanged>", p.BodySize)
	}
	*lastFingerprint = fp
	*have = true
	return fmt.Sprintf("body_size=%d headers=%v", p.BodySize, basic.Headers.ToMap())
}

func printRecord(w io.Writer, rec frameRecord, asJSON bool) {
	if asJSON {
		b, err := json.Marshal(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to marshal record: %v\n", err)
			return
		}
		fmt.Fprintln(w, string(b))
		return
	}
	fmt.Fprintf(w, "[%s] channel=%d %s %s\n", rec.Correlation, rec.Channel, rec.Type, rec.Detail)
}

func errKind(err error) string {
	if wire.IsSyntaxError(err) {
		return "syntax"
	}
	return "other"
}
