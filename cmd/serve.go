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
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/packetd/amqpcodec/common"
	"github.com/packetd/amqpcodec/internal/sigs"
	"github.com/packetd/amqpcodec/metrics"
	"github.com/packetd/amqpcodec/server"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a metrics and health sidecar for a dump pipeline",
	Run: func(cmd *cobra.Command, args []string) {
		srv := server.New(server.Config{Address: serveAddress})
		srv.RegisterGetRoute("/metrics", promhttp.Handler().ServeHTTP)
		srv.RegisterGetRoute("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		stopUptime := make(chan struct{})
		go reportUptime(stopUptime)
		defer close(stopUptime)

		select {
		case err := <-errCh:
			fmt.Fprintf(os.Stderr, "serve failed: %v\n", err)
			os.Exit(1)
		case <-sigs.Terminate():
		}
	},
	Example: "# amqpcodec serve --address :9090",
}

// reportUptime sets metrics.Uptime to the process's age in seconds every
// tick, until stop is closed.
func reportUptime(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			metrics.Uptime.Set(float64(time.Now().Unix() - common.Started()))
		case <-stop:
			return
		}
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", ":9090", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}
