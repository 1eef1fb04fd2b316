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

// Package server is the small HTTP sidecar the "serve" command runs:
// a mux.Router exposing Prometheus metrics and a liveness probe for
// whatever process is tailing captured AMQP frames into the decoder.
package server

import (
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/packetd/amqpcodec/logger"
)

type Config struct {
	Address string        `config:"address"`
	Timeout time.Duration `config:"timeout"`
}

type Server struct {
	config Config
	router *mux.Router
	server *http.Server
}

// New builds a Server. ListenAndServe must be called for it to accept
// connections.
func New(conf Config) *Server {
	if conf.Timeout == 0 {
		conf.Timeout = 30 * time.Second
	}
	router := mux.NewRouter()
	return &Server{
		config: conf,
		router: router,
		server: &http.Server{
			Handler:      router,
			ReadTimeout:  conf.Timeout,
			WriteTimeout: conf.Timeout,
		},
	}
}

func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	logger.Infof("server listening on %s", s.config.Address)
	return s.server.Serve(l)
}

func (s *Server) RegisterGetRoute(path string, f http.HandlerFunc) {
	s.router.Methods(http.MethodGet).Path(path).HandlerFunc(f)
}
