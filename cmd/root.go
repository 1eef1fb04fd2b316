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

// Package cmd wires the amqpcodec binary's cobra subcommands together.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/packetd/amqpcodec/common"
	"github.com/packetd/amqpcodec/confengine"
	"github.com/packetd/amqpcodec/logger"
)

// frameSettings bounds the frame reader the way a negotiated
// frame_max would on a real connection.
type frameSettings struct {
	MaxSize int `config:"max_size"`
}

// outputSettings picks the dump command's rendering format.
type outputSettings struct {
	Format string `config:"format"`
}

// dumpSettings is the shape of the optional --config file: knobs for
// the CLI tooling only, never for the core codec packages.
type dumpSettings struct {
	Frame  frameSettings  `config:"frame"`
	Log    logger.Options `config:"log"`
	Output outputSettings `config:"output"`
}

var (
	configPath string
	settings   = dumpSettings{Frame: frameSettings{MaxSize: common.DefaultMaxFrameSize}}
)

var rootCmd = &cobra.Command{
	Use:   common.App,
	Short: "Decode and inspect AMQP 0-9-1 wire traffic",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		cfg, err := confengine.LoadConfigPath(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Unpack(&settings); err != nil {
			return fmt.Errorf("failed to unpack config: %w", err)
		}
		if settings.Log.Stdout || settings.Log.Filename != "" {
			logger.SetOptions(settings.Log)
		}
		return nil
	},
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Optional configuration file path")
}
