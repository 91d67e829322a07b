/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/valpere/civiclink/internal/config"
	"github.com/valpere/civiclink/internal/logger"
)

var version = "0.1.0"

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	appLog    *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "civiclink",
	Short: "Civic information translation service",
	Long: `CivicLink translates civic information (voting guides, public notices,
service descriptions) into the languages spoken in the community.

Long texts are split at sentence boundaries, translated chunk by chunk and
reassembled. A chunk that fails to translate keeps its original text, so a
partial translation is always returned.

Supported providers: google, mymemory, amazon

Use "civiclink translate --help" for translation options.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Log.Verbose = verbose
		}
		appConfig = cfg
		appLog = logger.New(os.Stderr, cfg.Log.Verbose)
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (YAML, TOML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output")
}
