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
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/valpere/civiclink/internal/httpapi"
	"github.com/valpere/civiclink/internal/orchestrator"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP translation API",
	Long: `Serve the translation API over HTTP.

Endpoints:
  POST /api/translate             translate text
  POST /api/translate-text        alias of /api/translate
  POST /api/translate-civic-term  translate a single civic term
  GET  /api/languages             civic language catalogue
  GET  /api/translations          translation history (when enabled)
  GET  /api/translations/stats    history statistics (when enabled)
  GET  /health                    health check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *appConfig
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		if !cfg.Log.Verbose {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx := cmd.Context()
		orch, svc, err := orchestrator.NewFromConfig(ctx, &cfg, appLog)
		if err != nil {
			return err
		}
		defer closeService(svc)

		var history httpapi.HistoryStore
		if cfg.Store.Enabled {
			db, err := openHistory(cfg.Store.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			history = db
		}

		srv := &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      httpapi.New(orch, history, appLog).Handler(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			appLog.Info("Listening on %s (provider: %s)", cfg.Server.Addr, svc.Name())
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		appLog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
}
