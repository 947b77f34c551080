package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/hairizuan-noorazman/e2egen/logger"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reports and artifacts over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.NewLogrusLogger(cfg.Log.Level)

			if cfg.Output.StorageType != "local" {
				return fmt.Errorf("serve requires local output storage")
			}

			r := mux.NewRouter()
			r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
			}).Methods(http.MethodGet)
			r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Output.BaseDir)))

			srv := &http.Server{
				Addr:         addr,
				Handler:      r,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
			}

			go func() {
				log.Info(ctx, "serving reports", logger.Fields{
					"addr": addr,
					"dir":  cfg.Output.BaseDir,
				})
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error(ctx, "server error", logger.Fields{"error": err.Error()})
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8780", "listen address")
	return cmd
}
