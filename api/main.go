// @title Multipart Upload
// @version 0.1
// @description Stores uploaded files under generated names.

// @host localhost:8080
// @BasePath /
// @schemes http

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "tush00nka/multipart_upload/docs"
	"tush00nka/multipart_upload/internal/app"
	"tush00nka/multipart_upload/internal/config"
	"tush00nka/multipart_upload/internal/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "uploader",
		Short:        "Multipart file upload service",
		Long:         `Accepts multipart uploads on /upload/single-file and /upload/multiple-file and stores each file under a generated name.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			zap.ReplaceGlobals(logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, cfg, logger.Sugar())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", ".env", "config file, missing file is ignored")
	flags.StringP("port", "p", "", "listen port (SERVER_PORT)")
	flags.String("storage-dir", "", "base directory for local storage (STORAGE_DIR)")
	flags.String("storage-backend", "", "local, s3 or minio (STORAGE_BACKEND)")
	flags.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")

	return cmd
}
