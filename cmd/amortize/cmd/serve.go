package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/amortize/internal/cache"
	"github.com/iwvelando/amortize/internal/calculator"
	"github.com/iwvelando/amortize/internal/server"
	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serverConfigFile string
	serverAddress    string
	maxUploadSize    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the amortization HTTP API",
	Long: `Serve the amortization API over HTTP.

Endpoints:
  GET  /api/version
  GET  /api/frequencies[?payment=N]
  GET  /api/defaults
  POST /api/schedule[?format=json|csv|yaml|pretty]
  POST /api/config   (multipart upload, field "file")`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serverConfigFile, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&serverAddress, "address", "", "listen address override (e.g. :8080)")
	serveCmd.Flags().StringVar(&maxUploadSize, "max-upload-size", "", "maximum request size override (e.g. 256K, 1M)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := server.LoadConfig(serverConfigFile)
	if err != nil {
		printError(cmd, "server configuration", err)
		return err
	}
	if serverAddress != "" {
		cfg.Address = serverAddress
	}
	if maxUploadSize != "" {
		size, err := server.ParseSize(maxUploadSize)
		if err != nil {
			printError(cmd, "max upload size", err)
			return err
		}
		cfg.SetUploadSizeBytes(size)
	}

	logger, err := initializeLogger(cfg.Logging, logLevel)
	if err != nil {
		printError(cmd, "logger", err)
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	store, err := cache.New(cfg.Cache)
	if err != nil {
		logger.Error("failed to create cache", zap.String("op", "cmd.serve"), zap.Error(err))
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close cache", zap.String("op", "cmd.serve"), zap.Error(err))
		}
	}()

	logger.Info("starting server",
		zap.String("op", "cmd.serve"),
		zap.String("address", cfg.Address),
		zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
		zap.String("cache", cfg.Cache.Backend),
		zap.String("version", Version),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := server.NewHandler(logger, calculator.New(logger, store), cfg, Version)
	if err := server.ListenAndRun(ctx, logger, cfg.Address, handler, constants.DefaultShutdownTimeout); err != nil {
		logger.Error("server failed", zap.String("op", "cmd.serve"), zap.Error(err))
		return err
	}

	logger.Info("server stopped", zap.String("op", "cmd.serve"))
	return nil
}
