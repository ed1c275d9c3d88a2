package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/amortize/internal/cache"
	"github.com/iwvelando/amortize/internal/calculator"
	"github.com/iwvelando/amortize/internal/config"
	"github.com/iwvelando/amortize/internal/watch"
	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute schedules whenever the configuration file changes",
	Long: `Print the schedules for the configuration file, then print them again
each time the file is saved. Several saves in quick succession trigger
a single recomputation.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addOutputFormatFlag(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "delay after the last change before recomputing (default from config, "+constants.DefaultDebounce.String()+")")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	conf, err := config.LoadConfiguration(cfgFile)
	if err != nil {
		printError(cmd, "configuration", err)
		return err
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		printError(cmd, "logger", err)
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Unchanged loans are served from memory between edits.
	calc := calculator.New(logger, cache.NewMemoryCache(constants.DefaultCacheTTL))
	out := cmd.OutOrStdout()

	recompute := func(ctx context.Context, conf *config.Configuration) {
		outputFormat, err := resolveOutputFormat(conf)
		if err != nil {
			logger.Error(err.Error(), zap.String("op", "cmd.watch"))
			return
		}
		// Errors are logged by renderLoans; keep watching for the next edit.
		_ = renderLoans(ctx, logger, calc, conf, outputFormat, out)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recompute(ctx, conf)

	debounce := conf.Watch.Debounce
	if watchDebounce > 0 {
		debounce = watchDebounce
	}

	watcher := watch.New(logger, cfgFile, debounce, func(ctx context.Context) {
		updated, err := config.LoadConfiguration(cfgFile)
		if err != nil {
			logger.Error("failed to reload configuration",
				zap.String("op", "cmd.watch"),
				zap.Error(err),
			)
			return
		}
		recompute(ctx, updated)
	})
	if err := watcher.Start(ctx); err != nil {
		logger.Error("failed to watch configuration", zap.String("op", "cmd.watch"), zap.Error(err))
		return err
	}

	logger.Info("watching configuration",
		zap.String("op", "cmd.watch"),
		zap.String("path", cfgFile),
		zap.Duration("debounce", debounce),
	)

	<-watcher.Done()
	return nil
}
