package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/philipparndt/gochibi/internal/config"
	"github.com/philipparndt/gochibi/internal/logger"
	"github.com/philipparndt/gochibi/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-export the parts whenever the config file changes",
	Long: `Export once, then watch the config file and regenerate every part
each time it is saved. Flags keep overriding the file on every reload.
Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Wait this long after the last change before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := config.ConfigPath(cmd.Flags())
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return fmt.Errorf("no config file to watch; create %s or pass --config", config.FileName)
	}
	if err := cmd.Flags().Set(config.FlagConfig, path); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	log := logger.Log

	if _, err := generateAndExport(ctx, cfg); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(watchDebounce, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{path}, func(string) {
		reload(ctx, cmd)
	})
	if err != nil {
		return err
	}

	log.Info("Watching for changes", zap.String("config", path))
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// reload keeps watching after a bad edit; the error is logged and the next
// save gets another chance. Logging stays as configured at startup.
func reload(ctx context.Context, cmd *cobra.Command) {
	cfg, err := config.Resolve(cmd.Flags())
	if err != nil {
		logger.Log.Error("Reload failed", zap.Error(err))
		return
	}

	start := time.Now()
	files, err := generateAndExport(ctx, cfg)
	if err != nil {
		logger.Log.Error("Regeneration failed", zap.Error(err))
		return
	}
	logger.Log.Info("Regenerated",
		zap.Int("files", len(files)),
		zap.Duration("took", time.Since(start)))
}
