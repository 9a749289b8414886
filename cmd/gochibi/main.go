package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/gochibi/internal/config"
	"github.com/philipparndt/gochibi/internal/logger"
	"github.com/philipparndt/gochibi/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "gochibi",
	Short: "Generate printable chibi figurine parts",
	Long: `gochibi builds a chibi-style figurine as separate printable parts
(head, eyes, hair, torso, limbs) joined by socket/insert connectors,
and exports each part as an STL or OBJ file.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
}

// loadConfig resolves defaults < file < flags, validates the result and
// sets up logging from it
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}

	logger.Log.Debug("Configuration loaded",
		zap.Stringer("model", cfg.Model),
		zap.String("dir", cfg.Export.Dir),
		zap.String("format", cfg.Export.Format))
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
