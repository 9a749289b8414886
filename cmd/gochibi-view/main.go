package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gochibi/internal/config"
	"github.com/philipparndt/gochibi/internal/logger"
	"github.com/philipparndt/gochibi/internal/preview"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gochibi-view",
	Short: "3D preview of the chibi figurine",
	Long: `gochibi-view opens a window with the generated figurine. When a config
file is in use, saving it regenerates the preview. Press E to export.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		cfg, err := config.Resolve(flags)
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
			return err
		}

		watchPath := config.ConfigPath(flags)
		if watchPath == "" {
			watchPath = config.FindConfigFile()
		}

		return preview.Run(preview.Options{
			Config:    cfg,
			WatchPath: watchPath,
			Reload: func() (*config.Config, error) {
				return config.Resolve(flags)
			},
			Log: logger.Log,
		})
	},
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
