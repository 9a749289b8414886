package main

import (
	"context"
	"fmt"

	"github.com/philipparndt/gochibi/internal/config"
	"github.com/philipparndt/gochibi/internal/logger"
	"github.com/philipparndt/gochibi/pkg/archive"
	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the figurine and export every part",
	Long: `Generate all parts for the configuration and write one file per part
to the output directory. Settings come from the defaults, then the config
file, then the flags.`,
	Example: `  gochibi generate --scale 1.5 --hair long -o out
  gochibi generate --format obj --zip
  gochibi generate -c figurine.yaml`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	files, err := generateAndExport(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d parts to %s\n", len(files), cfg.Export.Dir)
	if cfg.Export.Zip && len(files) > 0 {
		fmt.Printf("Archive: %s\n", cfg.Export.ZipPath())
	}
	return nil
}

// generateAndExport runs one full pass: generation, export and optional zip
func generateAndExport(ctx context.Context, cfg *config.Config) ([]string, error) {
	log := logger.Log

	parts, err := chibi.GenerateFullModel(cfg.Model)
	if err != nil {
		return nil, err
	}
	log.Info("Generated model", zap.Stringer("config", cfg.Model), zap.Int("parts", len(parts)))

	opts := []export.Option{export.WithLogger(log)}
	if cfg.Export.ASCIISTL {
		opts = append(opts, export.WithASCIISTL())
	}

	files, err := export.New(opts...).ExportParts(ctx, parts, cfg.Export.Dir, cfg.Export.Format)
	if err != nil {
		return files, err
	}
	if len(files) < len(parts) {
		log.Warn("Some parts were not exported", zap.Int("written", len(files)), zap.Int("parts", len(parts)))
	}

	if cfg.Export.Zip {
		zipPath := cfg.Export.ZipPath()
		if err := archive.Zip(zipPath, files); err != nil {
			return files, fmt.Errorf("packaging parts: %w", err)
		}
		log.Info("Wrote archive", zap.String("path", zipPath), zap.Int("files", len(files)))
	}
	return files, nil
}
