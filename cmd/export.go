package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/progress"
	"github.com/folio-dev/folio/internal/site"
)

var (
	exportOut    string
	exportStatic bool
)

var exportCmd = &cobra.Command{
	Use:   "export [persona]",
	Short: "Write a static build of the portfolio",
	Long: `Renders a persona's portfolio into a self-contained directory: index.html
with the project list baked in, api/github.json, the stylesheet, the script
and any assets matching the configured patterns. The exported page runs
without the realtime session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOut != "" {
			cfg.Export.OutputDir = exportOut
		}
		if exportStatic {
			cfg.GitHub.Mode = config.ProjectsStatic
		}
		lib, err := loadLibrary(cfg)
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		p, err := pickPersona(lib, name)
		if err != nil {
			return err
		}

		renderer, err := site.NewRenderer()
		if err != nil {
			return err
		}
		exporter := &site.Exporter{
			Renderer:  renderer,
			OutputDir: cfg.Export.OutputDir,
			AssetsDir: cfg.AssetsDir,
			Assets:    cfg.Export.Assets,
			PreloadMS: cfg.PreloadMS,
			Reporter:  progress.NewReporter("Exporting " + p.Slug),
			Logger:    logger,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		res, err := exporter.Export(ctx, p, newCatalogs(cfg)(p))
		if err != nil {
			return fmt.Errorf("exporting %s: %w", p.Slug, err)
		}
		logger.Info("export complete",
			zap.String("dir", cfg.Export.OutputDir),
			zap.Int("projects", res.Projects),
			zap.Int("assets", res.Assets),
			zap.Int("files", len(res.Files)),
		)
		fmt.Printf("Exported %s to %s (%d files)\n", p.Name, cfg.Export.OutputDir, len(res.Files))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output directory (overrides config)")
	exportCmd.Flags().BoolVar(&exportStatic, "static", false, "Use the curated list instead of GitHub")
	rootCmd.AddCommand(exportCmd)
}
