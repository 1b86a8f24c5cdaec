package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/folio-dev/folio/internal/config"
	"github.com/folio-dev/folio/internal/contact"
	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/motion"
	"github.com/folio-dev/folio/internal/repos"
	"github.com/folio-dev/folio/internal/server"
	"github.com/folio-dev/folio/internal/session"
	"github.com/folio-dev/folio/internal/site"
)

var (
	servePort   int
	serveOpen   bool
	serveStatic bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio",
	Long: `Starts the portfolio HTTP server: the page for each persona, the
GitHub repository passthrough at /api/github, the contact endpoint and the
realtime session at /ws/session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if serveStatic {
			cfg.GitHub.Mode = config.ProjectsStatic
		}

		lib, err := loadLibrary(cfg)
		if err != nil {
			return err
		}
		renderer, err := site.NewRenderer()
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, logger)

		registerAllRoutes(srv, cfg, lib, renderer)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d", cfg.Port)
		logger.Info("folio starting",
			zap.String("version", Version),
			zap.String("url", url),
			zap.String("persona", lib.Default().Slug),
			zap.Strings("personas", lib.Slugs()),
			zap.String("projects", string(cfg.GitHub.Mode)),
		)
		if serveOpen {
			go site.OpenBrowser(url)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func registerAllRoutes(srv *server.Server, cfg *config.Config, lib *content.Library, renderer *site.Renderer) {
	catalogs := newCatalogs(cfg)
	timed := srv.Timed()

	repos.RegisterRoutes(timed, catalogs(lib.Default()), logger)

	dispatcher := contact.NewDispatcher(cfg.Contact.WebhookURL, logger)
	contact.RegisterRoutes(timed, dispatcher, logger)

	assetsDir := ""
	if info, err := os.Stat(cfg.AssetsDir); err == nil && info.IsDir() {
		assetsDir = cfg.AssetsDir
	}
	site.RegisterRoutes(timed, &site.Handler{
		Renderer: renderer,
		Library:  lib,
		Inline:   staticInline(cfg),
		Options: site.Options{
			Live:           true,
			PreloadMS:      cfg.PreloadMS,
			ContactEnabled: dispatcher.Configured(),
		},
		AssetsDir: assetsDir,
		Logger:    logger,
	})

	// The session is long-lived and must not sit behind the request timeout.
	session.RegisterRoutes(srv.Router(), &session.Handler{
		Library: lib,
		Catalog: catalogs,
		Trail:   motion.CursorTrail,
		Logger:  logger,
	})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 3000, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the portfolio in a browser")
	serveCmd.Flags().BoolVar(&serveStatic, "static", false, "Serve curated projects instead of fetching from GitHub")
	rootCmd.AddCommand(serveCmd)
}
