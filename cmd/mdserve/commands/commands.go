package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpHandlers "github.com/mdserve/core/internal/adapters/http"
	"github.com/mdserve/core/internal/application/services"
	"github.com/mdserve/core/internal/infrastructure/browser"
	"github.com/mdserve/core/internal/infrastructure/config"
	"github.com/mdserve/core/internal/infrastructure/logger"
	"github.com/mdserve/core/internal/infrastructure/server"
	"github.com/mdserve/core/internal/ports"
)

// NewRootCommand creates the root command. Serving is the root's own action:
// `mdserve [directory]` browses the directory (default: current directory).
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdserve [directory]",
		Short: "Browse a directory of Markdown files in the browser",
		Long:  "mdserve serves a directory tree over HTTP, rendering Markdown files as styled HTML pages and listing directories, then opens the default browser at the root listing.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runServer(dir)
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print mdserve version",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				fmt.Println("mdserve (unknown version)")
				return
			}
			fmt.Printf("%s %s\n", cfg.App.Name, cfg.App.Version)
		},
	}
}

func runServer(dir string) error {
	target, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", target)
	}

	if err := os.Chdir(target); err != nil {
		return fmt.Errorf("failed to change directory to %s: %w", target, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	resolver, err := services.NewResolveService(target)
	if err != nil {
		return err
	}

	var renderer ports.MarkdownRenderer
	switch cfg.Render.Mode {
	case "plain":
		renderer = services.NewPlainTextRenderer()
	default:
		renderer = services.NewGoldmarkRenderer()
	}

	lister := services.NewListingService(resolver.Root())
	handler := httpHandlers.NewBrowseHandler(resolver, renderer, lister, appLogger)

	srv, err := server.New(cfg, appLogger, handler)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Shutdown is driven by cancellation of this context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLogger.Errorw("Server shutdown failed", "error", err)
		}
	}()

	appLogger.Infow("Serving directory",
		"dir", target,
		"url", cfg.Server.RootURL(),
		"render_mode", cfg.Render.Mode,
	)

	if cfg.Browser.Open {
		go func() {
			// Give the listener a moment to come up first.
			time.Sleep(300 * time.Millisecond)
			if err := browser.Open(cfg.Server.RootURL()); err != nil {
				appLogger.Warnw("Failed to open browser", "error", err)
			}
		}()
	}

	if err := srv.Start(cfg.Server.Addr()); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
