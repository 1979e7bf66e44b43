package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/killallgit/xianplay-api/api"
	"github.com/killallgit/xianplay-api/internal/database"
	"github.com/killallgit/xianplay-api/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the XianPlay API server with the configured settings.

The server proxies the drama catalog, relays cover images and, when a
database path is configured, serves the per-client library.

Example:
  xianplay-api serve
  xianplay-api serve --port 9090
  xianplay-api serve --host 0.0.0.0 --port 8080 --db ./data/xianplay.db`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "server host (overrides config)")
	serveCmd.Flags().Int("port", 0, "server port (overrides config)")
	serveCmd.Flags().String("db", "", "SQLite database path (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		config.Set("server.host", host)
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		config.Set("server.port", port)
	}
	if cmd.Flags().Changed("db") {
		dbPath, _ := cmd.Flags().GetString("db")
		config.Set("database.path", dbPath)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cmd)

	log := logrus.WithField("component", "serve")

	server := api.NewServer(cfg)

	if cfg.Database.Path != "" {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.WithError(err).Warn("failed to close database")
			}
		}()

		if err := db.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		server.SetDatabase(db)
	}

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	log.WithField("addr", server.Addr()).Info("server is ready to handle requests")

	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server gracefully stopped")
	return nil
}
