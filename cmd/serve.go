package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rpgo/investment-calculator/internal/api"
	"github.com/rpgo/investment-calculator/internal/calculation"
)

var (
	flagPort    string
	flagEnvFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection API over HTTP",
	Long: "Serve the projection API. The port comes from --port, then API_PORT,\n" +
		"then the preferences file. API_ENV=production puts gin in release mode.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&flagPort, "port", "p", "", "Port to listen on")
	serveCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Optional dotenv file loaded before reading API_* variables")
	rootCmd.AddCommand(serveCmd)
}

// listenPort resolves the port by precedence: flag, environment, preferences.
func listenPort() string {
	if flagPort != "" {
		return flagPort
	}
	if p := os.Getenv("API_PORT"); p != "" {
		return p
	}
	if prefs.Server.Port != "" {
		return prefs.Server.Port
	}
	return "8080"
}

func allowedOrigins() []string {
	if v := os.Getenv("API_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return origins
	}
	return prefs.Server.AllowedOrigins
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagEnvFile != "" {
		if err := godotenv.Load(flagEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", flagEnvFile, err)
		}
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := newEngine(cmd)
	logger := calculation.NewWriterLogger(cmd.ErrOrStderr(), calculation.LevelInfo)
	if flagVerbose {
		logger = calculation.NewWriterLogger(cmd.ErrOrStderr(), calculation.LevelDebug)
	}
	engine.SetLogger(logger)

	srv := api.NewServer(listenPort(), api.Options{
		Engine:         engine,
		Currency:       currency(),
		AllowedOrigins: allowedOrigins(),
		AccessLog:      cmd.ErrOrStderr(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
