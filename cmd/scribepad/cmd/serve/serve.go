package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"scribepad/internal/app"
	"scribepad/internal/config"
)

var configFile string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scribepad HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		srv, err := app.InitializeServer(cfg)
		if err != nil {
			return fmt.Errorf("initialize server: %w", err)
		}

		if err := srv.Start(); err != nil {
			return err
		}

		// Block until interrupted, then drain in-flight requests.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	Cmd.Flags().StringVarP(&configFile, "config", "c", "", "path to YAML config file")
}
