package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/shaharia-lab/reskin/internal/cli"
	"github.com/shaharia-lab/reskin/internal/webserver"
	"github.com/spf13/cobra"
)

// NewServeCmd creates a command serving the theme registry over HTTP
func NewServeCmd(container *cli.Container) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve themes and resources over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = container.UserConfig.Server.Port
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := container.StartWatching(ctx); err != nil {
				return err
			}

			ws := webserver.NewWebServer(strconv.Itoa(port), container.Logger.WithField("component", "http"))
			ws.Mount(webserver.NewThemeHandler(container.Registry, container.History))
			if err := ws.Start(); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			palette := container.Palette(cmd.OutOrStdout())
			palette.Success().Println(fmt.Sprintf("Serving themes on http://localhost:%d (Ctrl+C to stop)", port))

			<-ctx.Done()
			return ws.Stop()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (defaults to server.port from the config)")
	return cmd
}
