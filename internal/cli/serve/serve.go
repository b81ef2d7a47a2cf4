// Package serve runs the HTTP API with its background jobs
package serve

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/app"
	"github.com/thenoetrevino/talento/internal/chat"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/config"
	"github.com/thenoetrevino/talento/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		Long: `Serve the JSON API, server-sent board events and prometheus metrics.

While running, the chat assistant status is refreshed periodically and
changes to the config file are applied without a restart.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, "+config.DefaultHTTPAddr+")")
	cmd.Flags().Bool("no-watch", false, "Do not reload the config file on change")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	formatter := cli.NewFormatter(cmd)
	addr, _ := cmd.Flags().GetString("addr")
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	a := cliInstance.App
	if addr == "" {
		addr = a.Config.Server.Addr
	}

	monitor, err := chat.NewMonitor(a.Chat, a.Config.Chat.StatusInterval)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := monitor.Start(ctx); err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := monitor.Stop(); err != nil {
			a.Logger().Error("failed to stop chat monitor", "error", err)
		}
	}()

	a.FollowRemoteChanges(ctx)

	if !noWatch {
		if watcher := startWatcher(cmd, a); watcher != nil {
			defer watcher.Stop()
		}
	}

	srv := server.New(server.Options{
		Board:     a.BoardService,
		Chat:      a.Chat,
		Metrics:   a.Recorder.Handler(),
		Recorder:  a.Recorder,
		Snapshots: a.Recorder,
		Logger:    a.Logger(),
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Serving talento on http://%s (Ctrl+C to stop)\n", addr)
	if err := srv.Run(ctx, addr); err != nil {
		return formatter.Fail(err)
	}
	return nil
}

// startWatcher reloads the config file into a on change. Failures are
// logged and leave the server running on the current config.
func startWatcher(cmd *cobra.Command, a *app.App) *config.Watcher {
	path, err := config.Path()
	if err != nil {
		a.Logger().Warn("config reload disabled", "error", err)
		return nil
	}
	watcher, err := config.NewWatcher(path, config.DefaultDebounce, a.Reconfigure)
	if err != nil {
		a.Logger().Warn("config reload disabled", "error", err)
		return nil
	}
	if err := watcher.Start(cmd.Context()); err != nil {
		a.Logger().Warn("config reload disabled", "error", err)
		watcher.Stop()
		return nil
	}
	return watcher
}
