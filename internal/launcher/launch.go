// Package launcher runs the terminal board on top of an App
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/talento/internal/app"
	"github.com/thenoetrevino/talento/internal/tui"
)

// Launch starts the terminal board and blocks until the user quits or ctx
// is cancelled. opts are passed to the bubbletea program.
func Launch(ctx context.Context, a *app.App, opts ...tea.ProgramOption) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a.FollowRemoteChanges(ctx)

	model := tui.InitialModel(ctx, a.BoardService, a.Config)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
			return fmt.Errorf("error running board: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, closing board")
		p.Kill()
		<-errChan
	}

	return nil
}
