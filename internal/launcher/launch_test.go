package launcher

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/talento/internal/testutil"
)

func TestLaunch_ReturnsWhenContextEnds(t *testing.T) {
	a := testutil.NewTestApp(t)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Launch(ctx, a,
			tea.WithInput(strings.NewReader("")),
			tea.WithOutput(io.Discard),
			tea.WithWindowSize(120, 40))
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("board did not shut down after cancellation")
	}
}
