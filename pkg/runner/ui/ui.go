package ui

import (
	"context"
	"errors"

	"tableflip.dev/cosmic/pkg/tui/app"
)

// UI runs the terminal interface.
type UI struct {
	Options app.Options
}

func (u *UI) Do(ctx context.Context) error {
	if u.Options.Service == nil {
		return errors.New("can not start the ui, no client")
	}
	return app.Run(ctx, u.Options)
}
