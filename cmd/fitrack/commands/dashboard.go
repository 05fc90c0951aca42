package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/tui"
)

type DashboardCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	filter filterFlags
}

// NewDashboardCommand returns the dashboard command.
func NewDashboardCommand(rootCmd *RootCommand, app *kingpin.Application) *DashboardCommand {
	c := &DashboardCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("dashboard", "Interactive activity dashboard.")
	c.filter.register(c.Cmd)

	return c
}

func (c DashboardCommand) Name() string { return c.Cmd.FullCommand() }

func (c DashboardCommand) Run(ctx context.Context) error {
	filter, err := c.filter.filter()
	if err != nil {
		return err
	}

	store, err := c.rootCmd.remoteStore()
	if err != nil {
		return err
	}

	sessions, closeRepo, err := c.rootCmd.sessionManager(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	var user *model.User
	sess, err := sessions.Current(ctx)
	switch {
	case err == nil:
		user = &sess.User
	case !errors.Is(err, model.ErrNotFound):
		return err
	}

	err = tui.Run(ctx, tui.DashboardConfig{
		Store:           store,
		Filter:          filter,
		User:            user,
		MetricsRecorder: c.rootCmd.MetricsRecorder,
		Logger:          c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not run dashboard: %w", err)
	}

	return nil
}
