package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/list"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	filter filterFlags
	format string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List activities.")
	c.filter.register(c.Cmd)
	addFormatFlag(c.Cmd, &c.format)

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	filter, err := c.filter.filter()
	if err != nil {
		return err
	}

	store, err := c.rootCmd.remoteStore()
	if err != nil {
		return err
	}

	svc, err := list.NewService(list.ServiceConfig{
		Lister:          store,
		MetricsRecorder: c.rootCmd.MetricsRecorder,
		Logger:          c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	activities, err := svc.Run(ctx, list.Request{Filter: filter})
	if err != nil {
		return err
	}

	if err := c.rootCmd.printer(c.format).PrintActivities(activities); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
