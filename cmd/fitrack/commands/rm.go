package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/remove"
)

type RemoveCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	ids []string
}

// NewRemoveCommand returns the rm command.
func NewRemoveCommand(rootCmd *RootCommand, app *kingpin.Application) *RemoveCommand {
	c := &RemoveCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("rm", "Remove activities.")
	c.Cmd.Arg("ids", "Activity IDs.").Required().StringsVar(&c.ids)

	return c
}

func (c RemoveCommand) Name() string { return c.Cmd.FullCommand() }

func (c RemoveCommand) Run(ctx context.Context) error {
	store, err := c.rootCmd.remoteStore()
	if err != nil {
		return err
	}

	svc, err := remove.NewService(remove.ServiceConfig{
		Store:  store,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	removed, err := svc.Run(ctx, remove.Request{IDs: c.ids})
	for _, id := range removed {
		fmt.Fprintf(c.rootCmd.Stdout, "Removed activity %s\n", id)
	}

	return err
}
