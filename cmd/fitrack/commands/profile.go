package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/profile"
)

type ProfileCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewProfileCommand returns the profile command.
func NewProfileCommand(rootCmd *RootCommand, app *kingpin.Application) *ProfileCommand {
	c := &ProfileCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("profile", "Show the logged in user profile and stats.")
	addFormatFlag(c.Cmd, &c.format)

	return c
}

func (c ProfileCommand) Name() string { return c.Cmd.FullCommand() }

func (c ProfileCommand) Run(ctx context.Context) error {
	store, err := c.rootCmd.remoteStore()
	if err != nil {
		return err
	}

	sessions, closeRepo, err := c.rootCmd.sessionManager(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := profile.NewService(profile.ServiceConfig{
		Store:    store,
		Sessions: sessions,
		Logger:   c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, profile.Request{})
	if err != nil {
		return err
	}

	if resp.ActivitiesErr != nil {
		fmt.Fprintf(c.rootCmd.Stderr, "Warning: could not load activities: %s\n", resp.ActivitiesErr)
	}

	return c.rootCmd.printer(c.format).PrintProfile(resp.User, resp.Stats, resp.Recent)
}
