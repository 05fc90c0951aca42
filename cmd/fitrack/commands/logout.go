package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/logout"
)

type LogoutCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewLogoutCommand returns the logout command.
func NewLogoutCommand(rootCmd *RootCommand, app *kingpin.Application) *LogoutCommand {
	c := &LogoutCommand{rootCmd: rootCmd}
	c.Cmd = app.Command("logout", "Log out removing the local session.")
	return c
}

func (c LogoutCommand) Name() string { return c.Cmd.FullCommand() }

func (c LogoutCommand) Run(ctx context.Context) error {
	sessions, closeRepo, err := c.rootCmd.sessionManager(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := logout.NewService(logout.ServiceConfig{
		Sessions: sessions,
		Logger:   c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	user, err := svc.Run(ctx, logout.Request{})
	if err != nil {
		return err
	}

	if user == nil {
		fmt.Fprintln(c.rootCmd.Stdout, "Not logged in")
		return nil
	}
	fmt.Fprintf(c.rootCmd.Stdout, "Logged out %s\n", user.Email)
	return nil
}
