package commands

import (
	"context"

	"github.com/alecthomas/kingpin/v2"
)

type WhoamiCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewWhoamiCommand returns the whoami command.
func NewWhoamiCommand(rootCmd *RootCommand, app *kingpin.Application) *WhoamiCommand {
	c := &WhoamiCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("whoami", "Show the logged in user.")
	addFormatFlag(c.Cmd, &c.format)

	return c
}

func (c WhoamiCommand) Name() string { return c.Cmd.FullCommand() }

func (c WhoamiCommand) Run(ctx context.Context) error {
	sessions, closeRepo, err := c.rootCmd.sessionManager(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	sess, err := sessions.Current(ctx)
	if err != nil {
		return err
	}

	return c.rootCmd.printer(c.format).PrintUser(sess.User)
}
