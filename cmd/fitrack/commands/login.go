package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/login"
	"github.com/slok/fitrack/internal/model"
)

type LoginCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	email    string
	password string
}

// NewLoginCommand returns the login command.
func NewLoginCommand(rootCmd *RootCommand, app *kingpin.Application) *LoginCommand {
	c := &LoginCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("login", "Log in and store the session locally.")
	c.Cmd.Flag("email", "User email.").Required().StringVar(&c.email)
	c.Cmd.Flag("password", "User password.").Envar("FITRACK_PASSWORD").Required().StringVar(&c.password)

	return c
}

func (c LoginCommand) Name() string { return c.Cmd.FullCommand() }

func (c LoginCommand) Run(ctx context.Context) error {
	store, err := c.rootCmd.remoteStore()
	if err != nil {
		return err
	}

	sessions, closeRepo, err := c.rootCmd.sessionManager(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := login.NewService(login.ServiceConfig{
		UserStore: store,
		Sessions:  sessions,
		Logger:    c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	sess, err := svc.Run(ctx, login.Request{Credentials: model.Credentials{
		Email:    c.email,
		Password: c.password,
	}})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.rootCmd.Stdout, "Logged in as %s (%s)\n", sess.User.FullName(), sess.User.Email)
	return nil
}
