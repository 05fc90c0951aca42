package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/register"
	"github.com/slok/fitrack/internal/model"
)

type RegisterCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	firstName string
	lastName  string
	email     string
	password  string
	format    string
}

// NewRegisterCommand returns the register command.
func NewRegisterCommand(rootCmd *RootCommand, app *kingpin.Application) *RegisterCommand {
	c := &RegisterCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("register", "Register a new user.")
	c.Cmd.Flag("first-name", "User first name.").Required().StringVar(&c.firstName)
	c.Cmd.Flag("last-name", "User last name.").Required().StringVar(&c.lastName)
	c.Cmd.Flag("email", "User email.").Required().StringVar(&c.email)
	c.Cmd.Flag("password", "User password.").Envar("FITRACK_PASSWORD").Required().StringVar(&c.password)
	addFormatFlag(c.Cmd, &c.format)

	return c
}

func (c RegisterCommand) Name() string { return c.Cmd.FullCommand() }

func (c RegisterCommand) Run(ctx context.Context) error {
	store, err := c.rootCmd.remoteStore()
	if err != nil {
		return err
	}

	svc, err := register.NewService(register.ServiceConfig{
		UserStore: store,
		Logger:    c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	user, err := svc.Run(ctx, register.Request{Registration: model.Registration{
		FirstName: c.firstName,
		LastName:  c.lastName,
		Email:     c.email,
		Password:  c.password,
	}})
	if err != nil {
		return err
	}

	return c.rootCmd.printer(c.format).PrintUser(*user)
}
