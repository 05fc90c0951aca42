package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/edit"
	"github.com/slok/fitrack/internal/model"
)

type EditCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id     string
	fields activityFlags
	format string
}

// NewEditCommand returns the edit command.
func NewEditCommand(rootCmd *RootCommand, app *kingpin.Application) *EditCommand {
	c := &EditCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("edit", "Edit an activity, the type can't be changed.")
	c.Cmd.Arg("id", "Activity ID.").Required().StringVar(&c.id)
	c.fields.register(c.Cmd)
	addFormatFlag(c.Cmd, &c.format)

	return c
}

func (c EditCommand) Name() string { return c.Cmd.FullCommand() }

func (c EditCommand) Run(ctx context.Context) error {
	store, err := c.rootCmd.remoteStore()
	if err != nil {
		return err
	}

	req := edit.Request{ID: c.id}
	if c.fields.file != "" {
		if c.fields.anyFieldSet() {
			return fmt.Errorf("--file can't be used with field flags: %w", model.ErrNotValid)
		}

		// Files without type get the type of the edited activity.
		current, err := store.GetActivity(ctx, c.id)
		if err != nil {
			return fmt.Errorf("could not get activity %s: %w", c.id, err)
		}
		a, err := loadActivityFile(ctx, c.fields.file, current.Type)
		if err != nil {
			return err
		}
		req.Replacement = &a
	} else {
		p, err := c.fields.patch()
		if err != nil {
			return err
		}
		req.Patch = &p
	}

	svc, err := edit.NewService(edit.ServiceConfig{
		Store:  store,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	updated, err := svc.Run(ctx, req)
	if err != nil {
		return err
	}

	return c.rootCmd.printer(c.format).PrintActivity(*updated)
}
