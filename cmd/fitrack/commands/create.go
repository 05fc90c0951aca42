package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/create"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/storage/io"
)

type CreateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	activityType string
	fields       activityFlags
	format       string
}

// NewCreateCommand returns the create command.
func NewCreateCommand(rootCmd *RootCommand, app *kingpin.Application) *CreateCommand {
	c := &CreateCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("create", "Create a new activity.")
	c.Cmd.Flag("type", "Activity type (Workout, Meal, Steps).").Short('t').StringVar(&c.activityType)
	c.fields.register(c.Cmd)
	addFormatFlag(c.Cmd, &c.format)

	return c
}

func (c CreateCommand) Name() string { return c.Cmd.FullCommand() }

func (c CreateCommand) Run(ctx context.Context) error {
	a, err := c.activity(ctx)
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

	svc, err := create.NewService(create.ServiceConfig{
		Store:    store,
		Sessions: sessions,
		Logger:   c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	created, err := svc.Run(ctx, create.Request{Activity: a})
	if err != nil {
		return err
	}

	return c.rootCmd.printer(c.format).PrintActivity(*created)
}

func (c CreateCommand) activity(ctx context.Context) (model.Activity, error) {
	if c.fields.file != "" {
		if c.fields.anyFieldSet() {
			return model.Activity{}, fmt.Errorf("--file can't be used with field flags: %w", model.ErrNotValid)
		}
		var fallback model.ActivityType
		if c.activityType != "" {
			t, err := model.ParseActivityType(c.activityType)
			if err != nil {
				return model.Activity{}, err
			}
			fallback = t
		}
		return loadActivityFile(ctx, c.fields.file, fallback)
	}

	if c.activityType == "" {
		return model.Activity{}, fmt.Errorf("--type is required: %w", model.ErrNotValid)
	}
	t, err := model.ParseActivityType(c.activityType)
	if err != nil {
		return model.Activity{}, err
	}

	return c.fields.activity(t)
}

// loadActivityFile loads an activity YAML file from any path.
func loadActivityFile(ctx context.Context, path string, fallbackType model.ActivityType) (model.Activity, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return model.Activity{}, fmt.Errorf("could not resolve activity file path: %w", err)
	}

	repo := io.NewActivityYAMLRepository(os.DirFS("/"))
	a, err := repo.GetActivity(ctx, absPath[1:], fallbackType)
	if err != nil {
		return model.Activity{}, fmt.Errorf("could not load activity file: %w", err)
	}

	return a, nil
}
