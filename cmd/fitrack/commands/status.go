package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/setstatus"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/printer"
	"github.com/slok/fitrack/internal/utils/kv"
)

type StatusSetCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	specs  []string
	filter filterFlags
	format string
}

// NewStatusSetCommand returns the status set command.
func NewStatusSetCommand(rootCmd *RootCommand, statusCmd *kingpin.CmdClause) *StatusSetCommand {
	c := &StatusSetCommand{rootCmd: rootCmd}

	c.Cmd = statusCmd.Command("set", "Change the status of activities and print the updated list.")
	c.Cmd.Arg("changes", "Status changes as ID=STATUS (e.g: 12=Completed 3=InProgress).").Required().StringsVar(&c.specs)
	c.filter.register(c.Cmd)
	addFormatFlag(c.Cmd, &c.format)

	return c
}

func (c StatusSetCommand) Name() string { return c.Cmd.FullCommand() }

func (c StatusSetCommand) Run(ctx context.Context) error {
	changes, err := parseStatusChanges(c.specs)
	if err != nil {
		return err
	}

	filter, err := c.filter.filter()
	if err != nil {
		return err
	}

	store, err := c.rootCmd.remoteStore()
	if err != nil {
		return err
	}

	svc, err := setstatus.NewService(setstatus.ServiceConfig{
		Store:           store,
		MetricsRecorder: c.rootCmd.MetricsRecorder,
		Logger:          c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, setstatus.Request{Changes: changes, Filter: filter})
	if err != nil {
		return err
	}

	p := c.rootCmd.printer(c.format)
	if err := p.PrintStatusChanges(mapStatusChanges(resp.Results)); err != nil {
		return fmt.Errorf("could not print status changes: %w", err)
	}

	if resp.ListErr != nil {
		c.rootCmd.Logger.Warningf("Could not load activities: %s", resp.ListErr)
	} else if c.format == formatTable {
		fmt.Fprintln(c.rootCmd.Stdout)
		if err := p.PrintActivities(resp.Activities); err != nil {
			return fmt.Errorf("could not print list: %w", err)
		}
	}

	if failed := resp.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d status changes failed", failed, len(resp.Results))
	}

	return nil
}

func parseStatusChanges(specs []string) ([]setstatus.Change, error) {
	pairs, err := kv.ParsePairs(specs)
	if err != nil {
		return nil, fmt.Errorf("invalid status change: %w", err)
	}

	changes := make([]setstatus.Change, 0, len(pairs))
	for _, p := range pairs {
		s, err := model.ParseActivityStatus(p.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid status change %s: %w", p.Key, err)
		}
		changes = append(changes, setstatus.Change{ActivityID: p.Key, Status: s})
	}

	return changes, nil
}

func mapStatusChanges(results []setstatus.Result) []printer.StatusChange {
	changes := make([]printer.StatusChange, 0, len(results))
	for _, r := range results {
		sc := printer.StatusChange{
			ActivityID: r.Change.ActivityID,
			From:       r.Attempt.Previous,
			To:         r.Change.Status,
		}

		switch {
		case r.Err != nil:
			sc.Result = printer.StatusChangeFailed
			sc.Error = r.Err.Error()
		case r.Ignored:
			sc.Result = printer.StatusChangeIgnored
			sc.From = r.Change.Status
		default:
			sc.Result = printer.StatusChangeUpdated
		}

		changes = append(changes, sc)
	}

	return changes
}
