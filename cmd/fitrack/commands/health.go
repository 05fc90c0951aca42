package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/fitrack/internal/app/health"
	"github.com/slok/fitrack/internal/model"
)

type HealthCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewHealthCommand returns the health command.
func NewHealthCommand(rootCmd *RootCommand, app *kingpin.Application) *HealthCommand {
	c := &HealthCommand{rootCmd: rootCmd}
	c.Cmd = app.Command("health", "Check the API health and the local session.")
	return c
}

func (c HealthCommand) Name() string { return c.Cmd.FullCommand() }

func (c HealthCommand) Run(ctx context.Context) error {
	out := c.rootCmd.Stdout

	store, err := c.rootCmd.remoteStore()
	if err != nil {
		return err
	}

	sessions, closeRepo, err := c.rootCmd.sessionManager(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := health.NewService(health.ServiceConfig{
		Checker:  store,
		Sessions: sessions,
		Logger:   c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	results := svc.Run(ctx, health.Request{})

	totalErrors := 0
	totalWarnings := 0
	for _, r := range results {
		fmt.Fprintf(out, "  %s %-12s %s\n", getStatusIcon(r.Status), r.ID, r.Message)

		switch r.Status {
		case model.CheckStatusError:
			totalErrors++
		case model.CheckStatusWarning:
			totalWarnings++
		}
	}

	// Summary.
	fmt.Fprintln(out)
	if totalErrors == 0 && totalWarnings == 0 {
		fmt.Fprintln(out, "All checks passed!")
	} else {
		var summary []string
		if totalErrors > 0 {
			summary = append(summary, fmt.Sprintf("%d error(s)", totalErrors))
		}
		if totalWarnings > 0 {
			summary = append(summary, fmt.Sprintf("%d warning(s)", totalWarnings))
		}
		fmt.Fprintln(out, strings.Join(summary, ", "))
	}

	if totalErrors > 0 {
		return fmt.Errorf("health checks failed with %d error(s)", totalErrors)
	}

	return nil
}

func getStatusIcon(status model.CheckStatus) string {
	switch status {
	case model.CheckStatusOK:
		return "OK"
	case model.CheckStatusWarning:
		return "!!"
	case model.CheckStatusError:
		return "XX"
	default:
		return "??"
	}
}
