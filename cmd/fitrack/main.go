package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/slok/fitrack/cmd/fitrack/commands"
	"github.com/slok/fitrack/internal/log"
	loglogrus "github.com/slok/fitrack/internal/log/logrus"
	"github.com/slok/fitrack/internal/metrics"
	metricsprometheus "github.com/slok/fitrack/internal/metrics/prometheus"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	return runApp(ctx, args, stdin, stdout, stderr, nil)
}

// runApp runs the application, setup can customize the root command before running.
func runApp(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, setup func(*commands.RootCommand)) (err error) {
	app := kingpin.New("fitrack", "Fitness activity tracker client.")
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	registerCmd := commands.NewRegisterCommand(rootCmd, app)
	loginCmd := commands.NewLoginCommand(rootCmd, app)
	logoutCmd := commands.NewLogoutCommand(rootCmd, app)
	whoamiCmd := commands.NewWhoamiCommand(rootCmd, app)
	listCmd := commands.NewListCommand(rootCmd, app)
	showCmd := commands.NewShowCommand(rootCmd, app)
	createCmd := commands.NewCreateCommand(rootCmd, app)
	editCmd := commands.NewEditCommand(rootCmd, app)
	removeCmd := commands.NewRemoveCommand(rootCmd, app)
	profileCmd := commands.NewProfileCommand(rootCmd, app)
	healthCmd := commands.NewHealthCommand(rootCmd, app)
	dashboardCmd := commands.NewDashboardCommand(rootCmd, app)

	// Status subcommands share a parent command.
	statusCmd := app.Command("status", "Manage activity status.")
	statusSetCmd := commands.NewStatusSetCommand(rootCmd, statusCmd)

	cmds := map[string]commands.Command{
		registerCmd.Name():  registerCmd,
		loginCmd.Name():     loginCmd,
		logoutCmd.Name():    logoutCmd,
		whoamiCmd.Name():    whoamiCmd,
		listCmd.Name():      listCmd,
		showCmd.Name():      showCmd,
		createCmd.Name():    createCmd,
		editCmd.Name():      editCmd,
		removeCmd.Name():    removeCmd,
		profileCmd.Name():   profileCmd,
		healthCmd.Name():    healthCmd,
		dashboardCmd.Name(): dashboardCmd,
		statusSetCmd.Name(): statusSetCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Auto-suppress logging for commands that produce structured output (table/JSON)
	// or take the terminal, so log noise doesn't mix with it.
	// Users can still enable logging with --debug.
	printerCommands := map[string]bool{
		"list":       true,
		"show":       true,
		"whoami":     true,
		"profile":    true,
		"status set": true,
		"dashboard":  true,
	}
	if printerCommands[cmdName] && !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(ctx, *rootCmd)

	// Set metrics, only recorded when they are going to be pushed.
	rootCmd.MetricsRecorder = metrics.Noop
	var promRecorder *metricsprometheus.Recorder
	if rootCmd.MetricsPushURL != "" {
		promRecorder, err = metricsprometheus.NewRecorder(metricsprometheus.Config{})
		if err != nil {
			return fmt.Errorf("could not create metrics recorder: %w", err)
		}
		rootCmd.MetricsRecorder = promRecorder
	}

	if setup != nil {
		setup(rootCmd)
	}

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)

				// Push metrics even if the command failed, the failures are what we want to see.
				if promRecorder != nil {
					if perr := promRecorder.Push(context.WithoutCancel(ctx), rootCmd.MetricsPushURL); perr != nil {
						rootCmd.Logger.Warningf("Could not push metrics: %s", perr)
					}
				}

				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// getLogger returns the application logger.
func getLogger(ctx context.Context, config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	// If logger not disabled use logrus logger.
	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled") // Will log only when debug enabled.

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
