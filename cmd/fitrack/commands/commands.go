package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/fitrack/internal/conventions"
	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/metrics"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/printer"
	"github.com/slok/fitrack/internal/remote"
	"github.com/slok/fitrack/internal/remote/httpapi"
	"github.com/slok/fitrack/internal/remote/memory"
	"github.com/slok/fitrack/internal/session"
	"github.com/slok/fitrack/internal/storage/sqlite"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"

	formatTable = "table"
	formatJSON  = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug          bool
	NoLog          bool
	NoColor        bool
	LoggerType     string
	DBPath         string
	APIURL         string
	APITimeout     time.Duration
	FakeAPI        bool
	MetricsPushURL string

	// Global instances.
	Stdin           io.Reader
	Stdout          io.Writer
	Stderr          io.Writer
	Logger          log.Logger
	MetricsRecorder metrics.Recorder

	// Store overrides the remote store built from the flags, used on tests.
	Store remote.Store
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").Envar("FITRACK_NO_LOG").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	defaultDBPath := conventions.DBPath(homedir.HomeDir())
	app.Flag("db-path", "Path to the SQLite database file with the local session.").Envar("FITRACK_DB_PATH").Default(defaultDBPath).StringVar(&c.DBPath)
	app.Flag("api-url", "Fitness API base URL.").Envar("FITRACK_API_URL").Default(httpapi.DefaultBaseURL).StringVar(&c.APIURL)
	app.Flag("api-timeout", "Timeout of each API request.").Default("15s").DurationVar(&c.APITimeout)
	app.Flag("fake-api", "Use an in-memory API with demo data instead of the remote one.").BoolVar(&c.FakeAPI)
	app.Flag("metrics-push-url", "Prometheus pushgateway URL to push the client metrics to after the command.").Envar("FITRACK_METRICS_PUSH_URL").StringVar(&c.MetricsPushURL)

	return c
}

func (r *RootCommand) remoteStore() (remote.Store, error) {
	if r.Store != nil {
		return r.Store, nil
	}

	if r.FakeAPI {
		s, err := memory.NewStore(memory.StoreConfig{
			Activities: demoActivities(model.Today()),
			Logger:     r.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create fake API: %w", err)
		}
		return s, nil
	}

	c, err := httpapi.NewClient(httpapi.ClientConfig{
		BaseURL:         r.APIURL,
		Timeout:         r.APITimeout,
		MetricsRecorder: r.MetricsRecorder,
		Logger:          r.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create API client: %w", err)
	}
	return c, nil
}

// sessionManager returns the session manager and a function to release its storage.
func (r *RootCommand) sessionManager(ctx context.Context) (*session.Manager, func(), error) {
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: r.DBPath,
		Logger: r.Logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create repository: %w", err)
	}

	apiURL := r.APIURL
	if r.FakeAPI {
		apiURL = "fake"
	}

	m, err := session.NewManager(session.ManagerConfig{
		Repository: repo,
		APIURL:     apiURL,
		Logger:     r.Logger,
	})
	if err != nil {
		_ = repo.Close()
		return nil, nil, fmt.Errorf("could not create session manager: %w", err)
	}

	closer := func() {
		if err := repo.Close(); err != nil {
			r.Logger.Warningf("Could not close repository: %s", err)
		}
	}

	return m, closer, nil
}

func (r *RootCommand) printer(format string) printer.Printer {
	switch format {
	case formatJSON:
		return printer.NewJSONPrinter(r.Stdout)
	default:
		return printer.NewTablePrinter(r.Stdout)
	}
}

func addFormatFlag(cmd *kingpin.CmdClause, format *string) {
	cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(format, formatTable, formatJSON)
}

func intPtr(i int) *int { return &i }

// demoActivities are the activities of the fake API.
func demoActivities(today time.Time) []model.Activity {
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	return []model.Activity{
		{Type: model.ActivityTypeWorkout, Status: model.ActivityStatusCompleted, Name: "Morning run", Description: "Easy 5k around the park", Date: day(-2), Details: model.WorkoutDetails{DurationMinutes: intPtr(30), Calories: intPtr(320)}},
		{Type: model.ActivityTypeMeal, Status: model.ActivityStatusCompleted, Name: "Chicken salad", Date: day(-1), Details: model.MealDetails{MealType: model.MealTypeLunch, Calories: intPtr(540)}},
		{Type: model.ActivityTypeSteps, Status: model.ActivityStatusInProgress, Name: "Daily steps", Date: day(0), Details: model.StepsDetails{StepsCount: intPtr(6200)}},
		{Type: model.ActivityTypeWorkout, Status: model.ActivityStatusPlanned, Name: "Leg day", Date: day(1), Details: model.WorkoutDetails{DurationMinutes: intPtr(60)}},
		{Type: model.ActivityTypeMeal, Status: model.ActivityStatusPlanned, Name: "Oatmeal", Date: day(1), Details: model.MealDetails{MealType: model.MealTypeBreakfast}},
	}
}
