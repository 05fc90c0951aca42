// Package tui is the interactive terminal dashboard. It shows the activity list
// and lets the user change the status of each activity optimistically.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slok/fitrack/internal/listsync"
	"github.com/slok/fitrack/internal/log"
	"github.com/slok/fitrack/internal/metrics"
	"github.com/slok/fitrack/internal/model"
	"github.com/slok/fitrack/internal/printer"
	"github.com/slok/fitrack/internal/remote"
	"github.com/slok/fitrack/internal/statusctl"
)

// Store is the remote store the dashboard needs.
type Store interface {
	remote.ActivityLister
	remote.StatusUpdater
}

// DashboardConfig is the configuration of the dashboard.
type DashboardConfig struct {
	Store  Store
	Filter model.ActivityFilter
	// User is shown in the header when set.
	User            *model.User
	MetricsRecorder metrics.Recorder
	Logger          log.Logger
}

func (c *DashboardConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}
	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.Noop
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "tui.Dashboard"})
	return nil
}

type reloadedMsg struct {
	err error
}

type statusResolvedMsg struct {
	attempt statusctl.Attempt
}

// Dashboard is the Bubble Tea model of the dashboard.
type Dashboard struct {
	ctx      context.Context
	store    Store
	recorder metrics.Recorder
	logger   log.Logger
	user     *model.User

	list        *listsync.List
	filter      model.ActivityFilter
	controllers map[string]*statusctl.Controller
	selected    int
	spinner     spinner.Model
	width       int
}

// NewDashboard returns a new dashboard model, the context is used on every
// remote call.
func NewDashboard(ctx context.Context, cfg DashboardConfig) (*Dashboard, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	l, err := listsync.NewList(listsync.ListConfig{
		Lister:          cfg.Store,
		MetricsRecorder: cfg.MetricsRecorder,
		Logger:          cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create activity list: %w", err)
	}

	return &Dashboard{
		ctx:         ctx,
		store:       cfg.Store,
		recorder:    cfg.MetricsRecorder,
		logger:      cfg.Logger,
		user:        cfg.User,
		list:        l,
		filter:      cfg.Filter,
		controllers: map[string]*statusctl.Controller{},
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}, nil
}

// Run runs the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, cfg DashboardConfig) error {
	d, err := NewDashboard(ctx, cfg)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(d, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	d.detachAll()

	return nil
}

func (d *Dashboard) Init() tea.Cmd {
	return tea.Batch(d.reload(), d.spinner.Tick)
}

func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		return d, nil

	case reloadedMsg:
		// An older reload finished after a newer one started, wait for the newest.
		if d.list.Loading() {
			return d, nil
		}
		d.rebuildControllers()
		return d, nil

	case statusResolvedMsg:
		// Nothing to do, the controller state and the list already have the result.
		if msg.attempt.Discarded {
			d.logger.Debugf("Discarded status result of activity %s", msg.attempt.ActivityID)
		}
		return d, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	return d, nil
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isQuit(msg):
		d.detachAll()
		return d, tea.Quit
	case isUp(msg):
		if d.selected > 0 {
			d.selected--
		}
		return d, nil
	case isDown(msg):
		if d.selected < len(d.list.Activities())-1 {
			d.selected++
		}
		return d, nil
	}

	switch msg.String() {
	case "r":
		return d, d.reload()
	case "t":
		d.filter.Type = nextOption(d.filter.Type, model.ActivityTypes)
		return d, d.reload()
	case "s":
		d.filter.Status = nextOption(d.filter.Status, model.ActivityStatuses)
		return d, d.reload()
	}

	if status, ok := statusKeys[msg.String()]; ok {
		return d, d.requestStatus(status)
	}

	return d, nil
}

// reload returns the command that reloads the list. The list only marks
// itself as loading once the command runs in the Bubble Tea goroutine.
func (d *Dashboard) reload() tea.Cmd {
	filter := d.filter
	return func() tea.Msg {
		return reloadedMsg{err: d.list.Reload(d.ctx, filter)}
	}
}

// rebuildControllers replaces the controllers with new ones for the current
// list, the old ones are detached so late results are dropped.
func (d *Dashboard) rebuildControllers() {
	d.detachAll()

	activities := d.list.Activities()
	d.controllers = make(map[string]*statusctl.Controller, len(activities))
	for _, a := range activities {
		ctrl, err := statusctl.NewController(statusctl.ControllerConfig{
			ActivityID:      a.ID,
			Status:          a.Status,
			Updater:         d.store,
			MetricsRecorder: d.recorder,
			Logger:          d.logger,
		})
		if err != nil {
			d.logger.Warningf("Could not create status controller for activity %s: %s", a.ID, err)
			continue
		}
		ctrl.OnConfirmed(d.list.ApplyConfirmedStatusChange)
		d.controllers[a.ID] = ctrl
	}

	if d.selected >= len(activities) {
		d.selected = max(len(activities)-1, 0)
	}
}

func (d *Dashboard) detachAll() {
	for _, c := range d.controllers {
		c.Detach()
	}
}

func (d *Dashboard) requestStatus(status model.ActivityStatus) tea.Cmd {
	activities := d.list.Activities()
	if d.selected >= len(activities) {
		return nil
	}

	ctrl, ok := d.controllers[activities[d.selected].ID]
	if !ok {
		return nil
	}

	result, ok := ctrl.RequestStatusChangeAsync(d.ctx, status)
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return statusResolvedMsg{attempt: <-result}
	}
}

func (d *Dashboard) View() string {
	var b strings.Builder

	title := "Activities"
	if d.user != nil {
		title = fmt.Sprintf("Activities of %s", d.user.FullName())
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(filterStyle.Render(d.filterLine()))
	b.WriteString("\n\n")

	if msg := d.list.ErrMessage(); msg != "" {
		b.WriteString(bannerStyle.Render(msg))
		b.WriteString("\n\n")
	}

	activities := d.list.Activities()
	switch {
	case d.list.Loading() && len(activities) == 0:
		b.WriteString(d.spinner.View() + " Loading activities...\n")
	case len(activities) == 0:
		b.WriteString("No activities found.\n")
	}

	for i, a := range activities {
		b.WriteString(d.renderRow(i, a))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(helpText))
	b.WriteString("\n")

	return b.String()
}

func (d *Dashboard) renderRow(i int, a model.Activity) string {
	state := statusctl.Stable(a.Status)
	if ctrl, ok := d.controllers[a.ID]; ok {
		state = ctrl.Snapshot()
	}

	cursor := "  "
	if i == d.selected {
		cursor = "> "
	}

	row := fmt.Sprintf("%s%-8s %-30s %-10s %s", cursor, a.Type, truncate(a.Name, 30), printer.FormatDate(a.Date), renderStatus(state.Status))
	if i == d.selected {
		row = selectedStyle.Render(row)
	}

	switch {
	case state.Updating:
		row += " " + d.spinner.View() + " updating..."
	case state.LastError != "":
		row += " " + errorStyle.Render(state.LastError)
	}

	return row
}

func (d *Dashboard) filterLine() string {
	typ := "all"
	if d.filter.Type != nil {
		typ = string(*d.filter.Type)
	}
	status := "all"
	if d.filter.Status != nil {
		status = d.filter.Status.Label()
	}

	line := fmt.Sprintf("type: %s  status: %s", typ, status)
	if r := d.filter.DateRange; r != nil {
		line += fmt.Sprintf("  dates: %s..%s", printer.FormatDate(r.Start), printer.FormatDate(r.End))
	}
	return line
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

var _ tea.Model = &Dashboard{}
