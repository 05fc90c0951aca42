package printer

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/slok/fitrack/internal/model"
)

// TablePrinter prints fitness information in a table format.
type TablePrinter struct {
	writer io.Writer
	today  func() time.Time
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w, today: model.Today}
}

// PrintActivities prints activities in a table format.
func (t *TablePrinter) PrintActivities(activities []model.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tSTATUS\tDATE\tDETAILS")

	// Print rows.
	for _, a := range activities {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID,
			a.Type,
			a.Name,
			a.Status.Label(),
			FormatDate(a.Date),
			FormatDetails(a.Details),
		)
	}

	return nil
}

// PrintActivity prints the detailed activity.
func (t *TablePrinter) PrintActivity(a model.Activity) error {
	fmt.Fprintf(t.writer, "ID:           %s\n", a.ID)
	fmt.Fprintf(t.writer, "Name:         %s\n", a.Name)
	fmt.Fprintf(t.writer, "Type:         %s\n", a.Type)
	fmt.Fprintf(t.writer, "Status:       %s\n", a.Status.Label())
	fmt.Fprintf(t.writer, "Date:         %s (%s)\n", FormatDate(a.Date), RelativeDay(a.Date, t.today()))

	if a.Description != "" {
		fmt.Fprintf(t.writer, "Description:  %s\n", a.Description)
	}

	switch d := a.Details.(type) {
	case model.WorkoutDetails:
		if d.DurationMinutes != nil {
			fmt.Fprintf(t.writer, "Duration:     %d min\n", *d.DurationMinutes)
		}
		if d.Calories != nil {
			fmt.Fprintf(t.writer, "Calories:     %s kcal\n", FormatThousands(*d.Calories))
		}
	case model.MealDetails:
		if d.MealType != "" {
			fmt.Fprintf(t.writer, "Meal:         %s\n", d.MealType)
		}
		if d.Calories != nil {
			fmt.Fprintf(t.writer, "Calories:     %s kcal\n", FormatThousands(*d.Calories))
		}
	case model.StepsDetails:
		if d.StepsCount != nil {
			fmt.Fprintf(t.writer, "Steps:        %s\n", FormatThousands(*d.StepsCount))
		}
	}

	if a.UserID != "" {
		fmt.Fprintf(t.writer, "User:         %s\n", a.UserID)
	}
	if !a.CreatedAt.IsZero() {
		fmt.Fprintf(t.writer, "Created:      %s\n", FormatTimestamp(a.CreatedAt))
	}
	if !a.UpdatedAt.IsZero() {
		fmt.Fprintf(t.writer, "Updated:      %s\n", FormatTimestamp(a.UpdatedAt))
	}

	return nil
}

// PrintUser prints the user.
func (t *TablePrinter) PrintUser(u model.User) error {
	fmt.Fprintf(t.writer, "ID:       %s\n", u.ID)
	fmt.Fprintf(t.writer, "Name:     %s\n", u.FullName())
	fmt.Fprintf(t.writer, "Email:    %s\n", u.Email)
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(t.writer, "Joined:   %s\n", FormatTimestamp(u.CreatedAt))
	}
	return nil
}

// PrintProfile prints the user profile with its stats and recent activities.
func (t *TablePrinter) PrintProfile(u model.User, stats model.ProfileStats, recent []model.Activity) error {
	if err := t.PrintUser(u); err != nil {
		return err
	}

	fmt.Fprintln(t.writer)
	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Activities:\t%d\n", stats.TotalActivities)
	fmt.Fprintf(tw, "Completed:\t%d (%d%%)\n", stats.CompletedActivities, stats.CompletionRate)
	fmt.Fprintf(tw, "In progress:\t%d\n", stats.InProgressActivities)
	fmt.Fprintf(tw, "Planned:\t%d\n", stats.PlannedActivities)
	fmt.Fprintf(tw, "Workouts:\t%d (%d min)\n", stats.TotalWorkouts, stats.TotalDurationMinutes)
	fmt.Fprintf(tw, "Meals:\t%d\n", stats.TotalMeals)
	fmt.Fprintf(tw, "Steps:\t%s (%d entries)\n", FormatThousands(stats.TotalSteps), stats.TotalStepsEntries)
	fmt.Fprintf(tw, "Calories:\t%s kcal\n", FormatThousands(stats.TotalCalories))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(recent) == 0 {
		return nil
	}

	fmt.Fprintln(t.writer)
	fmt.Fprintln(t.writer, "Recent activities:")
	return t.PrintActivities(recent)
}

// PrintStatusChanges prints the status change results in a table format.
func (t *TablePrinter) PrintStatusChanges(changes []StatusChange) error {
	if len(changes) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tFROM\tTO\tRESULT\tERROR")
	for _, c := range changes {
		from := "-"
		if c.From != "" {
			from = c.From.Label()
		}
		errMsg := "-"
		if c.Error != "" {
			errMsg = c.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ActivityID, from, c.To.Label(), c.Result, errMsg)
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}

var _ Printer = &TablePrinter{}
