package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/slok/fitrack/internal/model"
)

// JSONPrinter prints fitness information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// activityOutput represents an activity, measurements of other types are omitted.
type activityOutput struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id,omitempty"`
	Type            string     `json:"type"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status"`
	Date            string     `json:"date"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Calories        *int       `json:"calories,omitempty"`
	MealType        string     `json:"meal_type,omitempty"`
	StepsCount      *int       `json:"steps_count,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type userOutput struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type statsOutput struct {
	TotalActivities      int `json:"total_activities"`
	CompletedActivities  int `json:"completed_activities"`
	InProgressActivities int `json:"in_progress_activities"`
	PlannedActivities    int `json:"planned_activities"`
	TotalWorkouts        int `json:"total_workouts"`
	TotalMeals           int `json:"total_meals"`
	TotalStepsEntries    int `json:"total_steps_entries"`
	TotalSteps           int `json:"total_steps"`
	TotalCalories        int `json:"total_calories"`
	TotalDurationMinutes int `json:"total_duration_minutes"`
	CompletionRate       int `json:"completion_rate"`
}

type profileOutput struct {
	User   userOutput       `json:"user"`
	Stats  statsOutput      `json:"stats"`
	Recent []activityOutput `json:"recent_activities"`
}

type statusChangeOutput struct {
	ActivityID string `json:"activity_id"`
	From       string `json:"from,omitempty"`
	To         string `json:"to"`
	Result     string `json:"result"`
	Error      string `json:"error,omitempty"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func mapActivity(a model.Activity) activityOutput {
	out := activityOutput{
		ID:          a.ID,
		UserID:      a.UserID,
		Type:        string(a.Type),
		Name:        a.Name,
		Description: a.Description,
		Status:      string(a.Status),
		Date:        FormatDate(a.Date),
		CreatedAt:   timePtr(a.CreatedAt),
		UpdatedAt:   timePtr(a.UpdatedAt),
	}

	switch d := a.Details.(type) {
	case model.WorkoutDetails:
		out.DurationMinutes = d.DurationMinutes
		out.Calories = d.Calories
	case model.MealDetails:
		out.MealType = string(d.MealType)
		out.Calories = d.Calories
	case model.StepsDetails:
		out.StepsCount = d.StepsCount
	}

	return out
}

func mapActivities(as []model.Activity) []activityOutput {
	items := make([]activityOutput, len(as))
	for i, a := range as {
		items[i] = mapActivity(a)
	}
	return items
}

func mapUser(u model.User) userOutput {
	return userOutput{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: timePtr(u.CreatedAt),
	}
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintActivities prints activities in JSON format.
func (j *JSONPrinter) PrintActivities(activities []model.Activity) error {
	return j.encode(mapActivities(activities))
}

// PrintActivity prints the activity in JSON format.
func (j *JSONPrinter) PrintActivity(a model.Activity) error {
	return j.encode(mapActivity(a))
}

// PrintUser prints the user in JSON format.
func (j *JSONPrinter) PrintUser(u model.User) error {
	return j.encode(mapUser(u))
}

// PrintProfile prints the user profile in JSON format.
func (j *JSONPrinter) PrintProfile(u model.User, stats model.ProfileStats, recent []model.Activity) error {
	return j.encode(profileOutput{
		User:   mapUser(u),
		Stats:  statsOutput(stats),
		Recent: mapActivities(recent),
	})
}

// PrintStatusChanges prints the status change results in JSON format.
func (j *JSONPrinter) PrintStatusChanges(changes []StatusChange) error {
	items := make([]statusChangeOutput, len(changes))
	for i, c := range changes {
		items[i] = statusChangeOutput{
			ActivityID: c.ActivityID,
			From:       string(c.From),
			To:         string(c.To),
			Result:     c.Result,
			Error:      c.Error,
		}
	}
	return j.encode(items)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

var _ Printer = &JSONPrinter{}
