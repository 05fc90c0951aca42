package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/slok/fitrack/internal/model"
)

// --- JSON wire types (private, for the remote store API) ---

// wireID is an identifier that the API may send as a JSON number or string.
type wireID string

func (w *wireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*w = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*w = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*w = wireID(n.String())
	return nil
}

func (w wireID) MarshalJSON() ([]byte, error) {
	// Numeric ids go back as numbers so the API binds them to its integer fields.
	if _, err := strconv.ParseInt(string(w), 10, 64); err == nil {
		return []byte(w), nil
	}
	return json.Marshal(string(w))
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	model.DateLayout,
}

// wireTime accepts the timestamp forms the API emits, with or without zone.
type wireTime struct {
	time.Time
}

func (w *wireTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// null or non string values are treated as absent.
		w.Time = time.Time{}
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		w.Time = time.Time{}
		return nil
	}
	t, err := parseWireTime(s)
	if err != nil {
		return err
	}
	w.Time = t.UTC()
	return nil
}

// parseWireTime parses a timestamp keeping the zone it was sent with.
func parseWireTime(s string) (time.Time, error) {
	for _, layout := range wireTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

type activityJSON struct {
	ID              wireID    `json:"id,omitempty"`
	UserID          wireID    `json:"userId,omitempty"`
	Type            string    `json:"type"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Status          string    `json:"status"`
	DurationMinutes *int      `json:"durationMinutes"`
	Calories        *int      `json:"calories"`
	StepsCount      *int      `json:"stepsCount"`
	MealType        *string   `json:"mealType"`
	CreatedAt       *wireTime `json:"createdAt,omitempty"`
	UpdatedAt       *wireTime `json:"updatedAt,omitempty"`
}

func activityToJSON(a model.Activity) activityJSON {
	aj := activityJSON{
		ID:          wireID(a.ID),
		UserID:      wireID(a.UserID),
		Type:        string(a.Type),
		Name:        a.Name,
		Description: a.Description,
		Date:        a.Date.Format(model.DateLayout),
		Status:      string(a.Status),
	}

	switch d := a.Details.(type) {
	case model.WorkoutDetails:
		aj.DurationMinutes = d.DurationMinutes
		aj.Calories = d.Calories
	case model.MealDetails:
		aj.Calories = d.Calories
		if d.MealType != "" {
			mt := string(d.MealType)
			aj.MealType = &mt
		}
	case model.StepsDetails:
		aj.StepsCount = d.StepsCount
	}

	return aj
}

func (a activityJSON) toModel() (*model.Activity, error) {
	t, err := model.ParseActivityType(a.Type)
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", a.ID, err)
	}
	st, err := model.ParseActivityStatus(a.Status)
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", a.ID, err)
	}

	// The calendar day is the one written by the API, whatever its offset.
	var date time.Time
	if ds := strings.TrimSpace(a.Date); ds != "" {
		date, err = parseWireTime(ds)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", a.ID, err)
		}
	}
	y, m, d := date.Date()

	act := &model.Activity{
		ID:          string(a.ID),
		UserID:      string(a.UserID),
		Type:        t,
		Status:      st,
		Name:        a.Name,
		Description: a.Description,
		Details:     detailsFromJSON(t, a),
	}
	if !date.IsZero() {
		act.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	if a.CreatedAt != nil {
		act.CreatedAt = a.CreatedAt.Time
	}
	if a.UpdatedAt != nil {
		act.UpdatedAt = a.UpdatedAt.Time
	}

	return act, nil
}

// detailsFromJSON picks only the fields of the type variant, the API sends every
// measurement field on every record.
func detailsFromJSON(t model.ActivityType, a activityJSON) model.ActivityDetails {
	switch t {
	case model.ActivityTypeWorkout:
		return model.WorkoutDetails{DurationMinutes: a.DurationMinutes, Calories: a.Calories}
	case model.ActivityTypeMeal:
		d := model.MealDetails{Calories: a.Calories}
		if a.MealType != nil {
			if mt, err := model.ParseMealType(*a.MealType); err == nil {
				d.MealType = mt
			}
		}
		return d
	case model.ActivityTypeSteps:
		return model.StepsDetails{StepsCount: a.StepsCount}
	}
	return nil
}

func activitiesToModel(as []activityJSON) ([]model.Activity, error) {
	result := make([]model.Activity, 0, len(as))
	for _, a := range as {
		m, err := a.toModel()
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	return result, nil
}

type statusJSON struct {
	Status string `json:"status"`
}

type registrationJSON struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type credentialsJSON struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userJSON struct {
	UserID    wireID    `json:"userId"`
	ID        wireID    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt *wireTime `json:"createdAt"`
}

func (u userJSON) toModel() *model.User {
	id := u.UserID
	if id == "" {
		id = u.ID
	}
	user := &model.User{
		ID:        string(id),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
	if u.CreatedAt != nil {
		user.CreatedAt = u.CreatedAt.Time
	}
	return user
}

type errorJSON struct {
	Message string `json:"message"`
	Title   string `json:"title"`
}
