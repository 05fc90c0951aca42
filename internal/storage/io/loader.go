package io

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/slok/fitrack/internal/model"
)

// ActivityYAMLRepository loads activities from YAML files.
type ActivityYAMLRepository struct {
	fs fs.FS
}

// NewActivityYAMLRepository creates a new YAML activity repository.
func NewActivityYAMLRepository(filesystem fs.FS) *ActivityYAMLRepository {
	return &ActivityYAMLRepository{fs: filesystem}
}

// GetActivity loads an activity from a YAML file. When the file has no type the
// fallback type is used (e.g: the type of the activity being edited), the
// returned activity is not validated.
func (r *ActivityYAMLRepository) GetActivity(ctx context.Context, path string, fallbackType model.ActivityType) (model.Activity, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.Activity{}, fmt.Errorf("reading activity file: %w", err)
	}

	if ctx.Err() != nil {
		return model.Activity{}, ctx.Err()
	}

	var a Activity
	if err := yaml.Unmarshal(data, &a); err != nil {
		return model.Activity{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if a.Type == "" {
		a.Type = string(fallbackType)
	}

	act, err := a.toModel()
	if err != nil {
		return model.Activity{}, fmt.Errorf("invalid activity file: %w", err)
	}

	return act, nil
}

// Activity represents the YAML structure of an activity.
type Activity struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Status      string `yaml:"status"`
	// Measurements, only the ones of the activity type are allowed.
	DurationMinutes *int    `yaml:"duration_minutes"`
	Calories        *int    `yaml:"calories"`
	StepsCount      *int    `yaml:"steps_count"`
	MealType        *string `yaml:"meal_type"`
}

func (a Activity) toModel() (model.Activity, error) {
	if a.Type == "" {
		return model.Activity{}, fmt.Errorf("type is required: %w", model.ErrNotValid)
	}
	t, err := model.ParseActivityType(a.Type)
	if err != nil {
		return model.Activity{}, err
	}

	act := model.Activity{
		Type:        t,
		Status:      model.ActivityStatusPlanned,
		Name:        strings.TrimSpace(a.Name),
		Description: a.Description,
	}

	if a.Status != "" {
		act.Status, err = model.ParseActivityStatus(a.Status)
		if err != nil {
			return model.Activity{}, err
		}
	}

	if a.Date != "" {
		act.Date, err = model.ParseDate(a.Date)
		if err != nil {
			return model.Activity{}, err
		}
	}

	act.Details, err = a.details(t)
	if err != nil {
		return model.Activity{}, err
	}

	return act, nil
}

func (a Activity) details(t model.ActivityType) (model.ActivityDetails, error) {
	var foreign []string
	switch t {
	case model.ActivityTypeWorkout:
		if a.StepsCount != nil {
			foreign = append(foreign, "steps_count")
		}
		if a.MealType != nil {
			foreign = append(foreign, "meal_type")
		}
	case model.ActivityTypeMeal:
		if a.DurationMinutes != nil {
			foreign = append(foreign, "duration_minutes")
		}
		if a.StepsCount != nil {
			foreign = append(foreign, "steps_count")
		}
	case model.ActivityTypeSteps:
		if a.DurationMinutes != nil {
			foreign = append(foreign, "duration_minutes")
		}
		if a.Calories != nil {
			foreign = append(foreign, "calories")
		}
		if a.MealType != nil {
			foreign = append(foreign, "meal_type")
		}
	}
	if len(foreign) > 0 {
		return nil, fmt.Errorf("%s can't be set on a %s activity: %w", strings.Join(foreign, ", "), t, model.ErrNotValid)
	}

	switch t {
	case model.ActivityTypeWorkout:
		return model.WorkoutDetails{DurationMinutes: a.DurationMinutes, Calories: a.Calories}, nil
	case model.ActivityTypeMeal:
		d := model.MealDetails{Calories: a.Calories}
		if a.MealType != nil {
			mt, err := model.ParseMealType(*a.MealType)
			if err != nil {
				return nil, err
			}
			d.MealType = mt
		}
		return d, nil
	default:
		return model.StepsDetails{StepsCount: a.StepsCount}, nil
	}
}
